// xconfig.go
//
// Author: blinklv <blinklv@icloud.com>
// Create Time: 2026-10-16
// Maintainer: blinklv <blinklv@icloud.com>
// Last Change: 2026-10-19
package xmode

import (
	"fmt"
	"os"

	"github.com/X-Plan/xcipher/go-xlog"
	"github.com/X-Plan/xcipher/go-xrand"
	"gopkg.in/yaml.v3"
)

// This configure type is used to create a 'Mode'.
type XConfig struct {
	// Block cipher mode: 'ecb', 'cbc' or 'ctr' (case-insensitive). It's
	// required.
	Mode string `json:"mode" yaml:"mode"`

	// Block cipher primitive, 'aes' or 'twofish'. If it's empty, 'aes'
	// will be used by default.
	Cipher string `json:"cipher" yaml:"cipher" xvalid:"default=aes"`

	// Number of goroutines sharing the blocks of one message. Zero means
	// runtime.GOMAXPROCS(0), a negative value is invalid.
	Workers int `json:"workers" yaml:"workers" xvalid:"min=0"`

	// Every Encrypt and Decrypt is recorded here when it's not nil.
	Logger *xlog.XLogger `json:"-" yaml:"-"`

	// IVs and nonces come from here, xrand.Reader when it's nil.
	Rand xrand.Source `json:"-" yaml:"-"`
}

// Import a readable format data to the XConfig instance.
func (xcfg *XConfig) Import(data map[string]interface{}) error {
	for name, value := range data {
		switch name {
		case "mode", "cipher":
			str, ok := value.(string)
			if !ok {
				return fmt.Errorf("invalid %s (%v)", name, value)
			}
			if name == "mode" {
				xcfg.Mode = str
			} else {
				xcfg.Cipher = str
			}
		case "workers":
			workers, err := importWorkers(value)
			if err != nil {
				return err
			}
			xcfg.Workers = workers
		default:
			return fmt.Errorf("unknown field (%s)", name)
		}
	}
	return nil
}

// Export a XConfig instance to a readable format data.
func (xcfg *XConfig) Export(data map[string]interface{}) error {
	data["mode"] = xcfg.Mode
	data["cipher"] = xcfg.Cipher
	data["workers"] = xcfg.Workers
	return nil
}

func importWorkers(value interface{}) (int, error) {
	var workers int
	switch v := value.(type) {
	case int:
		workers = v
	case int64:
		workers = int(v)
	case float64:
		workers = int(v)
		if float64(workers) != v {
			return -1, fmt.Errorf("invalid workers (%v)", v)
		}
	default:
		return -1, fmt.Errorf("invalid workers (%v)", value)
	}

	if workers < 0 {
		return -1, fmt.Errorf("invalid workers (%d)", workers)
	}
	return workers, nil
}

// LoadFile reads a YAML document like:
//
//	mode: cbc
//	cipher: aes
//	workers: 4
func LoadFile(path string) (*XConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	data := make(map[string]interface{})
	if err = yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	xcfg := &XConfig{}
	if err = xcfg.Import(data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return xcfg, nil
}
