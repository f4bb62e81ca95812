// xconfig.go
//
// Author: blinklv <blinklv@icloud.com>
// Create Time: 2018-01-24
// Maintainer: blinklv <blinklv@icloud.com>
// Last Change: 2026-10-19
package xlog

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// This configure type is used to create 'XLogger'.
type XConfig struct {
	// The directory to store log files. If it's empty, './log' directory
	// will be used by default. If this directory doesn't exist, it will
	// be created automatically.
	Dir string `json:"dir" yaml:"dir" xvalid:"default=./log"`

	// Log tag, it's also the base name of the log file. If not set, the
	// process name will be used by default.
	Tag string `json:"tag" yaml:"tag"`

	// Log level. Only operations whose priority is higher than or equal to
	// this field are recorded. Call 'Write' function will ignore this field.
	Level int `json:"level" yaml:"level" xvalid:"min=1,max=5"`

	// Records go here instead of a file when it's not nil.
	Output io.Writer `json:"-" yaml:"-"`
}

// Import a readable format data to the XConfig instance. 'level' accepts
// either a level name or its number.
func (xcfg *XConfig) Import(data map[string]interface{}) error {
	for name, value := range data {
		switch name {
		case "dir", "tag":
			str, ok := value.(string)
			if !ok {
				return fmt.Errorf("invalid %s (%v)", name, value)
			}
			if name == "dir" {
				xcfg.Dir = str
			} else {
				xcfg.Tag = str
			}
		case "level":
			level, err := importLevel(value)
			if err != nil {
				return err
			}
			xcfg.Level = level
		default:
			return fmt.Errorf("unknown field (%s)", name)
		}
	}
	return nil
}

// Export a XConfig instance to a readable format data.
func (xcfg *XConfig) Export(data map[string]interface{}) error {
	if xcfg.Level < FATAL || xcfg.Level > DEBUG {
		return fmt.Errorf("level is invalid (%d)", xcfg.Level)
	}
	data["dir"] = xcfg.Dir
	data["tag"] = xcfg.Tag
	data["level"] = LevelName(xcfg.Level)
	return nil
}

func importLevel(value interface{}) (int, error) {
	var level int
	switch v := value.(type) {
	case string:
		return ParseLevel(v)
	case int:
		level = v
	case int64:
		level = int(v)
	case float64:
		// Numbers decoded from JSON.
		level = int(v)
		if float64(level) != v {
			return -1, fmt.Errorf("unknown level (%v)", v)
		}
	default:
		return -1, fmt.Errorf("unknown level (%v)", value)
	}

	if level < FATAL || level > DEBUG {
		return -1, fmt.Errorf("unknown level (%d)", level)
	}
	return level, nil
}

// The readable format of 'level' field: {fatal|error|warn|info|debug}
// You can add some spaces at the head, but I don't recommend it.
var reLevel = regexp.MustCompile(`^\s*(fatal|error|warn|info|debug)$`)

// ParseLevel converts a level name to its number.
func ParseLevel(str string) (int, error) {
	results := reLevel.FindStringSubmatch(str)
	if len(results) != 2 {
		return -1, fmt.Errorf("unknown level (%s)", str)
	}

	var level int

	switch results[1] {
	case "fatal":
		level = FATAL
	case "error":
		level = ERROR
	case "warn":
		level = WARN
	case "info":
		level = INFO
	case "debug":
		level = DEBUG
	}

	return level, nil
}

// LevelName is the reverse of ParseLevel. It returns an empty string for
// an unknown level.
func LevelName(level int) string {
	if level < FATAL || level > DEBUG {
		return ""
	}
	return strings.ToLower(levelNames[level])
}
