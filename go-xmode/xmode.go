// xmode.go
//
// Author: blinklv <blinklv@icloud.com>
// Create Time: 2026-10-16
// Maintainer: blinklv <blinklv@icloud.com>
// Last Change: 2026-10-19

// go-xmode puts the ECB, CBC and CTR modes behind one interface. A mode is
// built from a XConfig, and Seal/Unseal move ciphertexts over a stream as
// packets tagged with the mode that produced them.
package xmode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/X-Plan/xcipher/go-xblock"
	"github.com/X-Plan/xcipher/go-xcbc"
	"github.com/X-Plan/xcipher/go-xctr"
	"github.com/X-Plan/xcipher/go-xecb"
	"github.com/X-Plan/xcipher/go-xlog"
	"github.com/X-Plan/xcipher/go-xpacket"
	"github.com/X-Plan/xcipher/go-xvalid"
)

const Version = "1.0.0"

var (
	ErrUnknownMode = errors.New("xmode: unknown mode")
	ErrUnknownTag  = errors.New("xmode: unknown packet tag")
)

// Mode is a block cipher mode of operation over 16-byte blocks and keys.
type Mode interface {
	Name() string
	Encrypt(plaintext, key []byte) ([]byte, error)
	Decrypt(ciphertext, key []byte) ([]byte, error)
}

var (
	_ Mode = (*xecb.XECB)(nil)
	_ Mode = (*xcbc.XCBC)(nil)
	_ Mode = (*xctr.XCTR)(nil)
)

// Packet tags, one per mode. They are part of the wire format.
var tags = map[string]byte{
	"ecb": 1,
	"cbc": 2,
	"ctr": 3,
}

// New creates the mode xcfg describes. xcfg itself isn't modified.
func New(xcfg *XConfig) (Mode, error) {
	if xcfg == nil {
		return nil, fmt.Errorf("XConfig is nil")
	}

	cfg := *xcfg
	if err := xvalid.Validate(&cfg); err != nil {
		return nil, err
	}
	xcfg = &cfg

	c, err := xblock.CipherByName(xcfg.Cipher)
	if err != nil {
		return nil, err
	}

	var m Mode
	switch strings.ToLower(strings.TrimSpace(xcfg.Mode)) {
	case "ecb":
		m = xecb.New(c, xcfg.Workers)
	case "cbc":
		m = xcbc.New(c, xcfg.Rand, xcfg.Workers)
	case "ctr":
		m = xctr.New(c, xcfg.Rand, xcfg.Workers)
	default:
		return nil, fmt.Errorf("%w (%s)", ErrUnknownMode, xcfg.Mode)
	}

	if xcfg.Logger != nil {
		m = &logged{Mode: m, xl: xcfg.Logger, cipher: xblock.CipherName(c)}
	}
	return m, nil
}

// Seal encrypts plaintext with m and writes the ciphertext to w as one
// packet tagged with m's name.
func Seal(w io.Writer, m Mode, plaintext, key []byte) error {
	tag, ok := tags[m.Name()]
	if !ok {
		return fmt.Errorf("%w (%s)", ErrUnknownMode, m.Name())
	}

	ciphertext, err := m.Encrypt(plaintext, key)
	if err != nil {
		return err
	}
	return xpacket.Encode(w, tag, ciphertext)
}

// Unseal reads one packet from r and decrypts it with the mode named by
// the packet's tag. The rest of xcfg (cipher, workers, logger) still
// applies, xcfg.Mode is ignored. A nil xcfg means the defaults.
func Unseal(r io.Reader, key []byte, xcfg *XConfig) ([]byte, error) {
	tag, body, err := xpacket.Decode(r)
	if err != nil {
		return nil, err
	}

	name, err := modeOfTag(tag)
	if err != nil {
		return nil, err
	}

	var cfg XConfig
	if xcfg != nil {
		cfg = *xcfg
	}
	cfg.Mode = name

	m, err := New(&cfg)
	if err != nil {
		return nil, err
	}
	return m.Decrypt(body, key)
}

func modeOfTag(tag byte) (string, error) {
	for name, t := range tags {
		if t == tag {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w (%d)", ErrUnknownTag, tag)
}

// logged records every call of the wrapped Mode. Only sizes and errors are
// written, never keys or data.
type logged struct {
	Mode
	xl     *xlog.XLogger
	cipher string
}

func (l *logged) Encrypt(plaintext, key []byte) ([]byte, error) {
	out, err := l.Mode.Encrypt(plaintext, key)
	l.record("encrypt", len(plaintext), len(out), err)
	return out, err
}

func (l *logged) Decrypt(ciphertext, key []byte) ([]byte, error) {
	out, err := l.Mode.Decrypt(ciphertext, key)
	l.record("decrypt", len(ciphertext), len(out), err)
	return out, err
}

func (l *logged) record(op string, in, out int, err error) {
	if err != nil {
		l.xl.Warn("%s-%s %s %d bytes failed (%s)", l.cipher, l.Name(), op, in, err)
		return
	}
	l.xl.Debug("%s-%s %s %d bytes -> %d bytes", l.cipher, l.Name(), op, in, out)
}
