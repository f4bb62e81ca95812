// xrand.go
//
// 创建人: blinklv <blinklv@icloud.com>
// 创建日期: 2017-01-07
// 修订人: blinklv <blinklv@icloud.com>
// 修订日期: 2026-10-19

// go-xrand provides the random source the block modes draw their IVs and
// nonces from. Production code uses the operating system's CSPRNG; tests
// can plug in deterministic sources.
package xrand

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"sync"
)

const Version = "2.0.0"

var ErrRandom = errors.New("xrand: random source failed")

// Source produces random bytes with the io.Reader contract. Implementations
// used for IVs and nonces must be cryptographically secure.
type Source interface {
	Read(p []byte) (int, error)
}

// Reader is the default Source, backed by crypto/rand.
var Reader Source = rand.Reader

// Fill fills p completely from src. A short read is an error.
func Fill(src Source, p []byte) error {
	if src == nil {
		src = Reader
	}
	if _, err := io.ReadFull(src, p); err != nil {
		return fmt.Errorf("%w: %v", ErrRandom, err)
	}
	return nil
}

// Bytes returns n bytes from Reader.
func Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if err := Fill(Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Fixed returns a deterministic Source which replays seed over and over.
// It's only meant for tests and known-answer vectors. It's safe for
// concurrent use.
func Fixed(seed []byte) Source {
	if len(seed) == 0 {
		panic("xrand: empty seed")
	}
	return &fixed{seed: append([]byte(nil), seed...)}
}

type fixed struct {
	mtx  sync.Mutex
	seed []byte
	off  int
}

func (f *fixed) Read(p []byte) (int, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	for i := range p {
		p[i] = f.seed[f.off]
		f.off = (f.off + 1) % len(f.seed)
	}
	return len(p), nil
}

// Failing returns a Source whose every Read fails with err.
func Failing(err error) Source {
	return failing{err}
}

type failing struct{ err error }

func (f failing) Read(p []byte) (int, error) {
	return 0, f.err
}
