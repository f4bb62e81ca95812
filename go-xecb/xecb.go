// xecb.go
//
// Author: blinklv <blinklv@icloud.com>
// Create Time: 2017-09-12
// Maintainer: blinklv <blinklv@icloud.com>
// Last Change: 2026-10-19

// This package implements the Electronic Code Book mode. Every block is
// encrypted on its own under the same key, so equal plaintext blocks give
// equal ciphertext blocks. That leak is kept on purpose, ECB is here to be
// studied and must not protect real data.
package xecb

import (
	"crypto/cipher"

	"github.com/X-Plan/xcipher/go-xblock"
	"github.com/X-Plan/xcipher/go-xpadding"
)

const Version = "2.0.0"

// XECB pads the plaintext and encrypts it block by block. Blocks don't
// depend on each other, so the work is split across workers goroutines.
type XECB struct {
	cipher  xblock.Cipher
	workers int
}

// New returns an ECB mode over c. If workers is zero or negative the
// worker count follows GOMAXPROCS.
func New(c xblock.Cipher, workers int) *XECB {
	if c == nil {
		c = xblock.AES{}
	}
	return &XECB{cipher: c, workers: workers}
}

func (x *XECB) Name() string { return "ecb" }

// Encrypt returns the ciphertext of plaintext under key. The ciphertext
// has no IV, its length is the padded plaintext length.
func (x *XECB) Encrypt(plaintext, key []byte) ([]byte, error) {
	k, err := xblock.NewKey(key)
	if err != nil {
		return nil, err
	}

	blocks, err := xblock.Group(xpadding.Pad(plaintext))
	if err != nil {
		return nil, err
	}
	return xblock.Ungroup(x.crypt(blocks, k, x.cipher.EncryptBlock)), nil
}

// Decrypt reverses Encrypt. The ciphertext must be a positive multiple of
// the block size.
func (x *XECB) Decrypt(ciphertext, key []byte) ([]byte, error) {
	k, err := xblock.NewKey(key)
	if err != nil {
		return nil, err
	}
	if err = xblock.CheckCiphertext(ciphertext, 0); err != nil {
		return nil, err
	}

	blocks, err := xblock.Group(ciphertext)
	if err != nil {
		return nil, err
	}
	return xpadding.Unpad(xblock.Ungroup(x.crypt(blocks, k, x.cipher.DecryptBlock)))
}

func (x *XECB) crypt(in []xblock.Block, k xblock.Key, fn func(xblock.Block, xblock.Key) xblock.Block) []xblock.Block {
	workers := x.workers
	if workers <= 0 {
		workers = xblock.DefaultWorkers()
	}

	out := make([]xblock.Block, len(in))
	xblock.Stripe(len(in), workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = fn(in[i], k)
		}
	})
	return out
}

var std = New(xblock.AES{}, 0)

// Encrypt plaintext with AES-128 in ECB mode.
func Encrypt(plaintext, key []byte) ([]byte, error) {
	return std.Encrypt(plaintext, key)
}

// Decrypt ciphertext produced by Encrypt.
func Decrypt(ciphertext, key []byte) ([]byte, error) {
	return std.Decrypt(ciphertext, key)
}

// The block modes below satisfy the cipher.BlockMode interface for callers
// that already hold a keyed cipher.Block. They don't pad.

type ecb struct {
	block cipher.Block
	size  int
	fn    func(dst, src []byte)
}

func (e *ecb) BlockSize() int {
	return e.size
}

func (e *ecb) CryptBlocks(dst, src []byte) {
	if len(src)%e.size != 0 {
		panic("xecb: input not full blocks")
	}
	if len(dst) < len(src) {
		panic("xecb: output smaller than input")
	}

	for len(src) > 0 {
		e.fn(dst[:e.size], src[:e.size])
		src = src[e.size:]
		dst = dst[e.size:]
	}
}

func NewECBEncrypter(block cipher.Block) cipher.BlockMode {
	return &ecb{block, block.BlockSize(), block.Encrypt}
}

func NewECBDecrypter(block cipher.Block) cipher.BlockMode {
	return &ecb{block, block.BlockSize(), block.Decrypt}
}
