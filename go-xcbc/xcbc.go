// xcbc.go
//
// Author: blinklv <blinklv@icloud.com>
// Create Time: 2026-10-13
// Maintainer: blinklv <blinklv@icloud.com>
// Last Change: 2026-10-19

// go-xcbc implements the Cipher Block Chaining mode. Each plaintext block is
// XORed with the previous ciphertext block before it's encrypted; the first
// one is XORed with a random IV, which is sent as the first ciphertext block.
//
// Ciphertext layout: IV (1 block) || C[0] || ... || C[n-1].
package xcbc

import (
	"github.com/X-Plan/xcipher/go-xblock"
	"github.com/X-Plan/xcipher/go-xpadding"
	"github.com/X-Plan/xcipher/go-xrand"
)

const Version = "1.0.0"

type XCBC struct {
	cipher  xblock.Cipher
	rand    xrand.Source
	workers int
}

// New returns a CBC mode over c drawing IVs from src. A nil c means AES, a
// nil src means xrand.Reader. workers only affects decryption, encryption
// is a chain and always runs on the calling goroutine.
func New(c xblock.Cipher, src xrand.Source, workers int) *XCBC {
	if c == nil {
		c = xblock.AES{}
	}
	if src == nil {
		src = xrand.Reader
	}
	return &XCBC{cipher: c, rand: src, workers: workers}
}

func (x *XCBC) Name() string { return "cbc" }

// Encrypt pads plaintext and encrypts it under key with a fresh IV.
func (x *XCBC) Encrypt(plaintext, key []byte) ([]byte, error) {
	k, err := xblock.NewKey(key)
	if err != nil {
		return nil, err
	}

	blocks, err := xblock.Group(xpadding.Pad(plaintext))
	if err != nil {
		return nil, err
	}

	var iv xblock.Block
	if err = xrand.Fill(x.rand, iv[:]); err != nil {
		return nil, err
	}

	out := make([]xblock.Block, 0, len(blocks)+1)
	out = append(out, iv)
	prev := iv
	for _, p := range blocks {
		prev = x.cipher.EncryptBlock(xblock.Xor(p, prev), k)
		out = append(out, prev)
	}
	return xblock.Ungroup(out), nil
}

// Decrypt takes the IV from the first block and recovers the plaintext.
// Every block only needs its own ciphertext and the one before it, so the
// blocks are decrypted in parallel.
func (x *XCBC) Decrypt(data, key []byte) ([]byte, error) {
	k, err := xblock.NewKey(key)
	if err != nil {
		return nil, err
	}
	if err = xblock.CheckCiphertext(data, 1); err != nil {
		return nil, err
	}

	// blocks[0] is the IV, blocks[i+1] is C[i].
	blocks, err := xblock.Group(data)
	if err != nil {
		return nil, err
	}

	workers := x.workers
	if workers <= 0 {
		workers = xblock.DefaultWorkers()
	}

	n := len(blocks) - 1
	plain := make([]xblock.Block, n)
	xblock.Stripe(n, workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			plain[i] = xblock.Xor(x.cipher.DecryptBlock(blocks[i+1], k), blocks[i])
		}
	})
	return xpadding.Unpad(xblock.Ungroup(plain))
}

var std = New(xblock.AES{}, xrand.Reader, 0)

// Encrypt plaintext with AES-128 in CBC mode, the IV comes from crypto/rand.
func Encrypt(plaintext, key []byte) ([]byte, error) {
	return std.Encrypt(plaintext, key)
}

// Decrypt data produced by Encrypt.
func Decrypt(data, key []byte) ([]byte, error) {
	return std.Decrypt(data, key)
}
