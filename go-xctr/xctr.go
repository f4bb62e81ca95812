// xctr.go
//
// Author: blinklv <blinklv@icloud.com>
// Create Time: 2026-10-14
// Maintainer: blinklv <blinklv@icloud.com>
// Last Change: 2026-10-19

// go-xctr implements the Counter mode. For block i the value
// V = nonce || counter(i) is encrypted and the result is XORed with the
// data; decryption does exactly the same, it never runs the primitive
// backwards. The 64-bit nonce is random per message, the counter starts at
// zero and is big-endian.
//
// Ciphertext layout: nonce || 8 zero bytes (1 block) || C[0] || ... || C[n-1].
//
// CTR gives no integrity: flipping a ciphertext bit flips the same
// plaintext bit and nothing else.
package xctr

import (
	"errors"
	"sync/atomic"

	"github.com/X-Plan/xcipher/go-xblock"
	"github.com/X-Plan/xcipher/go-xpadding"
	"github.com/X-Plan/xcipher/go-xrand"
)

const Version = "1.0.0"

var (
	// The message needs more blocks than the counter can number without
	// repeating a keystream block.
	ErrCounterExhausted = errors.New("xctr: counter exhausted")

	// Block index passed to DecryptBlockAt is out of range.
	ErrBlockIndex = errors.New("xctr: block index out of range")
)

type XCTR struct {
	cipher  xblock.Cipher
	rand    xrand.Source
	workers int

	// Counter value of the first data block. Always zero outside tests.
	first uint64
}

// New returns a CTR mode over c drawing nonces from src. A nil c means AES,
// a nil src means xrand.Reader, workers <= 0 follows GOMAXPROCS.
func New(c xblock.Cipher, src xrand.Source, workers int) *XCTR {
	if c == nil {
		c = xblock.AES{}
	}
	if src == nil {
		src = xrand.Reader
	}
	return &XCTR{cipher: c, rand: src, workers: workers}
}

func (x *XCTR) Name() string { return "ctr" }

// Encrypt pads plaintext and encrypts it under key with a fresh nonce.
func (x *XCTR) Encrypt(plaintext, key []byte) ([]byte, error) {
	k, err := xblock.NewKey(key)
	if err != nil {
		return nil, err
	}

	blocks, err := xblock.Group(xpadding.Pad(plaintext))
	if err != nil {
		return nil, err
	}

	var nonce xblock.Nonce
	if err = xrand.Fill(x.rand, nonce[:]); err != nil {
		return nil, err
	}

	out, err := x.xor(blocks, nonce, k)
	if err != nil {
		return nil, err
	}

	data := make([]xblock.Block, 0, len(out)+1)
	data = append(data, xblock.NonceBlock(nonce))
	data = append(data, out...)
	return xblock.Ungroup(data), nil
}

// Decrypt takes the nonce from the first block and recovers the plaintext.
func (x *XCTR) Decrypt(data, key []byte) ([]byte, error) {
	k, err := xblock.NewKey(key)
	if err != nil {
		return nil, err
	}
	if err = xblock.CheckCiphertext(data, 1); err != nil {
		return nil, err
	}

	blocks, err := xblock.Group(data)
	if err != nil {
		return nil, err
	}

	plain, err := x.xor(blocks[1:], xblock.NonceOf(blocks[0]), k)
	if err != nil {
		return nil, err
	}
	return xpadding.Unpad(xblock.Ungroup(plain))
}

// DecryptBlockAt decrypts the single data block i (counting from zero after
// the nonce block) without touching the blocks before it. The result is
// raw: when i is the last block it still carries the padding.
func (x *XCTR) DecryptBlockAt(data, key []byte, i int) (xblock.Block, error) {
	var blk xblock.Block

	k, err := xblock.NewKey(key)
	if err != nil {
		return blk, err
	}
	if err = xblock.CheckCiphertext(data, 1); err != nil {
		return blk, err
	}
	if n := len(data)/xblock.BlockSize - 1; i < 0 || i >= n {
		return blk, ErrBlockIndex
	}

	var (
		off      = (i + 1) * xblock.BlockSize
		nonce, _ = xblock.NewBlock(data[:xblock.BlockSize])
		c, _     = xblock.NewBlock(data[off : off+xblock.BlockSize])
	)
	return x.decryptAt(xblock.NonceOf(nonce), x.first+uint64(i), c, k), nil
}

// xor XORs every block with its keystream block. Block i uses counter
// first+i, so any stripe can start on its own.
func (x *XCTR) xor(in []xblock.Block, nonce xblock.Nonce, k xblock.Key) ([]xblock.Block, error) {
	workers := x.workers
	if workers <= 0 {
		workers = xblock.DefaultWorkers()
	}

	var (
		out       = make([]xblock.Block, len(in))
		exhausted int32
	)
	xblock.Stripe(len(in), workers, func(lo, hi int) {
		var (
			ctr     = xblock.CounterAt(x.first + uint64(lo))
			wrapped bool
		)
		for i := lo; i < hi; i++ {
			out[i] = xblock.Xor(in[i], x.cipher.EncryptBlock(xblock.CounterBlock(nonce, ctr), k))
			// Wrapping after the last block is harmless, before it the
			// keystream would repeat.
			if ctr, wrapped = ctr.Increment(); wrapped && i+1 < len(in) {
				atomic.StoreInt32(&exhausted, 1)
				return
			}
		}
	})

	if atomic.LoadInt32(&exhausted) != 0 {
		return nil, ErrCounterExhausted
	}
	return out, nil
}

func (x *XCTR) decryptAt(nonce xblock.Nonce, i uint64, c xblock.Block, k xblock.Key) xblock.Block {
	return xblock.Xor(c, x.cipher.EncryptBlock(xblock.CounterBlock(nonce, xblock.CounterAt(i)), k))
}

var std = New(xblock.AES{}, xrand.Reader, 0)

// Encrypt plaintext with AES-128 in CTR mode, the nonce comes from crypto/rand.
func Encrypt(plaintext, key []byte) ([]byte, error) {
	return std.Encrypt(plaintext, key)
}

// Decrypt data produced by Encrypt.
func Decrypt(data, key []byte) ([]byte, error) {
	return std.Decrypt(data, key)
}
