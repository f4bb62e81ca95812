// xctr_test.go
//
// Author: blinklv <blinklv@icloud.com>
// Create Time: 2026-10-14
// Maintainer: blinklv <blinklv@icloud.com>
// Last Change: 2026-10-19
package xctr

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"math"
	"testing"

	"github.com/X-Plan/xcipher/go-xassert"
	"github.com/X-Plan/xcipher/go-xblock"
	"github.com/X-Plan/xcipher/go-xpadding"
	"github.com/X-Plan/xcipher/go-xrand"
)

var key = []byte("0123456789abcdef")

func TestRoundTrip(t *testing.T) {
	patterns := map[string]func(int) []byte{
		"zero": func(n int) []byte { return make([]byte, n) },
		"ff":   func(n int) []byte { return bytes.Repeat([]byte{0xFF}, n) },
		"rand": func(n int) []byte { b, _ := xrand.Bytes(n); return b },
	}

	for _, c := range []xblock.Cipher{xblock.AES{}, xblock.Twofish{}} {
		for _, workers := range []int{0, 1, 5} {
			x := New(c, nil, workers)
			for name, pattern := range patterns {
				for n := 0; n <= 1000; n++ {
					pt := pattern(n)
					ct, err := x.Encrypt(pt, key)
					xassert.IsNil(t, err)
					xassert.Equal(t, len(xpadding.Pad(pt))+xblock.BlockSize, len(ct))

					back, err := x.Decrypt(ct, key)
					xassert.IsNil(t, err)
					xassert.IsTrue(t, bytes.Equal(pt, back), name, n, workers)
				}
			}
		}
	}
}

// Large enough to be split across several workers.
func TestParallel(t *testing.T) {
	pt, err := xrand.Bytes(64 * 1024)
	xassert.IsNil(t, err)

	var (
		src    = []byte{1, 2, 3, 4, 5, 6, 7, 8}
		single = New(xblock.AES{}, xrand.Fixed(src), 1)
		multi  = New(xblock.AES{}, xrand.Fixed(src), 8)
	)
	a, err := single.Encrypt(pt, key)
	xassert.IsNil(t, err)
	b, err := multi.Encrypt(pt, key)
	xassert.IsNil(t, err)
	xassert.IsTrue(t, bytes.Equal(a, b))

	back, err := multi.Decrypt(a, key)
	xassert.IsNil(t, err)
	xassert.IsTrue(t, bytes.Equal(pt, back))
}

func TestNonceBlock(t *testing.T) {
	x := New(xblock.AES{}, xrand.Fixed([]byte{0xAB}), 0)
	ct, err := x.Encrypt([]byte("hello"), key)
	xassert.IsNil(t, err)
	xassert.Equal(t, 32, len(ct))
	xassert.Equal(t, bytes.Repeat([]byte{0xAB}, 8), ct[:8])
	xassert.Equal(t, make([]byte, 8), ct[8:16])

	// The low half of the nonce block is reserved, decryption ignores it.
	ct[12] = 0x55
	pt, err := x.Decrypt(ct, key)
	xassert.IsNil(t, err)
	xassert.Equal(t, []byte("hello"), pt)
}

// The keystream must be E(nonce || counter) with a big-endian counter
// from zero, which is what crypto/cipher's CTR produces for the IV
// nonce || 0.
func TestMatchesStdlib(t *testing.T) {
	pt := bytes.Repeat([]byte("counter mode "), 40)
	ct, err := Encrypt(pt, key)
	xassert.IsNil(t, err)

	b, _ := aes.NewCipher(key)
	iv := append(append([]byte(nil), ct[:8]...), make([]byte, 8)...)
	want := xpadding.Pad(pt)
	cipher.NewCTR(b, iv).XORKeyStream(want, want)
	xassert.Equal(t, want, ct[16:])
}

func TestFreshNonce(t *testing.T) {
	pt := bytes.Repeat([]byte{0x41}, 64)
	a, err := Encrypt(pt, key)
	xassert.IsNil(t, err)
	b, err := Encrypt(pt, key)
	xassert.IsNil(t, err)

	xassert.NotEqual(t, a, b)
	xassert.NotEqual(t, a[:8], b[:8])
	for i := 1; i < 4; i++ {
		xassert.NotEqual(t, a[i*16:(i+1)*16], a[(i+1)*16:(i+2)*16], i)
	}
}

// Flipping one ciphertext bit flips the same plaintext bit only.
func TestMalleability(t *testing.T) {
	pt, _ := xrand.Bytes(100)
	ct, err := Encrypt(pt, key)
	xassert.IsNil(t, err)

	for _, pos := range []struct{ block, j, bit int }{{0, 0, 0}, {2, 7, 3}, {5, 15, 7}} {
		forged := append([]byte(nil), ct...)
		forged[(pos.block+1)*16+pos.j] ^= 1 << uint(pos.bit)

		back, err := Decrypt(forged, key)
		xassert.IsNil(t, err)

		want := append([]byte(nil), pt...)
		want[pos.block*16+pos.j] ^= 1 << uint(pos.bit)
		xassert.Equal(t, want, back, pos.block, pos.j)
	}
}

func TestDecryptBlockAt(t *testing.T) {
	pt, _ := xrand.Bytes(200)
	x := New(nil, nil, 0)
	ct, err := x.Encrypt(pt, key)
	xassert.IsNil(t, err)

	padded := xpadding.Pad(pt)
	for i := 0; i < len(padded)/16; i++ {
		blk, err := x.DecryptBlockAt(ct, key, i)
		xassert.IsNil(t, err)
		xassert.Equal(t, padded[i*16:(i+1)*16], blk[:], i)
	}

	for _, i := range []int{-1, len(padded) / 16, 1000} {
		_, err = x.DecryptBlockAt(ct, key, i)
		xassert.ErrorIs(t, err, ErrBlockIndex, i)
	}
	_, err = x.DecryptBlockAt(ct[:16], key, 0)
	xassert.ErrorIs(t, err, xblock.ErrCiphertextTooShort)
	_, err = x.DecryptBlockAt(ct, key[:8], 0)
	xassert.ErrorIs(t, err, xblock.ErrInvalidKeyLength)
}

func TestCounterExhausted(t *testing.T) {
	x := New(nil, nil, 1)

	// Counters MaxUint64-1 and MaxUint64 are fine.
	x.first = math.MaxUint64 - 1
	ct, err := x.Encrypt(make([]byte, 20), key)
	xassert.IsNil(t, err)
	pt, err := x.Decrypt(ct, key)
	xassert.IsNil(t, err)
	xassert.Equal(t, make([]byte, 20), pt)

	// A third block would reuse counter zero.
	_, err = x.Encrypt(make([]byte, 40), key)
	xassert.ErrorIs(t, err, ErrCounterExhausted)

	x.first = 0
	ct, err = x.Encrypt(make([]byte, 40), key)
	xassert.IsNil(t, err)
	x.first = math.MaxUint64 - 1
	_, err = x.Decrypt(ct, key)
	xassert.ErrorIs(t, err, ErrCounterExhausted)
}

func TestErrors(t *testing.T) {
	for _, n := range []int{0, 15, 17} {
		_, err := Encrypt(nil, make([]byte, n))
		xassert.ErrorIs(t, err, xblock.ErrInvalidKeyLength, n)
		_, err = Decrypt(make([]byte, 32), make([]byte, n))
		xassert.ErrorIs(t, err, xblock.ErrInvalidKeyLength, n)
	}

	for _, n := range []int{0, 8, 16, 31} {
		_, err := Decrypt(make([]byte, n), key)
		xassert.ErrorIs(t, err, xblock.ErrCiphertextTooShort, n)
	}
	for _, n := range []int{33, 40} {
		_, err := Decrypt(make([]byte, n), key)
		xassert.ErrorIs(t, err, xblock.ErrInvalidCiphertextLength, n)
	}

	_, err := New(nil, xrand.Failing(errors.New("closed")), 0).Encrypt(nil, key)
	xassert.ErrorIs(t, err, xrand.ErrRandom)
}

// CTR is malleable, so the last padding byte can be turned into zero.
func TestInvalidPadding(t *testing.T) {
	ct, err := Encrypt([]byte("attack at dawn"), key)
	xassert.IsNil(t, err)

	// The padded plaintext ends with 0x02 0x02.
	ct[len(ct)-1] ^= 0x02

	pt, err := Decrypt(ct, key)
	xassert.ErrorIs(t, err, xpadding.ErrInvalidPadding)
	xassert.IsNil(t, pt)
}

func BenchmarkEncrypt64K(b *testing.B) {
	pt := make([]byte, 64*1024)
	b.SetBytes(int64(len(pt)))
	for i := 0; i < b.N; i++ {
		Encrypt(pt, key)
	}
}
