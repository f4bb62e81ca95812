// xecb_test.go
//
// Author: blinklv <blinklv@icloud.com>
// Create Time: 2017-09-12
// Maintainer: blinklv <blinklv@icloud.com>
// Last Change: 2026-10-19

package xecb

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"encoding/hex"
	"testing"

	"github.com/X-Plan/xcipher/go-xassert"
	"github.com/X-Plan/xcipher/go-xblock"
	"github.com/X-Plan/xcipher/go-xpadding"
	"github.com/X-Plan/xcipher/go-xrand"
)

var block, _ = des.NewTripleDESCipher([]byte("123456789012345678901234"))

var text = `
    Somebody tell me.
    Why it feels more real when I dream than when I am awake.
    How can I know if my senses are lying?

    There is some fiction in your truth,
    and some truth in your fiction.
    To the truth, you must risk everything.

    Who are you?
    Am I alone?

    You are not alone.

                                        --- A Kid's Story
    `

var key = []byte("0123456789abcdef")

func TestPanic(t *testing.T) {
	var (
		e = NewECBEncrypter(block)
		d = NewECBDecrypter(block)
	)

	xassert.Panics(t, func() {
		e.CryptBlocks(nil, make([]byte, block.BlockSize()+1))
	})
	xassert.Panics(t, func() {
		e.CryptBlocks(make([]byte, block.BlockSize()*10), make([]byte, block.BlockSize()*20))
	})
	e.CryptBlocks(make([]byte, block.BlockSize()*10), make([]byte, block.BlockSize()*10))
	xassert.Panics(t, func() {
		d.CryptBlocks(nil, make([]byte, block.BlockSize()+1))
	})
	xassert.Panics(t, func() {
		d.CryptBlocks(make([]byte, block.BlockSize()*10), make([]byte, block.BlockSize()*20))
	})
	d.CryptBlocks(make([]byte, block.BlockSize()*10), make([]byte, block.BlockSize()*10))
}

func TestBlockMode(t *testing.T) {
	var (
		e   = NewECBEncrypter(block)
		d   = NewECBDecrypter(block)
		src = pkcs5padding([]byte(text), e.BlockSize())
		dst = make([]byte, len(src))
	)

	e.CryptBlocks(dst, src)
	d.CryptBlocks(dst, dst)

	xassert.Equal(t, string(pkcs5unpadding(dst)), text)
}

// XECB and the cipher.BlockMode path must agree on AES.
func TestBlockModeMatchesXECB(t *testing.T) {
	stdlib, err := aes.NewCipher(key)
	xassert.IsNil(t, err)

	for _, b := range []cipher.Block{stdlib, xblock.Keyed(xblock.AES{}, mustKey(key))} {
		src := xpadding.Pad([]byte(text))
		dst := make([]byte, len(src))
		NewECBEncrypter(b).CryptBlocks(dst, src)

		ct, err := Encrypt([]byte(text), key)
		xassert.IsNil(t, err)
		xassert.Equal(t, dst, ct)
	}
}

func TestRoundTrip(t *testing.T) {
	patterns := map[string]func(int) []byte{
		"zero": func(n int) []byte { return make([]byte, n) },
		"ff":   func(n int) []byte { return bytes.Repeat([]byte{0xFF}, n) },
		"rand": func(n int) []byte { b, _ := xrand.Bytes(n); return b },
	}

	for _, c := range []xblock.Cipher{xblock.AES{}, xblock.Twofish{}} {
		for _, workers := range []int{0, 1, 4} {
			x := New(c, workers)
			for name, pattern := range patterns {
				for n := 0; n <= 1000; n++ {
					pt := pattern(n)
					ct, err := x.Encrypt(pt, key)
					xassert.IsNil(t, err)
					xassert.Equal(t, 0, len(ct)%xblock.BlockSize)
					xassert.Equal(t, len(xpadding.Pad(pt)), len(ct))

					back, err := x.Decrypt(ct, key)
					xassert.IsNil(t, err)
					xassert.IsTrue(t, bytes.Equal(pt, back), name, n, workers)
				}
			}
		}
	}
}

// Equal plaintext blocks leak as equal ciphertext blocks.
func TestDeterminism(t *testing.T) {
	ct, err := Encrypt(bytes.Repeat([]byte{0x41}, 32), make([]byte, 16))
	xassert.IsNil(t, err)
	xassert.Equal(t, 48, len(ct))
	xassert.Equal(t, ct[0:16], ct[16:32])
	xassert.NotEqual(t, ct[16:32], ct[32:48])

	again, err := Encrypt(bytes.Repeat([]byte{0x41}, 32), make([]byte, 16))
	xassert.IsNil(t, err)
	xassert.Equal(t, ct, again)
}

// NIST SP 800-38A F.1.1, ECB-AES128, first two blocks.
func TestKnownAnswer(t *testing.T) {
	var (
		k  = mustHex("2b7e151628aed2a6abf7158809cf4f3c")
		pt = mustHex("6bc1bee22e409f96e93d7e117393172a" + "ae2d8a571e03ac9c9eb76fac45af8e51")
		ct = mustHex("3ad77bb40d7a3660a89ecaf32466ef97" + "f5d3d58503b9699de785895a96fdbaaf")
	)

	out, err := Encrypt(pt, k)
	xassert.IsNil(t, err)
	xassert.Equal(t, ct, out[:32])

	back, err := Decrypt(out, k)
	xassert.IsNil(t, err)
	xassert.Equal(t, pt, back)
}

func TestErrors(t *testing.T) {
	for _, n := range []int{0, 8, 15, 17, 32} {
		_, err := Encrypt([]byte("x"), make([]byte, n))
		xassert.ErrorIs(t, err, xblock.ErrInvalidKeyLength, n)
		_, err = Decrypt(make([]byte, 16), make([]byte, n))
		xassert.ErrorIs(t, err, xblock.ErrInvalidKeyLength, n)
	}

	for _, n := range []int{0, 1, 15, 17, 31, 33} {
		_, err := Decrypt(make([]byte, n), key)
		xassert.ErrorIs(t, err, xblock.ErrInvalidCiphertextLength, n)
	}

	// A final block whose plaintext ends in 0x00 can't be unpadded.
	ct, _ := Encrypt([]byte("attack at dawn"), key)
	forged := xblock.AES{}.EncryptBlock(xblock.Block{15: 0x00, 0: 'A'}, mustKey(key))
	copy(ct[len(ct)-16:], forged[:])
	pt, err := Decrypt(ct, key)
	xassert.ErrorIs(t, err, xpadding.ErrInvalidPadding)
	xassert.IsNil(t, pt)
}

func BenchmarkEncrypt1K(b *testing.B)  { benchmarkEncrypt(b, 1024, 0) }
func BenchmarkEncrypt64K(b *testing.B) { benchmarkEncrypt(b, 64*1024, 0) }

func BenchmarkEncrypt64KSingle(b *testing.B) { benchmarkEncrypt(b, 64*1024, 1) }

func benchmarkEncrypt(b *testing.B, n, workers int) {
	var (
		x  = New(xblock.AES{}, workers)
		pt = make([]byte, n)
	)
	b.SetBytes(int64(n))
	for i := 0; i < b.N; i++ {
		x.Encrypt(pt, key)
	}
}

func mustKey(b []byte) xblock.Key {
	k, err := xblock.NewKey(b)
	if err != nil {
		panic(err)
	}
	return k
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func pkcs5padding(data []byte, bs int) []byte {
	n := bs - len(data)%bs
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs5unpadding(data []byte) []byte {
	n := len(data)
	return data[:(n - int(data[n-1]))]
}
