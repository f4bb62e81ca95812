// cipher.go
//
// Author: blinklv <blinklv@icloud.com>
// Create Time: 2026-10-12
// Maintainer: blinklv <blinklv@icloud.com>
// Last Change: 2026-10-19

package xblock

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/twofish"
)

var ErrUnknownCipher = errors.New("xblock: unknown cipher")

// Cipher encrypts and decrypts a single block under a key. Implementations
// must be deterministic and stateless, and DecryptBlock(EncryptBlock(x, k), k)
// must equal x for every x and k. Both methods are safe for concurrent use.
type Cipher interface {
	EncryptBlock(b Block, k Key) Block
	DecryptBlock(b Block, k Key) Block
}

// AES is AES-128.
type AES struct{}

func (AES) EncryptBlock(b Block, k Key) Block {
	// aes.NewCipher only fails on a bad key length, which Key rules out.
	c, _ := aes.NewCipher(k[:])
	var out Block
	c.Encrypt(out[:], b[:])
	return out
}

func (AES) DecryptBlock(b Block, k Key) Block {
	c, _ := aes.NewCipher(k[:])
	var out Block
	c.Decrypt(out[:], b[:])
	return out
}

// Twofish with a 128-bit key. It has the same block size as AES, so every
// mode accepts it unchanged.
type Twofish struct{}

func (Twofish) EncryptBlock(b Block, k Key) Block {
	c, _ := twofish.NewCipher(k[:])
	var out Block
	c.Encrypt(out[:], b[:])
	return out
}

func (Twofish) DecryptBlock(b Block, k Key) Block {
	c, _ := twofish.NewCipher(k[:])
	var out Block
	c.Decrypt(out[:], b[:])
	return out
}

// CipherByName maps a configuration value ("aes", "twofish") to a Cipher.
// An empty name selects AES.
func CipherByName(name string) (Cipher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "aes", "aes-128", "aes128":
		return AES{}, nil
	case "twofish":
		return Twofish{}, nil
	}
	return nil, fmt.Errorf("%w (%s)", ErrUnknownCipher, name)
}

// CipherName is the reverse of CipherByName for the built-in ciphers.
func CipherName(c Cipher) string {
	switch c.(type) {
	case AES, *AES:
		return "aes"
	case Twofish, *Twofish:
		return "twofish"
	}
	return fmt.Sprintf("%T", c)
}

// Keyed binds c to k and exposes the pair as a crypto/cipher.Block, so the
// primitive can be handed to code written against the standard library.
func Keyed(c Cipher, k Key) cipher.Block {
	return keyed{c, k}
}

type keyed struct {
	c Cipher
	k Key
}

func (kd keyed) BlockSize() int { return BlockSize }

func (kd keyed) Encrypt(dst, src []byte) {
	var in Block
	copy(in[:], src[:BlockSize])
	out := kd.c.EncryptBlock(in, kd.k)
	copy(dst[:BlockSize], out[:])
}

func (kd keyed) Decrypt(dst, src []byte) {
	var in Block
	copy(in[:], src[:BlockSize])
	out := kd.c.DecryptBlock(in, kd.k)
	copy(dst[:BlockSize], out[:])
}
