// xblock.go
//
// Author: blinklv <blinklv@icloud.com>
// Create Time: 2026-10-12
// Maintainer: blinklv <blinklv@icloud.com>
// Last Change: 2026-10-19

// go-xblock provides the fixed-size values shared by all block modes: Block,
// Key and Counter, splitting data into blocks and joining them back, the XOR
// helpers and the single-block cipher primitive the modes are built on.
package xblock

import "errors"

const Version = "1.0.0"

// Size of a block and of a key, in bytes.
const (
	BlockSize = 16
	KeySize   = 16
)

var (
	// Key isn't exactly KeySize bytes.
	ErrInvalidKeyLength = errors.New("xblock: invalid key length")

	// Data passed to Group or NewBlock isn't block aligned.
	ErrInvalidLength = errors.New("xblock: data length is not a multiple of block size")

	// Ciphertext length isn't a positive multiple of BlockSize.
	ErrInvalidCiphertextLength = errors.New("xblock: invalid ciphertext length")

	// Ciphertext can't hold the IV (or nonce) block plus one data block.
	ErrCiphertextTooShort = errors.New("xblock: ciphertext too short")
)

// Block is the unit the cipher primitive works on.
type Block [BlockSize]byte

// Key is the secret the primitive is keyed with. This package never
// generates, stores or derives keys.
type Key [KeySize]byte

// Copy b into a new Block. The length of b must be exactly BlockSize.
func NewBlock(b []byte) (Block, error) {
	var blk Block
	if len(b) != BlockSize {
		return blk, ErrInvalidLength
	}
	copy(blk[:], b)
	return blk, nil
}

// Copy k into a new Key. The caller's slice isn't retained.
func NewKey(k []byte) (Key, error) {
	var key Key
	if len(k) != KeySize {
		return key, ErrInvalidKeyLength
	}
	copy(key[:], k)
	return key, nil
}

// Group splits block aligned data into consecutive blocks, in order.
func Group(data []byte) ([]Block, error) {
	if len(data)%BlockSize != 0 {
		return nil, ErrInvalidLength
	}

	blocks := make([]Block, 0, len(data)/BlockSize)
	for len(data) > 0 {
		var blk Block
		copy(blk[:], data[:BlockSize])
		blocks = append(blocks, blk)
		data = data[BlockSize:]
	}
	return blocks, nil
}

// Ungroup concatenates blocks in order. Ungroup(Group(x)) equals x for
// every block aligned x.
func Ungroup(blocks []Block) []byte {
	data := make([]byte, 0, len(blocks)*BlockSize)
	for i := range blocks {
		data = append(data, blocks[i][:]...)
	}
	return data
}

// Xor returns a ^ b.
func Xor(a, b Block) Block {
	var c Block
	for i := range c {
		c[i] = a[i] ^ b[i]
	}
	return c
}

// XorBytes sets dst[i] = a[i] ^ b[i] for i < n = min(len(a), len(b)) and
// returns n. It panics if dst is shorter than n.
func XorBytes(dst, a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if len(dst) < n {
		panic("xblock: dst too short")
	}
	for i := 0; i < n; i++ {
		dst[i] = a[i] ^ b[i]
	}
	return n
}

// CheckCiphertext validates a ciphertext made of prefix leading blocks
// (0 for ECB, 1 for the IV or nonce of CBC and CTR) followed by at least one
// data block. Anything shorter than that is reported as too short before
// the alignment is looked at.
func CheckCiphertext(data []byte, prefix int) error {
	if prefix > 0 && len(data) < (prefix+1)*BlockSize {
		return ErrCiphertextTooShort
	}
	if len(data) == 0 || len(data)%BlockSize != 0 {
		return ErrInvalidCiphertextLength
	}
	return nil
}
