// counter.go
//
// Author: blinklv <blinklv@icloud.com>
// Create Time: 2026-10-12
// Maintainer: blinklv <blinklv@icloud.com>
// Last Change: 2026-10-18

package xblock

import "encoding/binary"

// Length of the CTR nonce and counter; together they fill one Block.
const (
	NonceSize   = BlockSize / 2
	CounterSize = BlockSize - NonceSize
)

// Nonce is the random half of a CTR counter block.
type Nonce [NonceSize]byte

// Counter is an unsigned big-endian integer.
type Counter [CounterSize]byte

// Increment returns c+1. The carry runs from the least significant byte
// upwards; when every byte is 0xFF the result wraps to zero and the second
// return value is true.
func (c Counter) Increment() (Counter, bool) {
	for i := len(c) - 1; i >= 0; i-- {
		c[i]++
		if c[i] != 0 {
			return c, false
		}
	}
	return c, true
}

// Uint64 returns the numeric value of c.
func (c Counter) Uint64() uint64 {
	return binary.BigEndian.Uint64(c[:])
}

// CounterAt returns the counter value used for block n of a message.
func CounterAt(n uint64) Counter {
	var c Counter
	binary.BigEndian.PutUint64(c[:], n)
	return c
}

// CounterBlock returns nonce || c.
func CounterBlock(nonce Nonce, c Counter) Block {
	var v Block
	copy(v[:NonceSize], nonce[:])
	copy(v[NonceSize:], c[:])
	return v
}

// NonceBlock places nonce in the high half of a block, the low half is zero.
func NonceBlock(nonce Nonce) Block {
	return CounterBlock(nonce, Counter{})
}

// NonceOf extracts the nonce from the high half of blk. The low half is
// reserved and ignored.
func NonceOf(blk Block) Nonce {
	var nonce Nonce
	copy(nonce[:], blk[:NonceSize])
	return nonce
}
