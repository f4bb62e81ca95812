// xpadding.go
//
// Author: blinklv <blinklv@icloud.com>
// Create Time: 2026-10-12
// Maintainer: blinklv <blinklv@icloud.com>
// Last Change: 2026-10-19

// go-xpadding implements the PKCS#7 padding used by the block modes: the
// value of every pad byte is the number of pad bytes, and data which is
// already block aligned gets a whole extra block, so padding can always be
// removed without guessing.
package xpadding

import (
	"crypto/subtle"
	"errors"

	"github.com/X-Plan/xcipher/go-xblock"
)

const Version = "1.0.0"

var ErrInvalidPadding = errors.New("xpadding: invalid padding")

// Pad returns data followed by k bytes of value k, where
// k = BlockSize - len(data)%BlockSize, always in [1, BlockSize].
// The backing array of data is never written.
func Pad(data []byte) []byte {
	k := xblock.BlockSize - len(data)%xblock.BlockSize
	padded := make([]byte, len(data), len(data)+k)
	copy(padded, data)
	for i := 0; i < k; i++ {
		padded = append(padded, byte(k))
	}
	return padded
}

// Unpad strips exactly k bytes, k being the value of the last byte. All k
// trailing bytes must equal k, otherwise ErrInvalidPadding is returned and
// nothing of data is handed back.
func Unpad(data []byte) ([]byte, error) {
	n := len(data)
	if n == 0 {
		return nil, ErrInvalidPadding
	}

	k := int(data[n-1])
	if k == 0 || k > xblock.BlockSize || k > n {
		return nil, ErrInvalidPadding
	}

	good := 1
	for _, b := range data[n-k:] {
		good &= subtle.ConstantTimeByteEq(b, byte(k))
	}
	if good != 1 {
		return nil, ErrInvalidPadding
	}

	return data[:n-k], nil
}
