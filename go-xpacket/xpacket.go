// xpacket.go
//
// Author: blinklv <blinklv@icloud.com>
// Create Time: 2017-01-25
// Maintainer: blinklv <blinklv@icloud.com>
// Last Change: 2026-10-19

// A simple binary protocol encode/decode package. Each packet carries a
// one-octet tag telling the receiver how to interpret the body.
package xpacket

import (
	"errors"
	"io"

	"github.com/X-Plan/xcipher/go-xbufferpool"
	"github.com/golang/protobuf/proto"
)

const (
	sop = "SOP" // start of packet
	eop = "EOP" // end of packet

	// Upper bound of a body, a larger LEN is rejected before allocating.
	MaxBodySize = 64 << 20

	maxVarintLen = 10
)

var (
	ErrStartOfPacket = errors.New("xpacket: start of packet is invalid")
	ErrEndOfPacket   = errors.New("xpacket: end of packet is invalid")
	ErrLength        = errors.New("xpacket: length is invalid")
)

var pool, _ = xbufferpool.New(64, 4096)

// Packet Format:
// [SOP (3 octet)][TAG (1 octet)][LEN (uvarint)][BODY (LEN octet)][EOP (3 octet)]
//
// The whole packet reaches w in a single Write.
func Encode(w io.Writer, tag byte, body []byte) error {
	if len(body) > MaxBodySize {
		return ErrLength
	}

	xb, err := pool.Get()
	if err != nil {
		return err
	}
	defer xb.Close()

	xb.WriteString(sop)
	xb.WriteByte(tag)
	xb.Write(proto.EncodeVarint(uint64(len(body))))
	xb.Write(body)
	xb.WriteString(eop)

	_, err = w.Write(xb.Bytes())
	return err
}

// Decode reads one packet from r and returns its tag and body.
func Decode(r io.Reader) (byte, []byte, error) {
	var (
		err  error
		tag  byte
		body []byte
		buf  = make([]byte, 4)
	)

	if _, err = io.ReadFull(r, buf); err != nil {
		return 0, nil, err
	}
	if string(buf[:3]) != sop {
		return 0, nil, ErrStartOfPacket
	}
	tag = buf[3]

	n, err := readLength(r)
	if err != nil {
		return 0, nil, err
	}

	body = make([]byte, int(n))
	if _, err = io.ReadFull(r, body); err != nil {
		return 0, nil, unexpected(err)
	}

	if _, err = io.ReadFull(r, buf[:3]); err != nil {
		return 0, nil, unexpected(err)
	}
	if string(buf[:3]) != eop {
		return 0, nil, ErrEndOfPacket
	}

	return tag, body, nil
}

// readLength reads the LEN varint one octet at a time, so nothing past it
// is consumed from r.
func readLength(r io.Reader) (uint64, error) {
	var (
		raw = make([]byte, 0, maxVarintLen)
		one = make([]byte, 1)
	)
	for {
		if _, err := io.ReadFull(r, one); err != nil {
			return 0, unexpected(err)
		}
		raw = append(raw, one[0])
		if one[0] < 0x80 {
			break
		}
		if len(raw) == maxVarintLen {
			return 0, ErrLength
		}
	}

	n, size := proto.DecodeVarint(raw)
	if size != len(raw) || n > MaxBodySize {
		return 0, ErrLength
	}
	return n, nil
}

// Once SOP has been read, running out of input is a truncated packet.
func unexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
