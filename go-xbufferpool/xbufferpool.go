// xbufferpool.go
//
//		Copyright (C), blinklv. All rights reserved.
//
// 创建人: blinklv <blinklv@icloud.com>
// 创建日期: 2016-10-16
// 修订人: blinklv <blinklv@icloud.com>
// 修订日期: 2026-10-19

// go-xbufferpool is a concurrency-safe pool of byte buffers. Buffers may
// carry key material or plaintext, so their contents are wiped before they
// go back to the pool.
package xbufferpool

import (
	"bytes"
	"errors"
	"sync"
)

var Version = "1.1.0"

// Operating on a closed pool.
var ErrClosed = errors.New("xbufferpool: pool has been closed")

// The XBuffer has already been returned.
var ErrXBufferIsNil = errors.New("xbufferpool: buffer is nil")

var errInvalidArgs = errors.New("xbufferpool: invalid capacity or buffer size")

// XBuffer wraps a bytes.Buffer bound to the pool it came from. Close hands
// the buffer back. An XBuffer is not safe for concurrent use.
type XBuffer struct {
	*bytes.Buffer
	xbp *XBufferPool
}

// Close wipes the buffer and returns it to its pool. A second Close
// returns ErrXBufferIsNil.
func (xb *XBuffer) Close() error {
	err := xb.xbp.put(xb.Buffer)
	xb.Buffer = nil
	return err
}

type XBufferPool struct {
	mtx        sync.RWMutex
	closed     bool
	buffers    chan *bytes.Buffer
	bufferSize int
}

// New creates a pool keeping at most capacity idle buffers. bufferSize is
// the initial capacity of new buffers, zero means the bytes.Buffer default.
func New(capacity int, bufferSize int) (*XBufferPool, error) {
	if capacity <= 0 || bufferSize < 0 {
		return nil, errInvalidArgs
	}

	return &XBufferPool{
		buffers:    make(chan *bytes.Buffer, capacity),
		bufferSize: bufferSize,
	}, nil
}

// Get returns an idle buffer when there is one and allocates otherwise.
func (xbp *XBufferPool) Get() (*XBuffer, error) {
	xbp.mtx.RLock()
	defer xbp.mtx.RUnlock()
	if xbp.closed {
		return nil, ErrClosed
	}

	var buf *bytes.Buffer
	select {
	case buf = <-xbp.buffers:
	default:
		if xbp.bufferSize > 0 {
			buf = bytes.NewBuffer(make([]byte, 0, xbp.bufferSize))
		} else {
			buf = new(bytes.Buffer)
		}
	}
	return &XBuffer{Buffer: buf, xbp: xbp}, nil
}

func (xbp *XBufferPool) put(buf *bytes.Buffer) error {
	if buf == nil {
		return ErrXBufferIsNil
	}

	wipe(buf)

	xbp.mtx.RLock()
	defer xbp.mtx.RUnlock()
	if xbp.closed {
		return ErrClosed
	}

	select {
	case xbp.buffers <- buf:
	default:
		// Pool is full, leave the buffer to the garbage collector.
	}
	return nil
}

// wipe zeroes everything the buffer has ever held, then resets it.
func wipe(buf *bytes.Buffer) {
	buf.Reset()
	b := buf.Bytes()[:buf.Cap()]
	for i := range b {
		b[i] = 0
	}
}

// Close drops every idle buffer. Later Get and put calls fail with
// ErrClosed, and so does a second Close.
func (xbp *XBufferPool) Close() error {
	xbp.mtx.Lock()
	defer xbp.mtx.Unlock()
	if xbp.closed {
		return ErrClosed
	}
	xbp.closed = true

	for {
		select {
		case <-xbp.buffers:
		default:
			return nil
		}
	}
}

// Size is the number of idle buffers.
func (xbp *XBufferPool) Size() int {
	return len(xbp.buffers)
}
