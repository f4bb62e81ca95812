// wrap.go
//
// Author: blinklv <blinklv@icloud.com>
// Create Time: 2017-02-07
// Maintainer: blinklv <blinklv@icloud.com>
// Last Change: 2026-10-19

package xlog

import "io"

// The wrappers turn a XLogger into an io.Writer of a fixed level, so it can
// back a standard library *log.Logger. Records under the logger's level are
// dropped but still reported as written.

type FatalWrapper struct{ *XLogger }

func (fw FatalWrapper) Write(data []byte) (int, error) {
	return fw.XLogger.wrapped(FATAL, data)
}

type ErrorWrapper struct{ *XLogger }

func (ew ErrorWrapper) Write(data []byte) (int, error) {
	return ew.XLogger.wrapped(ERROR, data)
}

type WarnWrapper struct{ *XLogger }

func (ww WarnWrapper) Write(data []byte) (int, error) {
	return ww.XLogger.wrapped(WARN, data)
}

type InfoWrapper struct{ *XLogger }

func (iw InfoWrapper) Write(data []byte) (int, error) {
	return iw.XLogger.wrapped(INFO, data)
}

type DebugWrapper struct{ *XLogger }

func (dw DebugWrapper) Write(data []byte) (int, error) {
	return dw.XLogger.wrapped(DEBUG, data)
}

// Wrap returns the wrapper of level.
func Wrap(xl *XLogger, level int) io.Writer {
	switch level {
	case FATAL:
		return FatalWrapper{xl}
	case ERROR:
		return ErrorWrapper{xl}
	case WARN:
		return WarnWrapper{xl}
	case INFO:
		return InfoWrapper{xl}
	}
	return DebugWrapper{xl}
}

func (xl *XLogger) wrapped(level int, data []byte) (int, error) {
	if !xl.Enabled(level) {
		return len(data), nil
	}
	if _, err := xl.output(level, 3, string(data)); err != nil {
		return 0, err
	}
	return len(data), nil
}
