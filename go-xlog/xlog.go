// xlog.go
//
//		Copyright (C), blinklv. All rights reserved.
//
// 创建人: blinklv <blinklv@icloud.com>
// 创建日期: 2016-10-26
// 修订人: blinklv <blinklv@icloud.com>
// 修订日期: 2026-10-19

// xlog implements a leveled logger which is safe for concurrent use in a
// single process.
package xlog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/X-Plan/xcipher/go-xvalid"
)

const (
	Version = "2.0.0"
)

// Log priority, the smaller the number the higher the priority.
const (
	_ = iota
	FATAL
	ERROR
	WARN
	INFO
	DEBUG
)

var levelNames = [...]string{"", "FATAL", "ERROR", "WARN", "INFO", "DEBUG"}

var ErrClosed = errors.New("xlog: logger has been closed")

// The format of each record is:
//
//	[yyyy-mm-dd hh:mm:ss][tag][level][location]: message
//
// '[location]' is the file name and line number of the caller, it's only
// printed by Debug. Write bypasses the format and stores the message as is.
type XLogger struct {
	mtx    sync.Mutex
	w      io.Writer
	file   *os.File // nil when writing to an injected io.Writer.
	closed bool

	dir   string
	tag   string
	level int

	now func() time.Time
}

// New creates a XLogger. When xcfg.Output is nil the records are appended
// to '<Dir>/<Tag>.log', creating the directory if necessary.
func New(xcfg *XConfig) (*XLogger, error) {
	if xcfg == nil {
		return nil, fmt.Errorf("XConfig is nil")
	}

	cfg := *xcfg
	if err := xvalid.Validate(&cfg); err != nil {
		return nil, err
	}

	xl := &XLogger{
		dir:   cfg.Dir,
		tag:   cfg.Tag,
		level: cfg.Level,
		now:   time.Now,
	}
	if xl.tag == "" {
		xl.tag = filepath.Base(os.Args[0])
	}

	if cfg.Output != nil {
		xl.w = cfg.Output
		return xl, nil
	}

	if err := os.MkdirAll(xl.dir, 0755); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(filepath.Join(xl.dir, xl.tag+".log"), os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}
	xl.file, xl.w = file, file
	return xl, nil
}

func (xl *XLogger) Fatal(format string, args ...interface{}) error {
	return xl.record(FATAL, format, args...)
}

func (xl *XLogger) Error(format string, args ...interface{}) error {
	return xl.record(ERROR, format, args...)
}

func (xl *XLogger) Warn(format string, args ...interface{}) error {
	return xl.record(WARN, format, args...)
}

func (xl *XLogger) Info(format string, args ...interface{}) error {
	return xl.record(INFO, format, args...)
}

func (xl *XLogger) Debug(format string, args ...interface{}) error {
	return xl.record(DEBUG, format, args...)
}

// Enabled reports whether records of this level will be stored.
func (xl *XLogger) Enabled(level int) bool {
	return level >= FATAL && level <= xl.level
}

func (xl *XLogger) record(level int, format string, args ...interface{}) error {
	if !xl.Enabled(level) {
		return nil
	}
	_, err := xl.output(level, 3, fmt.Sprintf(format, args...))
	return err
}

// Write stores b without any prefix and ignores the level.
func (xl *XLogger) Write(b []byte) (int, error) {
	xl.mtx.Lock()
	defer xl.mtx.Unlock()

	if xl.closed {
		return 0, ErrClosed
	}
	return xl.w.Write(b)
}

// cd is the number of frames between output and the user's call.
func (xl *XLogger) output(level int, cd int, msg string) (int, error) {
	var location string
	if level == DEBUG {
		if _, file, line, ok := runtime.Caller(cd); ok {
			location = fmt.Sprintf("[%s:%d]", filepath.Base(file), line)
		}
	}

	record := fmt.Sprintf("[%s][%s][%s]%s: %s\n",
		xl.now().Format("2006-01-02 15:04:05"), xl.tag, levelNames[level],
		location, strings.TrimRight(msg, "\n"))

	xl.mtx.Lock()
	defer xl.mtx.Unlock()

	if xl.closed {
		return 0, ErrClosed
	}
	return io.WriteString(xl.w, record)
}

// Close closes the log file. An injected io.Writer is left open. Calling
// Close twice returns ErrClosed.
func (xl *XLogger) Close() error {
	xl.mtx.Lock()
	defer xl.mtx.Unlock()

	if xl.closed {
		return ErrClosed
	}
	xl.closed = true

	if xl.file != nil {
		return xl.file.Close()
	}
	return nil
}
