// xconfig_test.go
//
// Author: blinklv <blinklv@icloud.com>
// Create Time: 2018-01-26
// Maintainer: blinklv <blinklv@icloud.com>
// Last Change: 2026-10-19
package xlog

import (
	"testing"

	"github.com/X-Plan/xcipher/go-xassert"
)

func TestParseLevel(t *testing.T) {
	elements := []struct {
		str   string
		level int
		ok    bool
	}{
		{"fatal", FATAL, true},
		{"error", ERROR, true},
		{"warn", WARN, true},
		{"info", INFO, true},
		{"debug", DEBUG, true},
		{"  debug", DEBUG, true},
		{"Fatal", -1, false},
		{"eRror", -1, false},
		{"info ", -1, false},
		{"hello world", -1, false},
	}

	for _, element := range elements {
		level, err := ParseLevel(element.str)
		if element.ok {
			xassert.IsNil(t, err)
			xassert.Equal(t, level, element.level)
			xassert.Equal(t, LevelName(level), element.str[len(element.str)-len(LevelName(level)):])
		} else {
			xassert.NotNil(t, err, element.str)
		}
	}

	xassert.Equal(t, "", LevelName(0))
	xassert.Equal(t, "", LevelName(DEBUG+1))
}

func TestImportAndExport(t *testing.T) {
	elements := []struct {
		data map[string]interface{}
		ok   bool
	}{
		{map[string]interface{}{
			"dir":   "/tmp/log",
			"tag":   "test 1",
			"level": "info",
		}, true},
		{map[string]interface{}{
			"dir":   "/tmp/log",
			"tag":   "test 2",
			"level": float64(DEBUG),
		}, true},
		{map[string]interface{}{"dir": "/tmp/log", "level": WARN}, true},
		{map[string]interface{}{"tag": "hello", "level": int64(ERROR)}, true},
		{map[string]interface{}{"level": "fatal"}, true},

		{map[string]interface{}{
			"dir":   "/tmp/log",
			"tag":   "test 3",
			"level": "hello",
		}, false},
		{map[string]interface{}{"level": 0}, false},
		{map[string]interface{}{"level": 2.5}, false},
		{map[string]interface{}{"level": uint8(3)}, false},
		{map[string]interface{}{"dir": 12}, false},
		{map[string]interface{}{"max_size": "10 kb"}, false},
	}

	for _, element := range elements {
		xcfg := &XConfig{}
		err := xcfg.Import(element.data)
		if element.ok {
			xassert.IsNil(t, err)
			data := make(map[string]interface{})
			xassert.IsNil(t, xcfg.Export(data))

			tmp := &XConfig{}
			xassert.IsNil(t, tmp.Import(data))
			xassert.Equal(t, xcfg, tmp)
		} else {
			xassert.NotNil(t, err, element.data)
		}
	}

	xassert.NotNil(t, (&XConfig{}).Export(map[string]interface{}{}))
}
