// term.go
//
// 创建人: blinklv <blinklv@icloud.com>
// 创建日期: 2017-01-07
// 修订人: blinklv <blinklv@icloud.com>
// 修订日期: 2026-10-19
package xvalid

import (
	"fmt"
	"math"
	rft "reflect"
	"regexp"
	"strconv"
	"strings"
)

// The order is also the order of application.
const (
	tdefault termtype = iota
	tnoempty
	tmin
	tmax
	tmatch
)

type termtype int

var termstr = []string{"default", "noempty", "min", "max", "match"}

func (tt termtype) String() string {
	return termstr[int(tt)]
}

type term struct {
	t    termtype
	raw  string
	name string

	// float64 for numeric bounds and defaults, string for string defaults,
	// *regexp.Regexp for match.
	v interface{}
}

func newTerms(name string, kind rft.Kind, tag string) []term {
	var (
		terms []term
		seen  = make(map[termtype]term)
	)

	for _, raw := range strings.Split(tag, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		key, value, _ := strings.Cut(raw, "=")
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		t := term{raw: key, name: name}
		if key != "noempty" {
			t.raw = key + "=" + value
		}

		switch key {
		case "noempty":
			t.t = tnoempty
		case "min", "max":
			t.t = tmin
			if key == "max" {
				t.t = tmax
			}
			if kind == rft.String {
				t.panic("%v type can't support '%s' term", kind, key)
			}
			t.v = t.number(kind, value)
		case "default":
			t.t = tdefault
			if kind == rft.String {
				t.v = value
			} else {
				t.v = t.number(kind, value)
			}
		case "match":
			t.t = tmatch
			if kind != rft.String {
				t.panic("%v type can't support 'match' term", kind)
			}
			re, err := regexp.Compile(value)
			if err != nil {
				t.panic("invalid term '%s'", t.raw)
			}
			t.v = re
		default:
			t.panic("unknown term '%s'", key)
		}

		if _, ok := seen[t.t]; ok {
			t.panic("duplicate term '%s'", t.t)
		}
		seen[t.t] = t
		terms = append(terms, t)
	}

	contradict(seen)
	return terms
}

func contradict(seen map[termtype]term) {
	var (
		lo, hasMin  = seen[tmin]
		hi, hasMax  = seen[tmax]
		def, hasDef = seen[tdefault]
	)
	if hasMin && hasMax && lo.v.(float64) > hi.v.(float64) {
		lo.panic("term '%s' and term '%s' are contradictory", lo.raw, hi.raw)
	}

	if !hasDef {
		return
	}
	d, ok := def.v.(float64)
	if !ok {
		return
	}
	if hasMin && d < lo.v.(float64) {
		def.panic("term '%s' and term '%s' are contradictory", def.raw, lo.raw)
	}
	if hasMax && d > hi.v.(float64) {
		def.panic("term '%s' and term '%s' are contradictory", def.raw, hi.raw)
	}
}

func (t term) number(kind rft.Kind, value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		t.panic("invalid term '%s'", t.raw)
	}

	switch kind {
	case rft.Uint, rft.Uint8, rft.Uint16, rft.Uint32, rft.Uint64:
		if f < 0 {
			t.panic("invalid term '%s'", t.raw)
		}
		fallthrough
	case rft.Int, rft.Int8, rft.Int16, rft.Int32, rft.Int64:
		if f != math.Trunc(f) {
			t.panic("invalid term '%s'", t.raw)
		}
	}
	return f
}

func (t term) check(v rft.Value) error {
	switch t.t {
	case tdefault:
		if v.IsZero() {
			t.assign(v)
		}
	case tnoempty:
		if v.IsZero() {
			return t.errorf("is empty")
		}
	case tmin:
		if f := toFloat(v); f < t.v.(float64) {
			return t.errorf("%v is less than %v", f, t.v)
		}
	case tmax:
		if f := toFloat(v); f > t.v.(float64) {
			return t.errorf("%v is greater than %v", f, t.v)
		}
	case tmatch:
		if re := t.v.(*regexp.Regexp); !re.MatchString(v.String()) {
			return t.errorf("'%s' doesn't match '%s'", v.String(), re)
		}
	}
	return nil
}

func (t term) assign(v rft.Value) {
	if !v.CanSet() {
		t.panic("can't assign the default value")
	}

	switch v.Kind() {
	case rft.String:
		v.SetString(t.v.(string))
	case rft.Int, rft.Int8, rft.Int16, rft.Int32, rft.Int64:
		v.SetInt(int64(t.v.(float64)))
	case rft.Uint, rft.Uint8, rft.Uint16, rft.Uint32, rft.Uint64:
		v.SetUint(uint64(t.v.(float64)))
	case rft.Float32, rft.Float64:
		v.SetFloat(t.v.(float64))
	}
}

func toFloat(v rft.Value) float64 {
	switch v.Kind() {
	case rft.Int, rft.Int8, rft.Int16, rft.Int32, rft.Int64:
		return float64(v.Int())
	case rft.Uint, rft.Uint8, rft.Uint16, rft.Uint32, rft.Uint64:
		return float64(v.Uint())
	}
	return v.Float()
}

func (t term) panic(format string, args ...interface{}) {
	panic(fmt.Sprintf("%s: "+format, append([]interface{}{t.name}, args...)...))
}

func (t term) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{t.name}, args...)...)
}
