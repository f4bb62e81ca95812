// xvalid.go
//
// 创建人: blinklv <blinklv@icloud.com>
// 创建日期: 2017-01-07
// 修订人: blinklv <blinklv@icloud.com>
// 修订日期: 2026-10-19

// go-xvalid checks configuration structs against the rules written in
// their 'xvalid' tags.
package xvalid

import (
	"fmt"
	rft "reflect"
	"sort"
)

const Version = "2.0.0"

// Validate checks every field of the struct x points to which carries an
// 'xvalid' tag. The tag is a comma-separated list of terms:
//
//  1. noempty: the value isn't the zero value.
//  2. min=N: lower bound, numeric fields only.
//  3. max=N: upper bound, numeric fields only.
//  4. default=V: assigned when the field is zero, before the other terms.
//  5. match=RE: regular expression, string fields only.
//
// A malformed tag, or x not being a pointer to struct, is a programming
// error and panics. A field breaking its rules returns an error.
func Validate(x interface{}) error {
	xv := rft.ValueOf(x)
	if xv.Kind() != rft.Ptr || xv.Elem().Kind() != rft.Struct {
		panic(fmt.Sprintf("xvalid: %T isn't a pointer to struct", x))
	}

	var (
		sv = xv.Elem()
		st = sv.Type()
	)
	for i := 0; i < sv.NumField(); i++ {
		sf := st.Field(i)
		tag, ok := sf.Tag.Lookup("xvalid")
		if !ok {
			continue
		}

		fv := sv.Field(i)
		if !supported(fv.Kind()) {
			panic(fmt.Sprintf("%s: %v type can't support 'xvalid' tag", sf.Name, fv.Kind()))
		}

		terms := newTerms(sf.Name, fv.Kind(), tag)
		sort.SliceStable(terms, func(i, j int) bool { return terms[i].t < terms[j].t })
		for _, t := range terms {
			if err := t.check(fv); err != nil {
				return err
			}
		}
	}
	return nil
}

func supported(kind rft.Kind) bool {
	switch kind {
	case rft.Int, rft.Int8, rft.Int16, rft.Int32, rft.Int64,
		rft.Uint, rft.Uint8, rft.Uint16, rft.Uint32, rft.Uint64,
		rft.Float32, rft.Float64, rft.String:
		return true
	}
	return false
}
