// xassert.go
//
// Author: blinklv <blinklv@icloud.com>
// Create Time: 2016-10-14
// Maintainer: blinklv <blinklv@icloud.com>
// Last Change: 2026-10-19

// go-xassert is a assert package used to test.
package xassert

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"regexp"
	"runtime"
)

// This interface is used to unify '*testing.T' and '*testing.B' type.
type XT interface {
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	FailNow()
}

// Assert the condition is true.
func IsTrue(xt XT, result bool, args ...interface{}) {
	assert(xt, result, func() string { return "result is not true" }, args, 1)
}

// Assert the condition is false.
func IsFalse(xt XT, result bool, args ...interface{}) {
	assert(xt, !result, func() string { return "result is not false" }, args, 1)
}

// Assert the actual value is equal to expected value.
func Equal(xt XT, exp, act interface{}, args ...interface{}) {
	assert(xt, reflect.DeepEqual(exp, act), func() string {
		return fmt.Sprintf("%#v != %#v", exp, act)
	}, args, 1)
}

// Assert the actual value is not equal to expected value.
func NotEqual(xt XT, exp, act interface{}, args ...interface{}) {
	assert(xt, !reflect.DeepEqual(exp, act), func() string {
		return fmt.Sprintf("%#v == %#v", exp, act)
	}, args, 1)
}

// Assert the actual value is nil.
func IsNil(xt XT, act interface{}, args ...interface{}) {
	assert(xt, isNil(act), func() string {
		if _, ok := act.(error); ok {
			return fmt.Sprintf("error (%s) is not nil", act)
		}
		return fmt.Sprintf("%#v is not nil", act)
	}, args, 1)
}

// Assert the actual value is not nil.
func NotNil(xt XT, act interface{}, args ...interface{}) {
	assert(xt, !isNil(act), func() string { return "actual value is nil" }, args, 1)
}

// Assert err matches target in the sense of errors.Is.
func ErrorIs(xt XT, err, target error, args ...interface{}) {
	assert(xt, errors.Is(err, target), func() string {
		return fmt.Sprintf("error (%v) is not (%v)", err, target)
	}, args, 1)
}

// Assert the callback panics.
func Panics(xt XT, cb func(), args ...interface{}) {
	assert(xt, capture(cb) != nil, func() string { return "callback didn't panic" }, args, 1)
}

// Assert the string format of the actual value is matched with pattern (regular expression).
func Match(xt XT, act interface{}, pattern string, args ...interface{}) {
	assert(xt, regexp.MustCompile(pattern).MatchString(fmt.Sprintf("%s", act)), func() string {
		return fmt.Sprintf("(%s) not match (%s)", act, pattern)
	}, args, 1)
}

// Assert the string format of the actual value is not matched with pattern (regular expression).
func NotMatch(xt XT, act interface{}, pattern string, args ...interface{}) {
	assert(xt, !regexp.MustCompile(pattern).MatchString(fmt.Sprintf("%s", act)), func() string {
		return fmt.Sprintf("(%s) match (%s)", act, pattern)
	}, args, 1)
}

func isNil(act interface{}) bool {
	if act == nil {
		return true
	}

	switch v := reflect.ValueOf(act); v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	}

	return false
}

func capture(cb func()) (x interface{}) {
	defer func() { x = recover() }()
	cb()
	return
}

// The message is only built when the assertion fails.
func assert(xt XT, result bool, msg func() string, args []interface{}, cd int) {
	if !result {
		_, file, line, _ := runtime.Caller(cd + 1)
		xt.Errorf("%s:%d", filepath.Base(file), line)
		str := msg()
		if len(args) > 0 {
			str += " - " + fmt.Sprint(args...)
		}
		xt.Error(str)
		xt.FailNow()
	}
}
