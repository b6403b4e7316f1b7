package flow

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports whether i is nil, including the typed-nil-pointer case that
// a plain comparison misses.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Errs flattens a joined error into its parts; a plain error yields a
// single-element slice and nil yields an empty one.
func Errs(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// IsCancellation reports whether err stems from context cancellation or a
// deadline.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
