package bananatree

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions a caller can reasonably run into, as
// opposed to internal invariant violations (see assertThat). Calling an
// accessor (SpecialRoot, GlobalMax, Walk, ...) before Construct is a
// programmer error, not one of these -- it panics via assertThat like
// any other broken invariant, rather than returning an error.
var (
	ErrEmptySequence    = errors.New("bananatree: sample sequence has no items")
	ErrAlreadyConstruct = errors.New("bananatree: tree has already been constructed")
)

// assertThat panics with a package-prefixed message if cond is false. It is
// the Go counterpart of the original implementation's massert: a checked
// invariant, not a recoverable error condition.
func assertThat(cond bool, msg string, args ...interface{}) {
	if cond {
		return
	}
	text := fmt.Sprintf(msg, args...)
	tracer().Errorf("invariant violated: %s", text)
	panic("bananatree: " + text)
}
