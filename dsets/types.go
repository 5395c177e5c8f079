package dsets

import (
	"errors"
	"fmt"
)

// Sentinel errors carried by contract-violation panics.
var (
	// ErrInvalidArgument indicates a zero or negative size, or Join(r, r).
	ErrInvalidArgument = errors.New("dsets: invalid argument")

	// ErrIndexOutOfRange indicates a label outside [1, Len()].
	ErrIndexOutOfRange = errors.New("dsets: index out of range")

	// ErrNotRoot indicates that Join received a label that is not a set root.
	ErrNotRoot = errors.New("dsets: label is not a root")
)

// item is one slot of the forest. parent equals the slot's own index when the
// slot is a root; size is meaningful only for roots.
type item struct {
	parent int
	size   int
}

// violation panics with a formatted error that wraps one of the sentinels.
func violation(format string, args ...interface{}) {
	panic(fmt.Errorf(format, args...))
}
