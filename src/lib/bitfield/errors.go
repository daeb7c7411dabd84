package bitfield

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	// ErrUnsupportedTarget is carried by the panic of every hardware access
	// compiled for an architecture that lacks the instruction.
	ErrUnsupportedTarget = errors.New("bitfield: hardware access not supported on this target")

	// ErrOutOfRange is returned when a raw value does not fit in its field.
	ErrOutOfRange = errors.New("bitfield: value out of range")

	// ErrLayout is returned when a field or layout description is invalid.
	ErrLayout = errors.New("bitfield: invalid layout")
)

// UnsupportedTargetError names the operation that cannot run on this target.
type UnsupportedTargetError struct {
	Op   string
	Arch string
}

func (e *UnsupportedTargetError) Error() string {
	return fmt.Sprintf("%s: %s on %s", ErrUnsupportedTarget, e.Op, e.Arch)
}

func (e *UnsupportedTargetError) Unwrap() error { return ErrUnsupportedTarget }

// Unsupported builds the value a non-arm64 hardware stub panics with.
func Unsupported(op string) error {
	return &UnsupportedTargetError{Op: op, Arch: runtime.GOARCH}
}

// OutOfRangeError reports a value that does not fit in a field's width.
type OutOfRangeError struct {
	Field string
	Width uint8
	Value uint64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: %#x does not fit in %d bit field %s",
		ErrOutOfRange, e.Value, e.Width, e.Field)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// LayoutError reports an invalid field or layout description.
type LayoutError struct {
	Layout string
	Field  string
	Reason string
}

func (e *LayoutError) Error() string {
	if e.Layout == "" {
		return fmt.Sprintf("%s: field %s: %s", ErrLayout, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s.%s: %s", ErrLayout, e.Layout, e.Field, e.Reason)
}

func (e *LayoutError) Unwrap() error { return ErrLayout }
