package dds

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHeader indicates that a stream is structurally not a
	// DDS header, such as when the magic or a size field is wrong.
	ErrInvalidHeader = errors.New("invalid DDS header")

	// ErrUnsupportedFormat indicates a structurally valid header that
	// refers to a format, resource dimension or alpha mode outside of
	// the known set. Errors of this kind that carry the raw value are of type
	// *UnsupportedError.
	ErrUnsupportedFormat = errors.New("unsupported DDS format")

	// ErrUnspecifiedSize is returned when writing a header without a
	// pitch or linear size for a format whose size cannot be derived,
	// or whose derived pitch does not fit in the size field.
	ErrUnspecifiedSize = errors.New("pitch or linear size must be specified")
)

// UnsupportedError is returned when an enumerated field of an
// extension block has an unrecognized value. It matches
// ErrUnsupportedFormat with errors.Is.
type UnsupportedError struct {
	Field string
	Value uint32
}

func (err *UnsupportedError) Error() string {
	return fmt.Sprintf("%v: %v %d", ErrUnsupportedFormat, err.Field, err.Value)
}

func (err *UnsupportedError) Unwrap() error {
	return ErrUnsupportedFormat
}
