package numfmt

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks values that cannot be formatted at all (NaN, ±Inf).
var ErrInvalidInput = errors.New("numfmt: invalid input")

// ErrFormatConstruction marks formatter construction failures.
var ErrFormatConstruction = errors.New("numfmt: failed to format")

// ErrSessionClosed is returned by Flush after Close.
var ErrSessionClosed = errors.New("numfmt: session closed")

var errNilFormatter = errors.New("factory returned nil formatter")

// InvalidInputError is returned before any cache interaction when the value
// to format is not a finite number.
type InvalidInputError struct {
	Value float64
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("numfmt: invalid number provided for formatting: %v", e.Value)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// FormatConstructionError wraps the reason a formatter could not be built for
// the requested locale, currency and options.
type FormatConstructionError struct {
	Key FormatterKey
	Err error
}

func (e *FormatConstructionError) Error() string {
	if e.Err == nil {
		return "numfmt: failed to format"
	}
	return "numfmt: failed to format: " + e.Err.Error()
}

func (e *FormatConstructionError) Unwrap() error {
	return e.Err
}

func (e *FormatConstructionError) Is(target error) bool {
	return target == ErrFormatConstruction
}

// ErrNilConfig is returned when building from a nil Config.
var ErrNilConfig = errors.New("numfmt: nil config")

// ErrNilSession is returned by template helpers built without a session.
var ErrNilSession = errors.New("numfmt: nil session")
