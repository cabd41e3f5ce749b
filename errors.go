package huffstring

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrMalformed is wrapped by every error that reports a bitstring which
	// cannot be split into codes from the table it is decoded against.
	ErrMalformed = errors.New("malformed bitstring")

	// ErrInvalidTable is wrapped by errors that reject a code table, e.g.
	// one that is not prefix-free.
	ErrInvalidTable = errors.New("invalid code table")

	// ErrUnknownSymbol is returned when encoding a Symbol that the Table
	// has no code for.
	ErrUnknownSymbol = errors.New("symbol not in code table")

	// ErrInvalidSymbol is returned when a Symbol cannot be represented in
	// the requested form.
	ErrInvalidSymbol = errors.New("invalid symbol")
)

// DecodeError describes where and why decoding a bitstring failed.
type DecodeError struct {
	// Offset is the index into the bitstring of the digit that caused the
	// failure, or the length of the bitstring if the input ran out.
	Offset int

	// Pending holds the digits read since the last complete code.
	Pending string

	// Reason is a short human-readable description.
	Reason string
}

func (e *DecodeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s at offset %d (pending %s)", ErrMalformed.Error(), e.Reason, e.Offset, strconv.Quote(e.Pending))
}

func (e *DecodeError) Unwrap() error { return ErrMalformed }

func malformedf(offset int, pending string, format string, args ...interface{}) error {
	return &DecodeError{Offset: offset, Pending: pending, Reason: fmt.Sprintf(format, args...)}
}

func invalidTablef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidTable, fmt.Sprintf(format, args...))
}
