package group

import (
	"errors"
)

// Errors returned by group, codec, and pairing operations. They are
// sentinels: implementations wrap them with fmt.Errorf and %w to add
// detail, and callers test with errors.Is.
//
// Arithmetic on well-formed operands never returns an error. Decode,
// validation, and inversion failures are always surfaced through these
// values and never papered over with a default element.
var (
	// ErrLengthMismatch reports unequal-length inputs to a batched
	// operation such as MultiScalarMult or PairMulti.
	ErrLengthMismatch = errors.New("group: mismatched input lengths")

	// ErrDecode reports bytes that fail structural parsing: wrong
	// length, invalid flag bits, or an out-of-range field element.
	ErrDecode = errors.New("group: invalid byte representation")

	// ErrInvalidElement reports a structurally well-formed element that
	// fails the explicit validity check (off curve or outside the
	// prime-order subgroup).
	ErrInvalidElement = errors.New("group: element failed validity check")

	// ErrDivisionByZero reports an attempt to invert the zero scalar.
	ErrDivisionByZero = errors.New("group: cannot invert zero scalar")

	// ErrBufferTooSmall reports a destination buffer shorter than the
	// encoded size of the value being written.
	ErrBufferTooSmall = errors.New("group: destination buffer too small")
)
