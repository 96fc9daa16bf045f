package assdraw

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput is returned when drawing text does not follow the m/l/b grammar.
	ErrMalformedInput = errors.New("malformed drawing string")

	// ErrInvalidSegment is returned for a segment index outside the shape.
	ErrInvalidSegment = errors.New("invalid segment index")

	// ErrCannotRemoveOrigin is returned when removing the origin segment of a shape.
	ErrCannotRemoveOrigin = errors.New("cannot remove origin segment")

	// ErrCorruptShape is returned when a segment start points into the middle of a bezier triple.
	ErrCorruptShape = errors.New("segment points to middle of bezier definition, shape data corrupt")
)

// ParseError is the error returned by Parse. Offset is the number of bytes consumed before the offending command.
type ParseError struct {
	Offset int
	Msg    string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("%v: %s at position %d", ErrMalformedInput, err.Msg, err.Offset)
}

// Unwrap makes errors.Is(err, ErrMalformedInput) hold.
func (err *ParseError) Unwrap() error {
	return ErrMalformedInput
}
