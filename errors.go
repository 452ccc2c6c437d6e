package basetypes

import (
	"errors"
	"fmt"
	"math"
)

// Common errors for basetypes operations.
var (
	// ErrParse is returned when textual input does not encode a valid value.
	ErrParse = errors.New("basetypes: malformed value")

	// ErrAllocation is returned when an image buffer cannot be allocated.
	ErrAllocation = errors.New("basetypes: image allocation failed")

	// ErrInvalidComponents is returned when an image component count is
	// outside 1..4.
	ErrInvalidComponents = errors.New("basetypes: image components must be 1 to 4")

	// ErrDataTooLarge is returned when pixel data exceeds width*height*components.
	ErrDataTooLarge = errors.New("basetypes: image data exceeds dimensions")

	// ErrInvalidDimensions is returned when an image width or height is negative.
	ErrInvalidDimensions = errors.New("basetypes: invalid image dimensions")
)

// parseError wraps a decoding failure for the named type, logging it at
// debug level.
func parseError(typ string, err error) error {
	Logger().Debug("basetypes: rejected textual value", "type", typ, "err", err)
	return fmt.Errorf("%w: %s: %w", ErrParse, typ, err)
}

// mustNotNaN panics if v is NaN.
func mustNotNaN(typ string, v float64) {
	if math.IsNaN(v) {
		panic("basetypes: NaN assigned to " + typ)
	}
}

// indexPanic reports an out-of-range component index.
func indexPanic(typ string, i, n int) {
	panic(fmt.Sprintf("basetypes: %s index %d out of range [0,%d)", typ, i, n))
}
