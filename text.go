package basetypes

import (
	"fmt"

	"github.com/gogpu/basetypes/internal/textfmt"
)

// Numeric tolerances shared by the conversions.
const (
	// normalizeEpsilon is the shortest length a vector or quaternion may
	// have and still be normalized.
	normalizeEpsilon = 1e-12

	// axisTolerance is how far a parsed rotation axis may be from unit length.
	axisTolerance = 1e-5

	// slerpEpsilon is the 1-cos(angle) below which slerp interpolates linearly.
	slerpEpsilon = 1e-6
)

// decodeFloats parses exactly n components of typ from s.
func decodeFloats(typ, s string, n int) ([]float64, error) {
	v, err := textfmt.Floats(s, n)
	if err != nil {
		return nil, parseError(typ, err)
	}
	return v, nil
}

// scanFloats reads exactly n components of typ from a scan state.
func scanFloats(typ string, state fmt.ScanState, n int) ([]float64, error) {
	v, err := textfmt.ScanFloats(state, n)
	if err != nil {
		return nil, parseError(typ, err)
	}
	return v, nil
}
