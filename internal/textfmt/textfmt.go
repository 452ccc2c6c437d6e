// Package textfmt reads and writes the whitespace separated number lists
// used by the textual form of every basetypes value.
package textfmt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Common errors for textual decoding.
var (
	// ErrFieldCount is returned when the input holds the wrong number of values.
	ErrFieldCount = errors.New("textfmt: wrong number of values")

	// ErrNaN is returned when a value decodes to NaN.
	ErrNaN = errors.New("textfmt: NaN value")
)

// Floats decodes exactly n floating point values from s.
func Floats(s string, n int) ([]float64, error) {
	fields := strings.Fields(s)
	if len(fields) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), n)
	}
	out := make([]float64, n)
	for i, f := range fields {
		v, err := ParseFloat(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ParseFloat decodes a single token, rejecting NaN.
func ParseFloat(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) {
		return 0, ErrNaN
	}
	return v, nil
}

// ScanFloats reads n whitespace separated values from a fmt.ScanState.
// Nothing is returned unless all n values decode.
func ScanFloats(state fmt.ScanState, n int) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		tok, err := state.Token(true, notSpace)
		if err != nil {
			return nil, err
		}
		if len(tok) == 0 {
			return nil, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, i, n)
		}
		v, err := ParseFloat(string(tok))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Token reads one whitespace delimited token from a fmt.ScanState.
func Token(state fmt.ScanState) (string, error) {
	tok, err := state.Token(true, notSpace)
	if err != nil {
		return "", err
	}
	return string(tok), nil
}

// Format renders values with the shortest representation that parses back
// to the same float64.
func Format(vals ...float64) string {
	return FormatPrec(-1, vals...)
}

// FormatPrec is Format with an explicit significant digit count; -1 means
// shortest round-trip.
func FormatPrec(prec int, vals ...float64) string {
	var b strings.Builder
	for i, v := range vals {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', prec, 64))
	}
	return b.String()
}

func notSpace(r rune) bool {
	return !unicode.IsSpace(r)
}
