package basetypes

import (
	"fmt"
	"math"

	"github.com/gogpu/basetypes/internal/textfmt"
)

// Vec2 represents a 2D vector of float64 components.
// The zero value is the zero vector.
type Vec2 struct {
	vec [2]float64
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{vec: [2]float64{x, y}}
}

// X returns the first component.
func (v Vec2) X() float64 { return v.vec[0] }

// Y returns the second component.
func (v Vec2) Y() float64 { return v.vec[1] }

// At returns component i. It panics if i is not 0 or 1.
func (v Vec2) At(i int) float64 {
	if i < 0 || i >= 2 {
		indexPanic("Vec2", i, 2)
	}
	return v.vec[i]
}

// SetX sets the first component. It panics if value is NaN.
func (v *Vec2) SetX(value float64) { v.Set(0, value) }

// SetY sets the second component. It panics if value is NaN.
func (v *Vec2) SetY(value float64) { v.Set(1, value) }

// Set sets component i. It panics if i is out of range or value is NaN.
func (v *Vec2) Set(i int, value float64) {
	if i < 0 || i >= 2 {
		indexPanic("Vec2", i, 2)
	}
	mustNotNaN("Vec2", value)
	v.vec[i] = value
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return V2(v.vec[0]+w.vec[0], v.vec[1]+w.vec[1])
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return V2(v.vec[0]-w.vec[0], v.vec[1]-w.vec[1])
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float64) Vec2 {
	return V2(v.vec[0]*s, v.vec[1]*s)
}

// Div returns the vector divided by a scalar.
func (v Vec2) Div(s float64) Vec2 {
	return V2(v.vec[0]/s, v.vec[1]/s)
}

// Neg returns the negation of the vector.
func (v Vec2) Neg() Vec2 {
	return V2(-v.vec[0], -v.vec[1])
}

// AddAssign adds w to v in place.
func (v *Vec2) AddAssign(w Vec2) { *v = v.Add(w) }

// SubAssign subtracts w from v in place.
func (v *Vec2) SubAssign(w Vec2) { *v = v.Sub(w) }

// MulAssign scales v in place.
func (v *Vec2) MulAssign(s float64) { *v = v.Mul(s) }

// DivAssign divides v in place.
func (v *Vec2) DivAssign(s float64) { *v = v.Div(s) }

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.vec[0]*w.vec[0] + v.vec[1]*w.vec[1]
}

// Length returns the length (magnitude) of the vector. It does not
// overflow for large finite components.
func (v Vec2) Length() float64 {
	return math.Hypot(v.vec[0], v.vec[1])
}

// LengthSq returns the squared length of the vector.
// This is faster than Length() when you only need to compare magnitudes.
func (v Vec2) LengthSq() float64 {
	return v.Dot(v)
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if the original vector has (near) zero length.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length < normalizeEpsilon {
		Logger().Debug("basetypes: normalizing zero-length Vec2")
		return Vec2{}
	}
	if math.IsInf(length, 1) {
		v = v.Div(max(math.Abs(v.vec[0]), math.Abs(v.vec[1])))
		length = v.Length()
	}
	return v.Div(length)
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w, intermediate values interpolate.
func (v Vec2) Lerp(w Vec2, t float64) Vec2 {
	return v.Add(w.Sub(v).Mul(t))
}

// IsZero returns true if the vector is the zero vector.
func (v Vec2) IsZero() bool {
	return v.vec[0] == 0 && v.vec[1] == 0
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec2) Approx(w Vec2, epsilon float64) bool {
	return math.Abs(v.vec[0]-w.vec[0]) < epsilon && math.Abs(v.vec[1]-w.vec[1]) < epsilon
}

// String returns the components separated by a space.
func (v Vec2) String() string {
	return textfmt.Format(v.vec[:]...)
}

// MarshalText implements encoding.TextMarshaler.
func (v Vec2) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Vec2) UnmarshalText(text []byte) error {
	parsed, err := ParseVec2(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Scan implements fmt.Scanner.
func (v *Vec2) Scan(state fmt.ScanState, _ rune) error {
	c, err := scanFloats("Vec2", state, 2)
	if err != nil {
		return err
	}
	*v = V2(c[0], c[1])
	return nil
}

// ParseVec2 parses "x y".
func ParseVec2(s string) (Vec2, error) {
	c, err := decodeFloats("Vec2", s, 2)
	if err != nil {
		return Vec2{}, err
	}
	return V2(c[0], c[1]), nil
}
