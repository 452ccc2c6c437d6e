package basetypes

import (
	"fmt"
	"math"

	"github.com/gogpu/basetypes/internal/textfmt"
)

// Vec3 represents a 3D vector of float64 components.
// The zero value is the zero vector.
type Vec3 struct {
	vec [3]float64
}

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{vec: [3]float64{x, y, z}}
}

// X returns the first component.
func (v Vec3) X() float64 { return v.vec[0] }

// Y returns the second component.
func (v Vec3) Y() float64 { return v.vec[1] }

// Z returns the third component.
func (v Vec3) Z() float64 { return v.vec[2] }

// At returns component i. It panics if i is outside [0, 3).
func (v Vec3) At(i int) float64 {
	if i < 0 || i >= 3 {
		indexPanic("Vec3", i, 3)
	}
	return v.vec[i]
}

// SetX sets the first component. It panics if value is NaN.
func (v *Vec3) SetX(value float64) { v.Set(0, value) }

// SetY sets the second component. It panics if value is NaN.
func (v *Vec3) SetY(value float64) { v.Set(1, value) }

// SetZ sets the third component. It panics if value is NaN.
func (v *Vec3) SetZ(value float64) { v.Set(2, value) }

// Set sets component i. It panics if i is out of range or value is NaN.
func (v *Vec3) Set(i int, value float64) {
	if i < 0 || i >= 3 {
		indexPanic("Vec3", i, 3)
	}
	mustNotNaN("Vec3", value)
	v.vec[i] = value
}

// Add returns the sum of two vectors.
func (v Vec3) Add(w Vec3) Vec3 {
	return V3(v.vec[0]+w.vec[0], v.vec[1]+w.vec[1], v.vec[2]+w.vec[2])
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(w Vec3) Vec3 {
	return V3(v.vec[0]-w.vec[0], v.vec[1]-w.vec[1], v.vec[2]-w.vec[2])
}

// Mul returns the vector scaled by a scalar.
func (v Vec3) Mul(s float64) Vec3 {
	return V3(v.vec[0]*s, v.vec[1]*s, v.vec[2]*s)
}

// Div returns the vector divided by a scalar.
func (v Vec3) Div(s float64) Vec3 {
	return V3(v.vec[0]/s, v.vec[1]/s, v.vec[2]/s)
}

// Neg returns the negation of the vector.
func (v Vec3) Neg() Vec3 {
	return V3(-v.vec[0], -v.vec[1], -v.vec[2])
}

// Hadamard returns the component-wise product of two vectors.
func (v Vec3) Hadamard(w Vec3) Vec3 {
	return V3(v.vec[0]*w.vec[0], v.vec[1]*w.vec[1], v.vec[2]*w.vec[2])
}

// Cross returns the cross product v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return V3(
		v.vec[1]*w.vec[2]-v.vec[2]*w.vec[1],
		v.vec[2]*w.vec[0]-v.vec[0]*w.vec[2],
		v.vec[0]*w.vec[1]-v.vec[1]*w.vec[0],
	)
}

// AddAssign adds w to v in place.
func (v *Vec3) AddAssign(w Vec3) { *v = v.Add(w) }

// SubAssign subtracts w from v in place.
func (v *Vec3) SubAssign(w Vec3) { *v = v.Sub(w) }

// MulAssign scales v in place.
func (v *Vec3) MulAssign(s float64) { *v = v.Mul(s) }

// DivAssign divides v in place.
func (v *Vec3) DivAssign(s float64) { *v = v.Div(s) }

// HadamardAssign multiplies v component-wise by w in place.
func (v *Vec3) HadamardAssign(w Vec3) { *v = v.Hadamard(w) }

// TransformAssign replaces v with v.TransformPoint(m).
func (v *Vec3) TransformAssign(m Matrix4) { *v = v.TransformPoint(m) }

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(w Vec3) float64 {
	return v.vec[0]*w.vec[0] + v.vec[1]*w.vec[1] + v.vec[2]*w.vec[2]
}

// Length returns the length (magnitude) of the vector. It does not
// overflow for large finite components.
func (v Vec3) Length() float64 {
	return math.Hypot(math.Hypot(v.vec[0], v.vec[1]), v.vec[2])
}

// LengthSq returns the squared length of the vector.
func (v Vec3) LengthSq() float64 {
	return v.Dot(v)
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if the original vector has (near) zero length.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length < normalizeEpsilon {
		Logger().Debug("basetypes: normalizing zero-length Vec3")
		return Vec3{}
	}
	if math.IsInf(length, 1) {
		// Components close to MaxFloat64: bring the largest to 1 first.
		v = v.Div(max(math.Abs(v.vec[0]), math.Abs(v.vec[1]), math.Abs(v.vec[2])))
		length = v.Length()
	}
	return v.Div(length)
}

// Lerp performs linear interpolation between two vectors.
func (v Vec3) Lerp(w Vec3, t float64) Vec3 {
	return v.Add(w.Sub(v).Mul(t))
}

// TransformPoint returns the point v transformed by m as the row vector
// [x y z 1]·m, divided through by the resulting w. The divide is skipped
// when w is zero, which only happens for projective matrices.
func (v Vec3) TransformPoint(m Matrix4) Vec3 {
	x := v.vec[0]*m.mat[0][0] + v.vec[1]*m.mat[1][0] + v.vec[2]*m.mat[2][0] + m.mat[3][0]
	y := v.vec[0]*m.mat[0][1] + v.vec[1]*m.mat[1][1] + v.vec[2]*m.mat[2][1] + m.mat[3][1]
	z := v.vec[0]*m.mat[0][2] + v.vec[1]*m.mat[1][2] + v.vec[2]*m.mat[2][2] + m.mat[3][2]
	w := v.vec[0]*m.mat[0][3] + v.vec[1]*m.mat[1][3] + v.vec[2]*m.mat[2][3] + m.mat[3][3]
	if w != 0 && w != 1 {
		return V3(x/w, y/w, z/w)
	}
	return V3(x, y, z)
}

// TransformDirection returns the direction v transformed by the upper 3×3
// block of m, ignoring translation and projection.
func (v Vec3) TransformDirection(m Matrix4) Vec3 {
	return V3(
		v.vec[0]*m.mat[0][0]+v.vec[1]*m.mat[1][0]+v.vec[2]*m.mat[2][0],
		v.vec[0]*m.mat[0][1]+v.vec[1]*m.mat[1][1]+v.vec[2]*m.mat[2][1],
		v.vec[0]*m.mat[0][2]+v.vec[1]*m.mat[1][2]+v.vec[2]*m.mat[2][2],
	)
}

// IsZero returns true if the vector is the zero vector.
func (v Vec3) IsZero() bool {
	return v == Vec3{}
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec3) Approx(w Vec3, epsilon float64) bool {
	for i := range v.vec {
		if math.Abs(v.vec[i]-w.vec[i]) >= epsilon {
			return false
		}
	}
	return true
}

// String returns the components separated by spaces.
func (v Vec3) String() string {
	return textfmt.Format(v.vec[:]...)
}

// MarshalText implements encoding.TextMarshaler.
func (v Vec3) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Vec3) UnmarshalText(text []byte) error {
	parsed, err := ParseVec3(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Scan implements fmt.Scanner.
func (v *Vec3) Scan(state fmt.ScanState, _ rune) error {
	c, err := scanFloats("Vec3", state, 3)
	if err != nil {
		return err
	}
	*v = V3(c[0], c[1], c[2])
	return nil
}

// ParseVec3 parses "x y z".
func ParseVec3(s string) (Vec3, error) {
	c, err := decodeFloats("Vec3", s, 3)
	if err != nil {
		return Vec3{}, err
	}
	return V3(c[0], c[1], c[2]), nil
}
