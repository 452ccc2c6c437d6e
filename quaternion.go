package basetypes

import (
	"fmt"
	"math"

	"github.com/gogpu/basetypes/internal/textfmt"
)

// Quaternion is a quaternion (x, y, z, w) with imaginary part (x, y, z)
// and real part w. Rotation quaternions have unit norm; arithmetic does
// not renormalize, so call Normalize after combining values.
type Quaternion struct {
	quat [4]float64
}

// NewQuaternion creates a quaternion from its components.
func NewQuaternion(x, y, z, w float64) Quaternion {
	return Quaternion{quat: [4]float64{x, y, z, w}}
}

// IdentityQuaternion returns the quaternion of the null rotation.
func IdentityQuaternion() Quaternion {
	return NewQuaternion(0, 0, 0, 1)
}

// QuaternionFromRotation converts an axis-angle rotation. The axis is
// assumed to be unit length and is not renormalized.
func QuaternionFromRotation(r Rotation) Quaternion {
	half := r.rot[3] / 2
	s := math.Sin(half)
	return NewQuaternion(r.rot[0]*s, r.rot[1]*s, r.rot[2]*s, math.Cos(half))
}

// QuaternionFromMatrix extracts the rotation held in the upper 3×3 block of
// m, which must be orthonormal for the result to be meaningful. The branch
// is chosen from the largest of the trace and the diagonal so the divisor
// is never close to zero.
func QuaternionFromMatrix(m Matrix4) Quaternion {
	a := &m.mat
	trace := a[0][0] + a[1][1] + a[2][2]

	switch {
	case trace >= a[0][0] && trace >= a[1][1] && trace >= a[2][2]:
		s := math.Sqrt(trace+1) * 2 // 4w
		return NewQuaternion(
			(a[1][2]-a[2][1])/s,
			(a[2][0]-a[0][2])/s,
			(a[0][1]-a[1][0])/s,
			s/4,
		)
	case a[0][0] >= a[1][1] && a[0][0] >= a[2][2]:
		s := math.Sqrt(1+a[0][0]-a[1][1]-a[2][2]) * 2 // 4x
		return NewQuaternion(
			s/4,
			(a[0][1]+a[1][0])/s,
			(a[0][2]+a[2][0])/s,
			(a[1][2]-a[2][1])/s,
		)
	case a[1][1] >= a[2][2]:
		s := math.Sqrt(1+a[1][1]-a[0][0]-a[2][2]) * 2 // 4y
		return NewQuaternion(
			(a[0][1]+a[1][0])/s,
			s/4,
			(a[1][2]+a[2][1])/s,
			(a[2][0]-a[0][2])/s,
		)
	default:
		s := math.Sqrt(1+a[2][2]-a[0][0]-a[1][1]) * 2 // 4z
		return NewQuaternion(
			(a[0][2]+a[2][0])/s,
			(a[1][2]+a[2][1])/s,
			s/4,
			(a[0][1]-a[1][0])/s,
		)
	}
}

// X returns the first imaginary component.
func (q Quaternion) X() float64 { return q.quat[0] }

// Y returns the second imaginary component.
func (q Quaternion) Y() float64 { return q.quat[1] }

// Z returns the third imaginary component.
func (q Quaternion) Z() float64 { return q.quat[2] }

// W returns the real component.
func (q Quaternion) W() float64 { return q.quat[3] }

// At returns component i in (x, y, z, w) order. It panics if i is out of range.
func (q Quaternion) At(i int) float64 {
	if i < 0 || i >= 4 {
		indexPanic("Quaternion", i, 4)
	}
	return q.quat[i]
}

// Set sets component i. It panics if i is out of range or value is NaN.
func (q *Quaternion) Set(i int, value float64) {
	if i < 0 || i >= 4 {
		indexPanic("Quaternion", i, 4)
	}
	mustNotNaN("Quaternion", value)
	q.quat[i] = value
}

// SetX sets the first imaginary component.
func (q *Quaternion) SetX(value float64) { q.Set(0, value) }

// SetY sets the second imaginary component.
func (q *Quaternion) SetY(value float64) { q.Set(1, value) }

// SetZ sets the third imaginary component.
func (q *Quaternion) SetZ(value float64) { q.Set(2, value) }

// SetW sets the real component.
func (q *Quaternion) SetW(value float64) { q.Set(3, value) }

// Add returns the component-wise sum.
func (q Quaternion) Add(p Quaternion) Quaternion {
	return NewQuaternion(q.quat[0]+p.quat[0], q.quat[1]+p.quat[1], q.quat[2]+p.quat[2], q.quat[3]+p.quat[3])
}

// Sub returns the component-wise difference.
func (q Quaternion) Sub(p Quaternion) Quaternion {
	return NewQuaternion(q.quat[0]-p.quat[0], q.quat[1]-p.quat[1], q.quat[2]-p.quat[2], q.quat[3]-p.quat[3])
}

// Scale returns q multiplied by a scalar.
func (q Quaternion) Scale(s float64) Quaternion {
	return NewQuaternion(q.quat[0]*s, q.quat[1]*s, q.quat[2]*s, q.quat[3]*s)
}

// Div returns q divided by a scalar.
func (q Quaternion) Div(s float64) Quaternion {
	return NewQuaternion(q.quat[0]/s, q.quat[1]/s, q.quat[2]/s, q.quat[3]/s)
}

// Neg returns -q, which encodes the same rotation as q.
func (q Quaternion) Neg() Quaternion {
	return q.Scale(-1)
}

// Mul returns the Hamilton product q·p. The product is not commutative.
func (q Quaternion) Mul(p Quaternion) Quaternion {
	x1, y1, z1, w1 := q.quat[0], q.quat[1], q.quat[2], q.quat[3]
	x2, y2, z2, w2 := p.quat[0], p.quat[1], p.quat[2], p.quat[3]
	return NewQuaternion(
		w1*x2+x1*w2+y1*z2-z1*y2,
		w1*y2-x1*z2+y1*w2+z1*x2,
		w1*z2+x1*y2-y1*x2+z1*w2,
		w1*w2-x1*x2-y1*y2-z1*z2,
	)
}

// AddAssign adds p to q in place.
func (q *Quaternion) AddAssign(p Quaternion) { *q = q.Add(p) }

// SubAssign subtracts p from q in place.
func (q *Quaternion) SubAssign(p Quaternion) { *q = q.Sub(p) }

// MulAssign replaces q with q·p.
func (q *Quaternion) MulAssign(p Quaternion) { *q = q.Mul(p) }

// ScaleAssign scales q in place.
func (q *Quaternion) ScaleAssign(s float64) { *q = q.Scale(s) }

// DivAssign divides q in place.
func (q *Quaternion) DivAssign(s float64) { *q = q.Div(s) }

// Dot returns the four-dimensional dot product.
func (q Quaternion) Dot(p Quaternion) float64 {
	return q.quat[0]*p.quat[0] + q.quat[1]*p.quat[1] + q.quat[2]*p.quat[2] + q.quat[3]*p.quat[3]
}

// Conjugate returns q with its imaginary part negated.
func (q Quaternion) Conjugate() Quaternion {
	return NewQuaternion(-q.quat[0], -q.quat[1], -q.quat[2], q.quat[3])
}

// Norm returns the Euclidean length of q as a 4-vector. It does not
// overflow for large finite components.
func (q Quaternion) Norm() float64 {
	return math.Hypot(math.Hypot(q.quat[0], q.quat[1]), math.Hypot(q.quat[2], q.quat[3]))
}

// Normalize returns q scaled to unit norm. A quaternion whose norm is
// (near) zero is returned unchanged.
func (q Quaternion) Normalize() Quaternion {
	n := q.Norm()
	if n < normalizeEpsilon {
		Logger().Debug("basetypes: normalizing zero Quaternion")
		return q
	}
	if math.IsInf(n, 1) {
		q = q.Div(max(math.Abs(q.quat[0]), math.Abs(q.quat[1]), math.Abs(q.quat[2]), math.Abs(q.quat[3])))
		n = q.Norm()
	}
	return q.Div(n)
}

// Inverse returns the multiplicative inverse conjugate(q)/|q|².
// It panics if q is the zero quaternion.
func (q Quaternion) Inverse() Quaternion {
	n2 := q.Dot(q)
	if n2 == 0 {
		panic("basetypes: inverse of zero Quaternion")
	}
	return q.Conjugate().Div(n2)
}

// Approx returns true if all components differ by less than epsilon.
func (q Quaternion) Approx(p Quaternion, epsilon float64) bool {
	for i := range q.quat {
		if math.Abs(q.quat[i]-p.quat[i]) >= epsilon {
			return false
		}
	}
	return true
}

// String returns "x y z w".
func (q Quaternion) String() string {
	return textfmt.Format(q.quat[:]...)
}

// MarshalText implements encoding.TextMarshaler.
func (q Quaternion) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (q *Quaternion) UnmarshalText(text []byte) error {
	parsed, err := ParseQuaternion(string(text))
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

// Scan implements fmt.Scanner.
func (q *Quaternion) Scan(state fmt.ScanState, _ rune) error {
	v, err := scanFloats("Quaternion", state, 4)
	if err != nil {
		return err
	}
	*q = NewQuaternion(v[0], v[1], v[2], v[3])
	return nil
}

// ParseQuaternion parses "x y z w".
func ParseQuaternion(s string) (Quaternion, error) {
	v, err := decodeFloats("Quaternion", s, 4)
	if err != nil {
		return Quaternion{}, err
	}
	return NewQuaternion(v[0], v[1], v[2], v[3]), nil
}
