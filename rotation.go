package basetypes

import (
	"fmt"
	"math"

	"github.com/gogpu/basetypes/internal/textfmt"
)

// Rotation is an axis-angle rotation (x, y, z, angle) with the angle in
// radians. The axis should be unit length; it is not renormalized on
// construction, but conversions to Quaternion and Matrix4 assume it is.
//
// A rotation and its counterpart with both axis and angle negated describe
// the same transform, as do angles that differ by a multiple of 2π.
type Rotation struct {
	rot [4]float64
}

// defaultAxis is used whenever the axis of a rotation is undefined.
var defaultAxis = V3(0, 0, 1)

// nullAngleEpsilon bounds |sin(angle/2)| for a rotation treated as the
// identity when its axis is recovered.
const nullAngleEpsilon = 1e-9

// NewRotation creates a rotation about axis (x, y, z) by angle radians.
func NewRotation(x, y, z, angle float64) Rotation {
	return Rotation{rot: [4]float64{x, y, z, angle}}
}

// IdentityRotation returns the null rotation about the z axis.
func IdentityRotation() Rotation {
	return RotationFromAxisAngle(defaultAxis, 0)
}

// RotationFromAxisAngle creates a rotation about axis by angle radians.
func RotationFromAxisAngle(axis Vec3, angle float64) Rotation {
	return NewRotation(axis.vec[0], axis.vec[1], axis.vec[2], angle)
}

// RotationBetween returns the rotation that turns the direction of from
// onto the direction of to. Parallel vectors, or a zero-length input, give
// the identity. Anti-parallel vectors have no unique axis; the result
// turns by π about an arbitrary axis perpendicular to from.
func RotationBetween(from, to Vec3) Rotation {
	lf, lt := from.Length(), to.Length()
	if lf < normalizeEpsilon || lt < normalizeEpsilon {
		return IdentityRotation()
	}

	cross := from.Cross(to)
	sin := cross.Length() / (lf * lt)
	cos := from.Dot(to) / (lf * lt)
	if sin < normalizeEpsilon {
		if cos > 0 {
			return IdentityRotation()
		}
		Logger().Debug("basetypes: rotation between anti-parallel vectors", "from", from)
		return RotationFromAxisAngle(perpendicular(from), math.Pi)
	}
	return RotationFromAxisAngle(cross.Normalize(), math.Atan2(sin, cos))
}

// perpendicular returns a unit vector perpendicular to v, crossing v with
// the coordinate axis it is least aligned with.
func perpendicular(v Vec3) Vec3 {
	ax, ay, az := math.Abs(v.vec[0]), math.Abs(v.vec[1]), math.Abs(v.vec[2])
	var other Vec3
	switch {
	case ax <= ay && ax <= az:
		other = V3(1, 0, 0)
	case ay <= az:
		other = V3(0, 1, 0)
	default:
		other = V3(0, 0, 1)
	}
	return v.Cross(other).Normalize()
}

// RotationFromQuaternion converts a quaternion. The axis is the normalized
// imaginary part and the angle 2·acos(w) of the normalized quaternion.
// When the imaginary part vanishes the rotation is the identity and the
// axis falls back to (0, 0, 1).
func RotationFromQuaternion(q Quaternion) Rotation {
	q = q.Normalize()
	imag := V3(q.quat[0], q.quat[1], q.quat[2])
	l := imag.Length()
	angle := 2 * math.Atan2(l, q.quat[3])
	if l < normalizeEpsilon {
		return RotationFromAxisAngle(defaultAxis, angle)
	}
	return RotationFromAxisAngle(imag.Div(l), angle)
}

// X returns the x component of the axis.
func (r Rotation) X() float64 { return r.rot[0] }

// Y returns the y component of the axis.
func (r Rotation) Y() float64 { return r.rot[1] }

// Z returns the z component of the axis.
func (r Rotation) Z() float64 { return r.rot[2] }

// Angle returns the angle in radians.
func (r Rotation) Angle() float64 { return r.rot[3] }

// Axis returns the rotation axis.
func (r Rotation) Axis() Vec3 { return V3(r.rot[0], r.rot[1], r.rot[2]) }

// At returns component i in (x, y, z, angle) order. It panics if i is out of range.
func (r Rotation) At(i int) float64 {
	if i < 0 || i >= 4 {
		indexPanic("Rotation", i, 4)
	}
	return r.rot[i]
}

// SetX sets the x component of the axis. It panics if value is NaN.
func (r *Rotation) SetX(value float64) { r.set(0, value) }

// SetY sets the y component of the axis. It panics if value is NaN.
func (r *Rotation) SetY(value float64) { r.set(1, value) }

// SetZ sets the z component of the axis. It panics if value is NaN.
func (r *Rotation) SetZ(value float64) { r.set(2, value) }

// SetAngle sets the angle. It panics if value is NaN.
func (r *Rotation) SetAngle(value float64) { r.set(3, value) }

// SetAxis sets the axis. It panics if any component is NaN.
func (r *Rotation) SetAxis(axis Vec3) {
	for i, v := range axis.vec {
		r.set(i, v)
	}
}

func (r *Rotation) set(i int, value float64) {
	mustNotNaN("Rotation", value)
	r.rot[i] = value
}

// Normalized returns r with a unit axis. A zero axis becomes (0, 0, 1).
func (r Rotation) Normalized() Rotation {
	axis := r.Axis().Normalize()
	if axis.IsZero() {
		axis = defaultAxis
	}
	return RotationFromAxisAngle(axis, r.rot[3])
}

// Inverse returns the rotation about the same axis by the negated angle.
func (r Rotation) Inverse() Rotation {
	return NewRotation(r.rot[0], r.rot[1], r.rot[2], -r.rot[3])
}

// Mul composes two rotations through their quaternions: the result is
// the rotation of Quaternion(r)·Quaternion(other), which turns a vector by
// other first and then by r. In the row-vector matrix convention
// RotationMatrix(r.Mul(other)) equals RotationMatrix(other).Mul(RotationMatrix(r)).
func (r Rotation) Mul(other Rotation) Rotation {
	q := QuaternionFromRotation(r).Mul(QuaternionFromRotation(other))
	return RotationFromQuaternion(q)
}

// MulAssign replaces r with r.Mul(other).
func (r *Rotation) MulAssign(other Rotation) { *r = r.Mul(other) }

// Slerp interpolates spherically from r to dest along the shortest arc.
// t=0 yields r and t=1 yields dest. Near-identical rotations are
// interpolated linearly to avoid dividing by a vanishing sine.
func (r Rotation) Slerp(dest Rotation, t float64) Rotation {
	from := QuaternionFromRotation(r)
	to := QuaternionFromRotation(dest)

	cosom := from.Dot(to)
	if cosom < 0 {
		cosom = -cosom
		to = to.Neg()
	}

	var q Quaternion
	if 1-cosom > slerpEpsilon {
		omega := math.Acos(min(cosom, 1))
		sinom := math.Sin(omega)
		scale0 := math.Sin((1-t)*omega) / sinom
		scale1 := math.Sin(t*omega) / sinom
		q = from.Scale(scale0).Add(to.Scale(scale1))
	} else {
		Logger().Debug("basetypes: slerp between near-identical rotations", "cos", cosom)
		q = from.Scale(1 - t).Add(to.Scale(t)).Normalize()
	}

	ref := r
	if t >= 0.5 {
		ref = dest
	}
	return RotationFromQuaternion(q).alignTo(ref)
}

// alignTo returns the representation of r closest to ref: the axis is
// flipped into ref's hemisphere and the angle shifted by multiples of 2π
// toward ref's angle. An identity rotation takes ref's axis.
func (r Rotation) alignTo(ref Rotation) Rotation {
	axis, angle := r.Axis(), r.rot[3]
	refAxis := ref.Axis()

	switch {
	case math.Abs(math.Sin(angle/2)) < nullAngleEpsilon:
		axis = refAxis
	case axis.Dot(refAxis) < 0:
		axis, angle = axis.Neg(), -angle
	}
	angle = ref.rot[3] + math.Remainder(angle-ref.rot[3], 2*math.Pi)
	return RotationFromAxisAngle(axis, angle)
}

// Matrix returns the rotation matrix of r.
func (r Rotation) Matrix() Matrix4 {
	return RotationMatrix(r)
}

// Approx returns true if all four components differ by less than epsilon.
func (r Rotation) Approx(other Rotation, epsilon float64) bool {
	for i := range r.rot {
		if math.Abs(r.rot[i]-other.rot[i]) >= epsilon {
			return false
		}
	}
	return true
}

// String returns "x y z angle".
func (r Rotation) String() string {
	return textfmt.Format(r.rot[:]...)
}

// MarshalText implements encoding.TextMarshaler.
func (r Rotation) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The axis must be unit
// length; r is left unchanged on error.
func (r *Rotation) UnmarshalText(text []byte) error {
	parsed, err := ParseRotation(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Scan implements fmt.Scanner. The axis must be unit length; r is left
// unchanged on error.
func (r *Rotation) Scan(state fmt.ScanState, _ rune) error {
	v, err := scanFloats("Rotation", state, 4)
	if err != nil {
		return err
	}
	parsed, err := checkedRotation(v)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseRotation parses "x y z angle". The axis must be within a small
// tolerance of unit length.
func ParseRotation(s string) (Rotation, error) {
	v, err := decodeFloats("Rotation", s, 4)
	if err != nil {
		return Rotation{}, err
	}
	return checkedRotation(v)
}

func checkedRotation(v []float64) (Rotation, error) {
	r := NewRotation(v[0], v[1], v[2], v[3])
	if l := r.Axis().Length(); math.Abs(l-1) > axisTolerance {
		return Rotation{}, parseError("Rotation", fmt.Errorf("axis length %g is not 1", l))
	}
	return r, nil
}
