package basetypes

import (
	"fmt"
	"math"

	"github.com/gogpu/basetypes/internal/textfmt"
)

// Matrix4 is a 4×4 transformation matrix stored row-major.
//
// Matrices follow the row-vector convention: a point p is transformed as
// the row vector [x y z 1]·M, so translation lives in the last row:
//
//	| m00 m01 m02 0 |
//	| m10 m11 m12 0 |
//	| m20 m21 m22 0 |
//	| tx  ty  tz  1 |
//
// In a product a.Mul(b) the transform a is applied first.
// The zero value is the zero matrix, not the identity.
type Matrix4 struct {
	mat [4][4]float64
}

// IdentityMatrix returns the identity transformation matrix.
func IdentityMatrix() Matrix4 {
	return Matrix4{mat: [4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// NewMatrix4 creates a matrix from its sixteen elements in row-major order.
func NewMatrix4(
	f11, f12, f13, f14,
	f21, f22, f23, f24,
	f31, f32, f33, f34,
	f41, f42, f43, f44 float64,
) Matrix4 {
	return Matrix4{mat: [4][4]float64{
		{f11, f12, f13, f14},
		{f21, f22, f23, f24},
		{f31, f32, f33, f34},
		{f41, f42, f43, f44},
	}}
}

// Matrix4FromArray creates a matrix from sixteen row-major elements.
func Matrix4FromArray(a [16]float64) Matrix4 {
	var m Matrix4
	for i, v := range a {
		m.mat[i/4][i%4] = v
	}
	return m
}

// Matrix4FromRows creates a matrix from its rows.
func Matrix4FromRows(rows [4][4]float64) Matrix4 {
	return Matrix4{mat: rows}
}

// RotationMatrix returns the matrix of an axis-angle rotation (Rodrigues'
// formula). The axis is assumed to be unit length.
func RotationMatrix(r Rotation) Matrix4 {
	s, c := math.Sincos(r.rot[3])
	t := 1 - c
	x, y, z := r.rot[0], r.rot[1], r.rot[2]
	return NewMatrix4(
		t*x*x+c, t*x*y+s*z, t*x*z-s*y, 0,
		t*x*y-s*z, t*y*y+c, t*y*z+s*x, 0,
		t*x*z+s*y, t*y*z-s*x, t*z*z+c, 0,
		0, 0, 0, 1,
	)
}

// QuaternionMatrix returns the rotation matrix of a unit quaternion.
func QuaternionMatrix(q Quaternion) Matrix4 {
	x, y, z, w := q.quat[0], q.quat[1], q.quat[2], q.quat[3]
	return NewMatrix4(
		1-2*(y*y+z*z), 2*(x*y+z*w), 2*(z*x-y*w), 0,
		2*(x*y-z*w), 1-2*(z*z+x*x), 2*(y*z+x*w), 0,
		2*(z*x+y*w), 2*(y*z-x*w), 1-2*(y*y+x*x), 0,
		0, 0, 0, 1,
	)
}

// UniformScale returns a matrix scaling all axes by s.
func UniformScale(s float64) Matrix4 {
	return ScaleMatrix(V3(s, s, s))
}

// ScaleMatrix returns a matrix scaling each axis by the matching component of s.
func ScaleMatrix(s Vec3) Matrix4 {
	return NewMatrix4(
		s.vec[0], 0, 0, 0,
		0, s.vec[1], 0, 0,
		0, 0, s.vec[2], 0,
		0, 0, 0, 1,
	)
}

// TranslationMatrix returns a matrix translating by t.
func TranslationMatrix(t Vec3) Matrix4 {
	return NewMatrix4(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		t.vec[0], t.vec[1], t.vec[2], 1,
	)
}

// ShearMatrix returns the shear (xy, xz, yz) produced by DecomposeSheared:
// y picks up xy·x and z picks up xz·x + yz·y.
func ShearMatrix(shear Vec3) Matrix4 {
	return NewMatrix4(
		1, 0, 0, 0,
		shear.vec[0], 1, 0, 0,
		shear.vec[1], shear.vec[2], 1, 0,
		0, 0, 0, 1,
	)
}

// Transformation composes a translation t, rotation r, scale s, scale
// orientation sr and center c. In column-vector notation the result is
//
//	T · C · R · SR · S · SR⁻¹ · C⁻¹
//
// so a point is first moved so that c is the origin, then scaled along the
// axes given by sr, rotated by r, moved back and finally translated.
func Transformation(t Vec3, r Rotation, s Vec3, sr Rotation, c Vec3) Matrix4 {
	m := TranslationMatrix(c.Neg())
	m = m.Mul(RotationMatrix(sr.Inverse()))
	m = m.Mul(ScaleMatrix(s))
	m = m.Mul(RotationMatrix(sr))
	m = m.Mul(RotationMatrix(r))
	m = m.Mul(TranslationMatrix(c))
	return m.Mul(TranslationMatrix(t))
}

// TransformationSheared composes the components returned by
// DecomposeSheared: scale, then shear, then rotation, then translation.
func TransformationSheared(t Vec3, r Rotation, s, shear Vec3) Matrix4 {
	return ScaleMatrix(s).
		Mul(ShearMatrix(shear)).
		Mul(RotationMatrix(r)).
		Mul(TranslationMatrix(t))
}

// At returns the element at row, col. It panics if either index is outside [0, 4).
func (m Matrix4) At(row, col int) float64 {
	checkMatrixIndex(row, col)
	return m.mat[row][col]
}

// Set sets the element at row, col. It panics if either index is out of
// range or value is NaN.
func (m *Matrix4) Set(row, col int, value float64) {
	checkMatrixIndex(row, col)
	mustNotNaN("Matrix4", value)
	m.mat[row][col] = value
}

// Row returns row i. It panics if i is outside [0, 4).
func (m Matrix4) Row(i int) [4]float64 {
	checkMatrixIndex(i, 0)
	return m.mat[i]
}

// Rows returns all elements as rows.
func (m Matrix4) Rows() [4][4]float64 {
	return m.mat
}

func checkMatrixIndex(row, col int) {
	if row < 0 || row >= 4 {
		indexPanic("Matrix4 row", row, 4)
	}
	if col < 0 || col >= 4 {
		indexPanic("Matrix4 column", col, 4)
	}
}

// Mul returns the product m·other: m is applied first, then other.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var out Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.mat[i][j] = m.mat[i][0]*other.mat[0][j] +
				m.mat[i][1]*other.mat[1][j] +
				m.mat[i][2]*other.mat[2][j] +
				m.mat[i][3]*other.mat[3][j]
		}
	}
	return out
}

// Scale returns every element multiplied by s.
func (m Matrix4) Scale(s float64) Matrix4 {
	for i := range m.mat {
		for j := range m.mat[i] {
			m.mat[i][j] *= s
		}
	}
	return m
}

// MulAssign replaces m with m·other.
func (m *Matrix4) MulAssign(other Matrix4) { *m = m.Mul(other) }

// ScaleAssign multiplies every element of m by s in place.
func (m *Matrix4) ScaleAssign(s float64) { *m = m.Scale(s) }

// MulColumn transforms v as the column vector M·[x y z 1]ᵀ, dividing by
// the resulting w unless it is zero.
func (m Matrix4) MulColumn(v Vec3) Vec3 {
	a := &m.mat
	x := a[0][0]*v.vec[0] + a[0][1]*v.vec[1] + a[0][2]*v.vec[2] + a[0][3]
	y := a[1][0]*v.vec[0] + a[1][1]*v.vec[1] + a[1][2]*v.vec[2] + a[1][3]
	z := a[2][0]*v.vec[0] + a[2][1]*v.vec[1] + a[2][2]*v.vec[2] + a[2][3]
	w := a[3][0]*v.vec[0] + a[3][1]*v.vec[1] + a[3][2]*v.vec[2] + a[3][3]
	if w != 0 && w != 1 {
		return V3(x/w, y/w, z/w)
	}
	return V3(x, y, z)
}

// Transpose returns the transposed matrix.
func (m Matrix4) Transpose() Matrix4 {
	var out Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.mat[j][i] = m.mat[i][j]
		}
	}
	return out
}

// minors holds the 2×2 minors of the top two rows (s) and the bottom two
// rows (c) used by both Det and Inverse.
type minors struct {
	s, c [6]float64
}

func (m Matrix4) minors() minors {
	a := &m.mat
	return minors{
		s: [6]float64{
			a[0][0]*a[1][1] - a[1][0]*a[0][1],
			a[0][0]*a[1][2] - a[1][0]*a[0][2],
			a[0][0]*a[1][3] - a[1][0]*a[0][3],
			a[0][1]*a[1][2] - a[1][1]*a[0][2],
			a[0][1]*a[1][3] - a[1][1]*a[0][3],
			a[0][2]*a[1][3] - a[1][2]*a[0][3],
		},
		c: [6]float64{
			a[2][0]*a[3][1] - a[3][0]*a[2][1],
			a[2][0]*a[3][2] - a[3][0]*a[2][2],
			a[2][0]*a[3][3] - a[3][0]*a[2][3],
			a[2][1]*a[3][2] - a[3][1]*a[2][2],
			a[2][1]*a[3][3] - a[3][1]*a[2][3],
			a[2][2]*a[3][3] - a[3][2]*a[2][3],
		},
	}
}

func (n minors) det() float64 {
	s, c := &n.s, &n.c
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

// Det returns the determinant. A matrix with a zero row or column has a
// determinant of exactly zero.
func (m Matrix4) Det() float64 {
	return m.minors().det()
}

// Invertible reports whether m has a finite, non-zero determinant.
func (m Matrix4) Invertible() bool {
	det := m.Det()
	return det != 0 && !math.IsNaN(det) && !math.IsInf(det, 0)
}

// Inverse returns the inverse of m computed from its adjugate.
// It panics if m is not Invertible.
func (m Matrix4) Inverse() Matrix4 {
	n := m.minors()
	det := n.det()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		panic("basetypes: inverse of singular Matrix4")
	}
	inv := 1 / det
	a, s, c := &m.mat, &n.s, &n.c

	return Matrix4{mat: [4][4]float64{
		{
			(a[1][1]*c[5] - a[1][2]*c[4] + a[1][3]*c[3]) * inv,
			(-a[0][1]*c[5] + a[0][2]*c[4] - a[0][3]*c[3]) * inv,
			(a[3][1]*s[5] - a[3][2]*s[4] + a[3][3]*s[3]) * inv,
			(-a[2][1]*s[5] + a[2][2]*s[4] - a[2][3]*s[3]) * inv,
		},
		{
			(-a[1][0]*c[5] + a[1][2]*c[2] - a[1][3]*c[1]) * inv,
			(a[0][0]*c[5] - a[0][2]*c[2] + a[0][3]*c[1]) * inv,
			(-a[3][0]*s[5] + a[3][2]*s[2] - a[3][3]*s[1]) * inv,
			(a[2][0]*s[5] - a[2][2]*s[2] + a[2][3]*s[1]) * inv,
		},
		{
			(a[1][0]*c[4] - a[1][1]*c[2] + a[1][3]*c[0]) * inv,
			(-a[0][0]*c[4] + a[0][1]*c[2] - a[0][3]*c[0]) * inv,
			(a[3][0]*s[4] - a[3][1]*s[2] + a[3][3]*s[0]) * inv,
			(-a[2][0]*s[4] + a[2][1]*s[2] - a[2][3]*s[0]) * inv,
		},
		{
			(-a[1][0]*c[3] + a[1][1]*c[1] - a[1][2]*c[0]) * inv,
			(a[0][0]*c[3] - a[0][1]*c[1] + a[0][2]*c[0]) * inv,
			(-a[3][0]*s[3] + a[3][1]*s[1] - a[3][2]*s[0]) * inv,
			(a[2][0]*s[3] - a[2][1]*s[1] + a[2][2]*s[0]) * inv,
		},
	}}
}

// Decompose splits m into translation, rotation and scale. Any shear in
// the upper 3×3 block is discarded; use DecomposeSheared to keep it.
// Transformation(t, r, s, IdentityRotation(), Vec3{}) rebuilds m only when
// m has no shear, which excludes a non-uniform scale under a non-identity
// scale orientation; DecomposeSheared and TransformationSheared always
// round-trip.
func (m Matrix4) Decompose() (t Vec3, r Rotation, s Vec3) {
	t, r, s, _ = m.DecomposeSheared()
	return t, r, s
}

// DecomposeSheared splits m into translation, rotation, scale and shear
// (xy, xz, yz) such that TransformationSheared(t, r, s, shear) rebuilds m
// for any affine m without projection.
//
// The rows of the upper 3×3 block are orthonormalized with Gram-Schmidt.
// A reflecting matrix yields negated scale factors. Degenerate (singular)
// blocks produce zero scale factors and do not panic.
func (m Matrix4) DecomposeSheared() (t Vec3, r Rotation, s Vec3, shear Vec3) {
	t = V3(m.mat[3][0], m.mat[3][1], m.mat[3][2])

	var row [3]Vec3
	for i := range row {
		row[i] = V3(m.mat[i][0], m.mat[i][1], m.mat[i][2])
	}

	sx := row[0].Length()
	row[0] = row[0].Normalize()

	shxy := row[0].Dot(row[1])
	row[1] = row[1].Sub(row[0].Mul(shxy))
	sy := row[1].Length()
	row[1] = row[1].Normalize()

	shxz := row[0].Dot(row[2])
	row[2] = row[2].Sub(row[0].Mul(shxz))
	shyz := row[1].Dot(row[2])
	row[2] = row[2].Sub(row[1].Mul(shyz))
	sz := row[2].Length()
	row[2] = row[2].Normalize()

	shear = V3(safeDiv(shxy, sy), safeDiv(shxz, sz), safeDiv(shyz, sz))
	s = V3(sx, sy, sz)

	if row[0].Dot(row[1].Cross(row[2])) < 0 {
		s = s.Neg()
		for i := range row {
			row[i] = row[i].Neg()
		}
	}

	rm := IdentityMatrix()
	for i := range row {
		copy(rm.mat[i][:3], row[i].vec[:])
	}
	r = RotationFromQuaternion(QuaternionFromMatrix(rm))
	return t, r, s, shear
}

func safeDiv(a, b float64) float64 {
	if math.Abs(b) < normalizeEpsilon {
		return 0
	}
	return a / b
}

// IsIdentity returns true if the matrix is exactly the identity matrix.
func (m Matrix4) IsIdentity() bool {
	return m == IdentityMatrix()
}

// Approx returns true if all elements differ by less than epsilon.
func (m Matrix4) Approx(other Matrix4, epsilon float64) bool {
	for i := range m.mat {
		for j := range m.mat[i] {
			if math.Abs(m.mat[i][j]-other.mat[i][j]) >= epsilon {
				return false
			}
		}
	}
	return true
}

func (m Matrix4) elements() []float64 {
	out := make([]float64, 0, 16)
	for i := range m.mat {
		out = append(out, m.mat[i][:]...)
	}
	return out
}

// String returns the sixteen elements in row-major order.
func (m Matrix4) String() string {
	return textfmt.Format(m.elements()...)
}

// MarshalText implements encoding.TextMarshaler.
func (m Matrix4) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Matrix4) UnmarshalText(text []byte) error {
	parsed, err := ParseMatrix4(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Scan implements fmt.Scanner.
func (m *Matrix4) Scan(state fmt.ScanState, _ rune) error {
	v, err := scanFloats("Matrix4", state, 16)
	if err != nil {
		return err
	}
	*m = matrixFromSlice(v)
	return nil
}

// ParseMatrix4 parses sixteen row-major elements.
func ParseMatrix4(s string) (Matrix4, error) {
	v, err := decodeFloats("Matrix4", s, 16)
	if err != nil {
		return Matrix4{}, err
	}
	return matrixFromSlice(v), nil
}

func matrixFromSlice(v []float64) Matrix4 {
	var a [16]float64
	copy(a[:], v)
	return Matrix4FromArray(a)
}
