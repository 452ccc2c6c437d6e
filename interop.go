package basetypes

import (
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Conversions to and from the vector and matrix types of other Go math
// libraries. All of them copy; none shares storage.

// F64 returns v as an x/image vector.
func (v Vec2) F64() f64.Vec2 { return f64.Vec2(v.vec) }

// Vec2FromF64 converts an x/image vector.
func Vec2FromF64(v f64.Vec2) Vec2 { return Vec2{vec: v} }

// F64 returns v as an x/image vector.
func (v Vec3) F64() f64.Vec3 { return f64.Vec3(v.vec) }

// Vec3FromF64 converts an x/image vector.
func Vec3FromF64(v f64.Vec3) Vec3 { return Vec3{vec: v} }

// F64 returns q as an x/image 4-vector in (x, y, z, w) order.
func (q Quaternion) F64() f64.Vec4 { return f64.Vec4(q.quat) }

// QuaternionFromF64 converts an x/image 4-vector in (x, y, z, w) order.
func QuaternionFromF64(v f64.Vec4) Quaternion { return Quaternion{quat: v} }

// F64 returns m as an x/image matrix. Both store elements row-major.
func (m Matrix4) F64() f64.Mat4 {
	var out f64.Mat4
	copy(out[:], m.elements())
	return out
}

// Matrix4FromF64 converts an x/image matrix.
func Matrix4FromF64(m f64.Mat4) Matrix4 { return Matrix4FromArray(m) }

// R3 returns v as a gonum spatial vector.
func (v Vec3) R3() r3.Vec { return r3.Vec{X: v.vec[0], Y: v.vec[1], Z: v.vec[2]} }

// Vec3FromR3 converts a gonum spatial vector.
func Vec3FromR3(v r3.Vec) Vec3 { return V3(v.X, v.Y, v.Z) }

// Number returns q as a gonum quaternion; w becomes the real part.
func (q Quaternion) Number() quat.Number {
	return quat.Number{Real: q.quat[3], Imag: q.quat[0], Jmag: q.quat[1], Kmag: q.quat[2]}
}

// QuaternionFromNumber converts a gonum quaternion.
func QuaternionFromNumber(n quat.Number) Quaternion {
	return NewQuaternion(n.Imag, n.Jmag, n.Kmag, n.Real)
}

// MGL returns v as a mathgl vector.
func (v Vec3) MGL() mgl64.Vec3 { return mgl64.Vec3(v.vec) }

// MGL returns q as a mathgl quaternion.
func (q Quaternion) MGL() mgl64.Quat {
	return mgl64.Quat{W: q.quat[3], V: mgl64.Vec3{q.quat[0], q.quat[1], q.quat[2]}}
}

// QuaternionFromMGL converts a mathgl quaternion.
func QuaternionFromMGL(q mgl64.Quat) Quaternion {
	return NewQuaternion(q.V[0], q.V[1], q.V[2], q.W)
}

// MGL returns the mathgl matrix of the same transform. mathgl uses column
// vectors with column-major storage, which is the transpose of the
// row-vector convention stored row-major, so the sixteen elements carry
// over in order.
func (m Matrix4) MGL() mgl64.Mat4 {
	var out mgl64.Mat4
	copy(out[:], m.elements())
	return out
}

// Matrix4FromMGL converts a mathgl matrix.
func Matrix4FromMGL(m mgl64.Mat4) Matrix4 { return Matrix4FromArray(m) }
