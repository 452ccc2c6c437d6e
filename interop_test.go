package basetypes

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestInterop_F64(t *testing.T) {
	v2 := V2(1, 2)
	if got := Vec2FromF64(v2.F64()); got != v2 {
		t.Errorf("Vec2 round trip = %v", got)
	}
	if got := V3(1, 2, 3).F64(); got != (f64.Vec3{1, 2, 3}) {
		t.Errorf("Vec3.F64() = %v", got)
	}
	if got := Vec3FromF64(f64.Vec3{4, 5, 6}); got != V3(4, 5, 6) {
		t.Errorf("Vec3FromF64 = %v", got)
	}
	if got := NewQuaternion(1, 2, 3, 4).F64(); got != (f64.Vec4{1, 2, 3, 4}) {
		t.Errorf("Quaternion.F64() = %v", got)
	}
	if got := QuaternionFromF64(f64.Vec4{0, 0, 0, 1}); got != IdentityQuaternion() {
		t.Errorf("QuaternionFromF64 = %v", got)
	}

	m := TranslationMatrix(V3(7, 8, 9))
	a := m.F64()
	if a[12] != 7 || a[13] != 8 || a[14] != 9 || a[15] != 1 {
		t.Errorf("Matrix4.F64() is not row-major: %v", a)
	}
	if got := Matrix4FromF64(a); got != m {
		t.Errorf("Matrix4 round trip = %v", got)
	}
}

func TestInterop_Gonum(t *testing.T) {
	a, b := V3(1, 2, 3), V3(-4, 0.5, 2)
	if got := Vec3FromR3(r3.Cross(a.R3(), b.R3())); got != a.Cross(b) {
		t.Errorf("cross = %v, gonum gives %v", a.Cross(b), got)
	}
	if got := r3.Dot(a.R3(), b.R3()); got != a.Dot(b) {
		t.Errorf("dot = %v, gonum gives %v", a.Dot(b), got)
	}

	q := NewQuaternion(1, 2, 3, 4)
	n := q.Number()
	if n.Real != 4 || n.Imag != 1 || n.Jmag != 2 || n.Kmag != 3 {
		t.Errorf("Number() = %+v", n)
	}
	if got := QuaternionFromNumber(n); got != q {
		t.Errorf("Number round trip = %v", got)
	}
	if got, want := q.Inverse(), QuaternionFromNumber(quat.Inv(n)); !got.Approx(want, 1e-15) {
		t.Errorf("Inverse = %v, gonum gives %v", got, want)
	}
	if got, want := q.Norm(), quat.Abs(n); !near(got, want, 1e-15) {
		t.Errorf("Norm = %v, gonum gives %v", got, want)
	}
}

func TestInterop_MGL(t *testing.T) {
	r := RotationFromAxisAngle(V3(1, 2, 2).Div(3), 0.9)
	q := QuaternionFromRotation(r)

	mq := mgl64.QuatRotate(0.9, r.Axis().MGL())
	if got := QuaternionFromMGL(mq); !got.Approx(q, 1e-12) {
		t.Errorf("QuaternionFromRotation = %v, mgl64 gives %v", q, got)
	}
	if back := QuaternionFromMGL(q.MGL()); back != q {
		t.Errorf("mgl64 quaternion round trip = %v", back)
	}

	// mgl64 rotates column vectors; the matrices must describe the same map.
	if got := Matrix4FromMGL(mq.Mat4()); !got.Approx(r.Matrix(), 1e-12) {
		t.Errorf("rotation matrix mismatch:\n%v\nmgl64 gives\n%v", r.Matrix(), got)
	}
	v := V3(0.3, -1, 2)
	want := Vec3FromF64(f64.Vec3(mq.Rotate(v.MGL())))
	if got := v.TransformDirection(r.Matrix()); !got.Approx(want, 1e-12) {
		t.Errorf("rotated %v = %v, mgl64 gives %v", v, got, want)
	}

	m := TranslationMatrix(V3(1, 2, 3)).Mul(UniformScale(2))
	p := mgl64.TransformCoordinate(v.MGL(), m.MGL())
	if got := v.TransformPoint(m); !got.Approx(Vec3FromF64(f64.Vec3(p)), 1e-12) {
		t.Errorf("TransformPoint = %v, mgl64 gives %v", got, p)
	}
	if got := m.MGL().At(0, 3); got != 2 {
		t.Errorf("mgl64 translation x = %v, want 2", got)
	}
}
