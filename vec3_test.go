package basetypes

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	v, w := V3(1, 2, 3), V3(-2, 0.5, 4)
	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"add", v.Add(w), V3(-1, 2.5, 7)},
		{"sub", v.Sub(w), V3(3, 1.5, -1)},
		{"mul", v.Mul(2), V3(2, 4, 6)},
		{"div", v.Div(2), V3(0.5, 1, 1.5)},
		{"neg", v.Neg(), V3(-1, -2, -3)},
		{"hadamard", v.Hadamard(w), V3(-2, 1, 12)},
		{"lerp", v.Lerp(w, 1), w},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want Vec3
	}{
		{"x cross y", V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)},
		{"y cross z", V3(0, 1, 0), V3(0, 0, 1), V3(1, 0, 0)},
		{"z cross x", V3(0, 0, 1), V3(1, 0, 0), V3(0, 1, 0)},
		{"y cross x", V3(0, 1, 0), V3(1, 0, 0), V3(0, 0, -1)},
		{"parallel", V3(1, 2, 3), V3(2, 4, 6), V3(0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cross(tt.b); got != tt.want {
				t.Errorf("%v × %v = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestVec3_Assign(t *testing.T) {
	v := V3(1, 2, 3)
	v.AddAssign(V3(1, 1, 1))
	v.HadamardAssign(V3(2, 0, 1))
	v.SubAssign(V3(0, 0, 4))
	v.MulAssign(3)
	v.DivAssign(2)
	if want := V3(6, 0, 0); v != want {
		t.Errorf("after assignments v = %v, want %v", v, want)
	}

	v = V3(1, 1, 1)
	v.TransformAssign(TranslationMatrix(V3(1, 2, 3)))
	if want := V3(2, 3, 4); v != want {
		t.Errorf("TransformAssign = %v, want %v", v, want)
	}
}

func TestVec3_NormalizeProperty(t *testing.T) {
	rng := newRand()
	for i := range 200 {
		v := randVec3(rng, 1000)
		if v.IsZero() {
			continue
		}
		if l := v.Normalize().Length(); !near(l, 1, 1e-12) {
			t.Fatalf("case %d: |normalize(%v)| = %v, want 1", i, v, l)
		}
	}
	if z := (Vec3{}).Normalize(); !z.IsZero() {
		t.Errorf("zero.Normalize() = %v, want zero vector", z)
	}
}

func TestVec3_NormalizeLarge(t *testing.T) {
	h := math.Sqrt2 / 2
	tests := []struct {
		v    Vec3
		want Vec3
	}{
		{V3(1e200, 1e200, 0), V3(h, h, 0)},
		{V3(1e160, 0, 0), V3(1, 0, 0)},
		{V3(0, -1e300, 0), V3(0, -1, 0)},
		{V3(math.MaxFloat64, math.MaxFloat64, 0), V3(h, h, 0)},
	}
	for _, tt := range tests {
		if got := tt.v.Normalize(); !got.Approx(tt.want, 1e-12) {
			t.Errorf("normalize(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
	v := V3(1e308, 1e308, 1e308)
	if l := v.Length(); math.IsInf(l, 0) || !near(l/1e308, math.Sqrt(3), 1e-12) {
		t.Errorf("Length() = %v, want √3·1e308", l)
	}
	if l := v.Normalize().Length(); !near(l, 1, 1e-12) {
		t.Errorf("|normalize(%v)| = %v, want 1", v, l)
	}
}

func TestVec3_Transform(t *testing.T) {
	m := RotationMatrix(NewRotation(0, 0, 1, math.Pi/2)).Mul(TranslationMatrix(V3(10, 0, 0)))

	if got := V3(1, 0, 0).TransformPoint(m); !got.Approx(V3(10, 1, 0), 1e-12) {
		t.Errorf("TransformPoint = %v, want (10, 1, 0)", got)
	}
	if got := V3(1, 0, 0).TransformDirection(m); !got.Approx(V3(0, 1, 0), 1e-12) {
		t.Errorf("TransformDirection = %v, want (0, 1, 0)", got)
	}

	// Column form of the transposed matrix is the same transform.
	rng := newRand()
	for range 20 {
		v := randVec3(rng, 5)
		if a, b := v.TransformPoint(m), m.Transpose().MulColumn(v); !a.Approx(b, 1e-12) {
			t.Errorf("row %v != column %v", a, b)
		}
	}
}

func TestVec3_TransformProjective(t *testing.T) {
	m := IdentityMatrix()
	m.Set(3, 3, 2)
	if got := V3(2, 4, 6).TransformPoint(m); got != V3(1, 2, 3) {
		t.Errorf("TransformPoint with w=2 = %v, want (1, 2, 3)", got)
	}
	m.Set(3, 3, 0)
	if got := V3(2, 4, 6).TransformPoint(m); got != V3(2, 4, 6) {
		t.Errorf("TransformPoint with w=0 = %v, want undivided (2, 4, 6)", got)
	}
}

func TestVec3_Preconditions(t *testing.T) {
	v := V3(1, 2, 3)
	mustPanic(t, "At(3)", func() { _ = v.At(3) })
	mustPanic(t, "Set(-1)", func() { v.Set(-1, 0) })
	mustPanic(t, "SetZ(NaN)", func() { v.SetZ(math.NaN()) })
	if v != V3(1, 2, 3) {
		t.Errorf("failed setters modified v: %v", v)
	}
	v.SetZ(9)
	if v.Z() != 9 || v.At(2) != 9 {
		t.Errorf("SetZ(9) gave %v", v)
	}
}
