package basetypes

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/num/quat"
)

func TestQuaternion_Hamilton(t *testing.T) {
	i := NewQuaternion(1, 0, 0, 0)
	j := NewQuaternion(0, 1, 0, 0)
	k := NewQuaternion(0, 0, 1, 0)
	one := IdentityQuaternion()

	tests := []struct {
		name string
		got  Quaternion
		want Quaternion
	}{
		{"ij", i.Mul(j), k},
		{"ji", j.Mul(i), k.Neg()},
		{"jk", j.Mul(k), i},
		{"ki", k.Mul(i), j},
		{"ii", i.Mul(i), one.Neg()},
		{"ijk", i.Mul(j).Mul(k), one.Neg()},
		{"identity", i.Mul(one), i},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestQuaternion_MulMatchesGonum(t *testing.T) {
	rng := newRand()
	for range 100 {
		a := NewQuaternion(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64())
		b := NewQuaternion(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64())
		want := QuaternionFromNumber(quat.Mul(a.Number(), b.Number()))
		if got := a.Mul(b); !got.Approx(want, 1e-12) {
			t.Fatalf("%v · %v = %v, gonum gives %v", a, b, got, want)
		}
	}
}

func TestQuaternion_Inverse(t *testing.T) {
	q := NewQuaternion(1, -2, 0.5, 3)
	if got := q.Mul(q.Inverse()); !got.Approx(IdentityQuaternion(), 1e-12) {
		t.Errorf("q·q⁻¹ = %v, want identity", got)
	}
	if got := q.Inverse().Mul(q); !got.Approx(IdentityQuaternion(), 1e-12) {
		t.Errorf("q⁻¹·q = %v, want identity", got)
	}
	mustPanic(t, "Inverse(0)", func() { _ = Quaternion{}.Inverse() })
}

func TestQuaternion_Normalize(t *testing.T) {
	q := NewQuaternion(0, 3, 0, 4)
	if n := q.Norm(); n != 5 {
		t.Errorf("Norm() = %v, want 5", n)
	}
	if got := q.Normalize(); !got.Approx(NewQuaternion(0, 0.6, 0, 0.8), 1e-15) {
		t.Errorf("Normalize() = %v", got)
	}
	if got := (Quaternion{}).Normalize(); got != (Quaternion{}) {
		t.Errorf("zero.Normalize() = %v, want zero", got)
	}
	if got := q.Conjugate(); got != NewQuaternion(0, -3, 0, 4) {
		t.Errorf("Conjugate() = %v", got)
	}
}

func TestQuaternion_NormalizeLarge(t *testing.T) {
	q := NewQuaternion(1e160, 0, 0, 0)
	if n := q.Norm(); n != 1e160 {
		t.Errorf("Norm() = %v, want 1e160", n)
	}
	if got := q.Normalize(); !got.Approx(NewQuaternion(1, 0, 0, 0), 1e-15) {
		t.Errorf("Normalize() = %v, want (1 0 0 0)", got)
	}
	for _, q := range []Quaternion{
		NewQuaternion(1e308, 1e308, 0, 0),
		NewQuaternion(math.MaxFloat64, -math.MaxFloat64, math.MaxFloat64, 1),
	} {
		if n := q.Normalize().Norm(); !near(n, 1, 1e-12) {
			t.Errorf("|normalize(%v)| = %v, want 1", q, n)
		}
	}
}

func TestQuaternion_FromRotation(t *testing.T) {
	q := QuaternionFromRotation(NewRotation(0, 0, 1, math.Pi))
	if !q.Approx(NewQuaternion(0, 0, 1, 0), 1e-15) {
		t.Errorf("half turn about z = %v, want (0 0 1 0)", q)
	}
	if q := QuaternionFromRotation(IdentityRotation()); q != IdentityQuaternion() {
		t.Errorf("identity rotation = %v", q)
	}
}

func TestQuaternion_FromMatrix(t *testing.T) {
	// Each case drives a different branch of the extraction.
	tests := []struct {
		name string
		r    Rotation
	}{
		{"trace", NewRotation(0, 0, 1, 0.5)},
		{"x dominant", NewRotation(1, 0, 0, math.Pi)},
		{"y dominant", NewRotation(0, 1, 0, 3)},
		{"z dominant", NewRotation(0, 0, 1, 3)},
		{"oblique", RotationFromAxisAngle(V3(1, 1, 1).Normalize(), 2.9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := RotationMatrix(tt.r)
			q := QuaternionFromMatrix(m)
			if n := q.Norm(); !near(n, 1, 1e-12) {
				t.Errorf("|q| = %v, want 1", n)
			}
			if got := QuaternionMatrix(q); !got.Approx(m, 1e-12) {
				t.Errorf("QuaternionMatrix(QuaternionFromMatrix(m)) =\n%v\nwant\n%v", got, m)
			}
		})
	}
}

func TestQuaternion_MatrixMatchesRotation(t *testing.T) {
	rng := newRand()
	for range 200 {
		r := randRotation(rng)
		if a, b := QuaternionMatrix(QuaternionFromRotation(r)), r.Matrix(); !a.Approx(b, 1e-12) {
			t.Fatalf("matrix mismatch for %v:\n%v\n%v", r, a, b)
		}
	}
}

func TestQuaternion_Preconditions(t *testing.T) {
	q := IdentityQuaternion()
	mustPanic(t, "At(4)", func() { _ = q.At(4) })
	mustPanic(t, "SetW(NaN)", func() { q.SetW(math.NaN()) })
	q.SetX(2)
	if q.X() != 2 || q.At(0) != 2 {
		t.Errorf("SetX(2) gave %v", q)
	}
}
