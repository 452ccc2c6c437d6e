package basetypes

import (
	"math"
	"math/rand/v2"
	"testing"
)

// mustPanic fails the test if f returns without panicking.
func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	f()
}

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// newRand returns a deterministic source so property tests are repeatable.
func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func randVec3(rng *rand.Rand, scale float64) Vec3 {
	return V3(
		(rng.Float64()*2-1)*scale,
		(rng.Float64()*2-1)*scale,
		(rng.Float64()*2-1)*scale,
	)
}

// randRotation returns a rotation with a unit axis and an angle in (0, π).
func randRotation(rng *rand.Rand) Rotation {
	for {
		axis := randVec3(rng, 1)
		if axis.Length() > 0.1 {
			return RotationFromAxisAngle(axis.Normalize(), 0.05+rng.Float64()*(math.Pi-0.1))
		}
	}
}

func randMatrix(rng *rand.Rand) Matrix4 {
	var a [16]float64
	for i := range a {
		a[i] = rng.Float64()*4 - 2
	}
	return Matrix4FromArray(a)
}
