package basetypes

import (
	"encoding"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestText_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   encoding.TextMarshaler
		out  encoding.TextUnmarshaler
	}{
		{"vec2", V2(0.1, -3e10), new(Vec2)},
		{"vec3", V3(1, 2.5, -0.333333333333), new(Vec3)},
		{"color", NewColor(0.25, 0.5, 1), new(Color)},
		{"quaternion", NewQuaternion(0, 0.6, 0, 0.8), new(Quaternion)},
		{"rotation", NewRotation(0, 0.6, 0.8, -2.5), new(Rotation)},
		{"matrix", Transformation(V3(1, 2, 3), NewRotation(1, 0, 0, 0.3), V3(2, 2, 2), IdentityRotation(), Vec3{}), new(Matrix4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := tt.in.MarshalText()
			if err != nil {
				t.Fatal(err)
			}
			if err := tt.out.UnmarshalText(text); err != nil {
				t.Fatalf("UnmarshalText(%q): %v", text, err)
			}
			if got := fmt.Sprint(tt.out); got != string(text) {
				t.Errorf("round trip %q became %q", text, got)
			}
		})
	}
}

func TestText_Parse(t *testing.T) {
	if v, err := ParseVec2(" 1  2 "); err != nil || v != V2(1, 2) {
		t.Errorf("ParseVec2 = %v, %v", v, err)
	}
	if v, err := ParseVec3("1e2 -2 .5"); err != nil || v != V3(100, -2, 0.5) {
		t.Errorf("ParseVec3 = %v, %v", v, err)
	}
	if c, err := ParseColor("1 0 0"); err != nil || c != Red {
		t.Errorf("ParseColor = %v, %v", c, err)
	}
	if q, err := ParseQuaternion("0 0 0 1"); err != nil || q != IdentityQuaternion() {
		t.Errorf("ParseQuaternion = %v, %v", q, err)
	}
	if m, err := ParseMatrix4(IdentityMatrix().String()); err != nil || !m.IsIdentity() {
		t.Errorf("ParseMatrix4 = %v, %v", m, err)
	}
	if got := IdentityMatrix().String(); got != "1 0 0 0 0 1 0 0 0 0 1 0 0 0 0 1" {
		t.Errorf("IdentityMatrix().String() = %q", got)
	}

	bad := []struct {
		name  string
		parse func() error
	}{
		{"vec2 short", func() error { _, err := ParseVec2("1"); return err }},
		{"vec2 long", func() error { _, err := ParseVec2("1 2 3"); return err }},
		{"vec3 word", func() error { _, err := ParseVec3("1 two 3"); return err }},
		{"vec3 nan", func() error { _, err := ParseVec3("1 NaN 3"); return err }},
		{"color empty", func() error { _, err := ParseColor(""); return err }},
		{"quaternion short", func() error { _, err := ParseQuaternion("0 0 1"); return err }},
		{"matrix short", func() error { _, err := ParseMatrix4("1 0 0 0"); return err }},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse()
			if err == nil {
				t.Fatal("parse succeeded")
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("error %v does not wrap ErrParse", err)
			}
		})
	}
}

func TestText_UnmarshalLeavesTargetOnFailure(t *testing.T) {
	v := V3(1, 2, 3)
	if err := v.UnmarshalText([]byte("4 5")); err == nil {
		t.Fatal("UnmarshalText of two values succeeded")
	}
	if v != V3(1, 2, 3) {
		t.Errorf("failed UnmarshalText modified target: %v", v)
	}

	c := Blue
	if _, err := fmt.Sscan("0.5 x 0.5", &c); err == nil {
		t.Fatal("Sscan of bad color succeeded")
	}
	if c != Blue {
		t.Errorf("failed Sscan modified target: %v", c)
	}
}

func TestText_ScanStream(t *testing.T) {
	var (
		v Vec3
		r Rotation
		c Color
		q Quaternion
	)
	in := "1 2 3\n0 1 0 1.5\t0.1 0.2 0.3 0 0 0 1"
	n, err := fmt.Fscan(strings.NewReader(in), &v, &r, &c, &q)
	if err != nil || n != 4 {
		t.Fatalf("Fscan = %d, %v", n, err)
	}
	if v != V3(1, 2, 3) || r != NewRotation(0, 1, 0, 1.5) || c != NewColor(0.1, 0.2, 0.3) || q != IdentityQuaternion() {
		t.Errorf("scanned %v | %v | %v | %v", v, r, c, q)
	}

	var m Matrix4
	if _, err := fmt.Sscan(IdentityMatrix().String(), &m); err != nil || !m.IsIdentity() {
		t.Errorf("Sscan matrix = %v, %v", m, err)
	}
	var w Vec2
	if _, err := fmt.Sscan("-1 1", &w); err != nil || w != V2(-1, 1) {
		t.Errorf("Sscan vec2 = %v, %v", w, err)
	}
}
