// Package basetypes provides the value types underlying a 3-D scene
// description system.
//
// # Overview
//
// The package holds small, copyable values: [Vec2], [Vec3], [Color],
// [Rotation] (axis-angle), [Quaternion], [Matrix4] and the packed raster
// buffer [Image]. Arithmetic returns new values; methods with an Assign
// suffix or a Set prefix modify their receiver only. No value shares
// state with another.
//
// # Conventions
//
// Matrices are stored row-major and use the row-vector convention:
// a point p is transformed as p·M, so in a product A.Mul(B) the transform
// A is applied first. Angles are in radians. Rotations are right handed.
//
//	r := basetypes.NewRotation(0, 1, 0, math.Pi/2)
//	m := basetypes.Transformation(
//	    basetypes.V3(1, 2, 3),        // translation
//	    r,                            // rotation
//	    basetypes.V3(2, 2, 2),        // scale
//	    basetypes.IdentityRotation(), // scale orientation
//	    basetypes.V3(0, 0, 0),        // center
//	)
//	p := basetypes.V3(1, 0, 0).TransformPoint(m)
//
// # Errors
//
// Programming errors panic: indexing outside a value, assigning NaN,
// inverting a singular matrix or addressing a pixel outside an image.
// Conditions a caller is expected to handle are returned as errors that
// wrap [ErrParse], [ErrAllocation], [ErrInvalidComponents],
// [ErrInvalidDimensions] or [ErrDataTooLarge].
//
// # Text
//
// Every type implements [fmt.Stringer], [encoding.TextMarshaler],
// [encoding.TextUnmarshaler] and [fmt.Scanner]. The textual form is the
// component list separated by spaces, in declaration order:
//
//	var r basetypes.Rotation
//	_, err := fmt.Fscan(strings.NewReader("0 1 0 1.5708"), &r)
//
// A failed parse leaves the target unchanged.
package basetypes
