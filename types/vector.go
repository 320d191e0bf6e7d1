package types

import "golang.org/x/image/math/f32"

type Vec3 f32.Vec3
type Vec4 f32.Vec4

// Define a 3 component vector.
func XYZ(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Define a 4 component vector.
func XYZW(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

// Expand a 3 component vector to a Vec4.
func (v Vec3) Vec4(w float32) Vec4 {
	return Vec4{v[0], v[1], v[2], w}
}

// Add a vector.
func (v Vec3) Add(v2 Vec3) Vec3 {
	return Vec3{v[0] + v2[0], v[1] + v2[1], v[2] + v2[2]}
}

// Reduce a 4 component vector to a Vec3.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// Saturate each component to the closed [0, 1] range. Values at or past a
// bound are set exactly to that bound.
func (v Vec3) Clamp01() Vec3 {
	return Vec3{Saturate(v[0]), Saturate(v[1]), Saturate(v[2])}
}

// Returns true if all components lie in [0, 1].
func (v Vec3) InUnitRange() bool {
	for _, c := range v {
		if c < 0 || c > 1 || c != c {
			return false
		}
	}
	return true
}

// Saturate a scalar to [0, 1]. NaN saturates to 0.
func Saturate(v float32) float32 {
	if v >= 1.0 {
		return 1.0
	}
	if v <= 0.0 || v != v {
		return 0.0
	}
	return v
}
