package common

import "github.com/go-gl/mathgl/mgl32"

type Vec3 = mgl32.Vec3
type Vec2 = mgl32.Vec2
type Quat = mgl32.Quat

type IT interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// AssertTrue panics when an internal invariant is broken. It must never be
// reachable from malformed caller input: those cases return typed errors.
func AssertTrue(ok bool, msg ...string) {
	if !ok {
		if len(msg) > 0 {
			panic("assertion failed: " + msg[0])
		}
		panic("assertion failed")
	}
}

// XZ drops the vertical component of v.
func XZ(v Vec3) Vec2 {
	return Vec2{v[0], v[2]}
}
