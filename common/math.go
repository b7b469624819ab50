package common

import (
	"cmp"
	"math"
)

// Clamp returns value bounded to [minInclusive, maxInclusive].
func Clamp[T cmp.Ordered](value, minInclusive, maxInclusive T) T {
	if value < minInclusive {
		return minInclusive
	}
	if value > maxInclusive {
		return maxInclusive
	}
	return value
}

func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Vperp2D is the Y component of the cross product u x v, both vectors
// projected on the XZ plane (uz*vx - ux*vz).
func Vperp2D(u, v Vec3) float32 {
	return u[2]*v[0] - u[0]*v[2]
}

// Vdist2DSqr is the squared XZ distance between v1 and v2.
func Vdist2DSqr(v1, v2 Vec3) float32 {
	dx := v2[0] - v1[0]
	dz := v2[2] - v1[2]
	return dx*dx + dz*dz
}

func VdistSqr(v1, v2 Vec3) float32 {
	d := v2.Sub(v1)
	return d.Dot(d)
}

// Vlerp interpolates from v1 (t=0) to v2 (t=1).
func Vlerp(v1, v2 Vec3, t float32) Vec3 {
	return Vec3{
		v1[0] + (v2[0]-v1[0])*t,
		v1[1] + (v2[1]-v1[1])*t,
		v1[2] + (v2[2]-v1[2])*t,
	}
}

func IsFinite(v float32) bool {
	f := float64(v)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
