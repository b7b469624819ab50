package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorustyt/gonavpath/common"
)

// ClosestHeightPointTriangle returns the height of triangle abc above the XZ
// position of p, or false when p does not project inside the triangle.
func ClosestHeightPointTriangle(p, a, b, c common.Vec3) (h float32, ok bool) {
	const EPS = 1e-6
	v0 := c.Sub(a)
	v1 := b.Sub(a)
	v2 := p.Sub(a)

	// Compute scaled barycentric coordinates
	denom := v0[0]*v1[2] - v0[2]*v1[0]
	if mgl32.Abs(denom) < EPS {
		return h, false
	}
	u := v1[2]*v2[0] - v1[0]*v2[2]
	v := v0[0]*v2[2] - v0[2]*v2[0]

	if denom < 0 {
		denom = -denom
		u = -u
		v = -v
	}

	// If point lies inside the triangle, return interpolated ycoord.
	if u >= -EPS && v >= -EPS && (u+v) <= denom+EPS {
		return a[1] + (v0[1]*u+v1[1]*v)/denom, true
	}
	return h, false
}
