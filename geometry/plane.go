package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorustyt/gonavpath/common"
)

// PlaneIntersectionEpsilon is the smallest absolute scalar triple product of
// three unit normals accepted by IntersectPlanes. Below it the planes are
// considered near parallel and no stable intersection point exists.
const PlaneIntersectionEpsilon float32 = 1e-4

// Plane is the set of points p with Normal.Dot(p) + DistanceToOrigin == 0.
// Normal is always unit length.
type Plane struct {
	Normal           common.Vec3
	DistanceToOrigin float32
}

// NewPlaneFromPoints builds the plane through p1, p2, p3. The normal follows
// the counter-clockwise order of the points: (p2-p1) x (p3-p1).
func NewPlaneFromPoints(p1, p2, p3 common.Vec3) (Plane, error) {
	normal := p2.Sub(p1).Cross(p3.Sub(p1))
	length := normal.Len()
	if length <= 1e-7 || !common.IsFinite(length) {
		return Plane{}, common.NewDegenerateGeometryError("plane points %v, %v, %v are collinear", p1, p2, p3)
	}
	normal = normal.Mul(1.0 / length)
	return Plane{Normal: normal, DistanceToOrigin: -normal.Dot(p1)}, nil
}

// NewPlaneFromNormal builds the plane of the given normal through point.
func NewPlaneFromNormal(normal, point common.Vec3) Plane {
	normal = normal.Normalize()
	return Plane{Normal: normal, DistanceToOrigin: -normal.Dot(point)}
}

// DistanceTo is the signed distance of point to the plane, positive on the normal side.
func (p Plane) DistanceTo(point common.Vec3) float32 {
	return p.Normal.Dot(point) + p.DistanceToOrigin
}

// Offset shifts the plane along its normal by distance.
func (p Plane) Offset(distance float32) Plane {
	return Plane{Normal: p.Normal, DistanceToOrigin: p.DistanceToOrigin - distance}
}

// VerticalIntersection returns the height of the plane above the XZ point (x, z).
func (p Plane) VerticalIntersection(x, z float32) (float32, error) {
	if mgl32.Abs(p.Normal[1]) < 1e-6 {
		return 0, common.NewDegenerateGeometryError("vertical plane %v has no height at (%v, %v)", p.Normal, x, z)
	}
	return -(p.Normal[0]*x + p.Normal[2]*z + p.DistanceToOrigin) / p.Normal[1], nil
}

// IntersectPlanes returns the single point shared by three planes:
//
//	p = -(d0 (n1 x n2) + d1 (n2 x n0) + d2 (n0 x n1)) / (n0 . (n1 x n2))
//
// A triple product below PlaneIntersectionEpsilon is a DegenerateGeometryError.
func IntersectPlanes(plane0, plane1, plane2 Plane) (common.Vec3, error) {
	n0CrossN1 := plane0.Normal.Cross(plane1.Normal)
	n1CrossN2 := plane1.Normal.Cross(plane2.Normal)
	n2CrossN0 := plane2.Normal.Cross(plane0.Normal)

	triple := plane0.Normal.Dot(n1CrossN2)
	if mgl32.Abs(triple) < PlaneIntersectionEpsilon || !common.IsFinite(triple) {
		return common.Vec3{}, common.NewDegenerateGeometryError("near parallel planes (triple product %v)", triple)
	}

	point := n1CrossN2.Mul(plane0.DistanceToOrigin).
		Add(n2CrossN0.Mul(plane1.DistanceToOrigin)).
		Add(n0CrossN1.Mul(plane2.DistanceToOrigin))
	return point.Mul(-1.0 / triple), nil
}
