package geometry

import (
	"github.com/gorustyt/gonavpath/common"
)

// Line3D is the infinite line through A and B.
type Line3D struct {
	A, B common.Vec3
}

// SquareDistance is the squared distance from point to the line.
func (l Line3D) SquareDistance(point common.Vec3) float32 {
	ab := l.B.Sub(l.A)
	abLenSqr := ab.Dot(ab)
	if abLenSqr == 0 {
		return common.VdistSqr(l.A, point)
	}
	ap := point.Sub(l.A)
	cross := ab.Cross(ap)
	return cross.Dot(cross) / abLenSqr
}

// LineSegment3D is the closed segment between A and B.
type LineSegment3D struct {
	A, B common.Vec3
}

func NewLineSegment3D(a, b common.Vec3) LineSegment3D {
	return LineSegment3D{A: a, B: b}
}

func (s LineSegment3D) Line() Line3D {
	return Line3D{A: s.A, B: s.B}
}

func (s LineSegment3D) Vector() common.Vec3 {
	return s.B.Sub(s.A)
}

func (s LineSegment3D) SquareLength() float32 {
	v := s.Vector()
	return v.Dot(v)
}

func (s LineSegment3D) Length() float32 {
	return s.Vector().Len()
}

// IsDegenerate reports a zero-length segment such as a path start/end portal.
func (s LineSegment3D) IsDegenerate() bool {
	return s.A == s.B
}

// PointAt returns A + t*(B-A).
func (s LineSegment3D) PointAt(t float32) common.Vec3 {
	return common.Vlerp(s.A, s.B, t)
}

// ProjectedParameter returns the parameter t of the orthogonal projection of
// point on the supporting line: 0 at A, 1 at B. Not clamped.
func (s LineSegment3D) ProjectedParameter(point common.Vec3) float32 {
	ab := s.Vector()
	abLenSqr := ab.Dot(ab)
	if abLenSqr == 0 {
		return 0
	}
	return point.Sub(s.A).Dot(ab) / abLenSqr
}

// ClosestPoint returns the point of the segment closest to point.
func (s LineSegment3D) ClosestPoint(point common.Vec3) common.Vec3 {
	return s.PointAt(common.Clamp(s.ProjectedParameter(point), 0, 1))
}

// SubSegment returns the part of the segment between parameters t0 and t1.
func (s LineSegment3D) SubSegment(t0, t1 float32) LineSegment3D {
	return LineSegment3D{A: s.PointAt(t0), B: s.PointAt(t1)}
}
