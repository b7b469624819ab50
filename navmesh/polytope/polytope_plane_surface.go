package polytope

import (
	"github.com/gorustyt/gonavpath/common"
	"github.com/gorustyt/gonavpath/geometry"
	"github.com/gorustyt/gonavpath/navmesh/model"
)

// PlaneSurface is a planar convex polygon.
type PlaneSurface struct {
	surfaceBase
	ccwPoints       []common.Vec3
	plane           geometry.Plane
	slopeWalkable   bool
	outlineCwPoints []common.Vec2
}

// NewPlaneSurface builds a surface from points in counter-clockwise order
// seen from outside the polytope.
func NewPlaneSurface(ccwPoints []common.Vec3, agent *model.NavMeshAgent) (*PlaneSurface, error) {
	if len(ccwPoints) < 3 {
		return nil, common.NewDegenerateGeometryError("plane surface needs at least 3 points, got %d", len(ccwPoints))
	}
	plane, err := geometry.NewPlaneFromPoints(ccwPoints[0], ccwPoints[1], ccwPoints[2])
	if err != nil {
		return nil, err
	}

	outline := make([]common.Vec2, len(ccwPoints))
	for i, p := range ccwPoints {
		outline[i] = common.XZ(p)
	}
	if !common.IsCwPolygon(outline) {
		outline = common.ReversePolygon(outline)
	}

	return &PlaneSurface{
		surfaceBase:     newSurfaceBase(),
		ccwPoints:       ccwPoints,
		plane:           plane,
		slopeWalkable:   agent.IsWalkableSlope(plane.Normal),
		outlineCwPoints: outline,
	}, nil
}

func (s *PlaneSurface) Position() int {
	return s.surfacePosition(s)
}

func (s *PlaneSurface) CcwPoints() []common.Vec3 {
	return s.ccwPoints
}

func (s *PlaneSurface) Normal() common.Vec3 {
	return s.plane.Normal
}

// IsWalkable reports a near horizontal surface flagged as walkable candidate.
func (s *PlaneSurface) IsWalkable() bool {
	return s.IsWalkableCandidate() && s.slopeWalkable
}

func (s *PlaneSurface) ComputeXZRectangle() geometry.Rectangle {
	return geometry.NewRectangleFromPoints(s.outlineCwPoints)
}

func (s *PlaneSurface) ComputeAABBox() geometry.AABBox {
	return geometry.NewAABBoxFromPoints(s.ccwPoints)
}

func (s *PlaneSurface) OutlineCwPoints() []common.Vec2 {
	return s.outlineCwPoints
}

func (s *PlaneSurface) Plane(geometry.Rectangle, *model.NavMeshAgent) (geometry.Plane, error) {
	return s.plane, nil
}

func (s *PlaneSurface) SelfObstacles() []model.CSGPolygon {
	return nil
}

// ComputeRealPoint lifts the XZ point vertically onto the surface plane.
func (s *PlaneSurface) ComputeRealPoint(point common.Vec2, _ *model.NavMeshAgent) (common.Vec3, error) {
	y, err := s.plane.VerticalIntersection(point[0], point[1])
	if err != nil {
		return common.Vec3{}, err
	}
	return common.Vec3{point[0], y, point[1]}, nil
}

func (s *PlaneSurface) NewNavTopography() model.NavTopography {
	return nil
}
