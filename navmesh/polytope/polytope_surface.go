package polytope

import (
	"fmt"

	"github.com/gorustyt/gonavpath/common"
	"github.com/gorustyt/gonavpath/geometry"
	"github.com/gorustyt/gonavpath/navmesh/model"
)

// PolytopeSurface is one face of a Polytope: candidate walkable ground or
// pure obstacle.
type PolytopeSurface interface {
	Polytope() *Polytope
	// Position is the index of the surface inside its polytope. It is
	// computed on first call and cached; the surface cannot change owner afterward.
	Position() int

	IsWalkableCandidate() bool
	SetWalkableCandidate(walkableCandidate bool)

	IsWalkable() bool
	ComputeXZRectangle() geometry.Rectangle
	ComputeAABBox() geometry.AABBox
	OutlineCwPoints() []common.Vec2
	Plane(rect geometry.Rectangle, agent *model.NavMeshAgent) (geometry.Plane, error)
	SelfObstacles() []model.CSGPolygon
	ComputeRealPoint(point common.Vec2, agent *model.NavMeshAgent) (common.Vec3, error)
	// NewNavTopography returns nil for planar surfaces.
	NewNavTopography() model.NavTopography

	setPolytope(polytope *Polytope) error
	positionLocked() bool
}

type surfaceBase struct {
	polytope          *Polytope
	position          int
	positionComputed  bool
	walkableCandidate bool
}

func newSurfaceBase() surfaceBase {
	return surfaceBase{walkableCandidate: true}
}

func (s *surfaceBase) Polytope() *Polytope {
	return s.polytope
}

func (s *surfaceBase) setPolytope(polytope *Polytope) error {
	if s.positionComputed {
		return fmt.Errorf("attach to %s: %w", polytope.Name(), common.ErrSurfaceReparented)
	}
	s.polytope = polytope
	return nil
}

func (s *surfaceBase) positionLocked() bool {
	return s.positionComputed
}

func (s *surfaceBase) surfacePosition(self PolytopeSurface) int {
	if !s.positionComputed {
		common.AssertTrue(s.polytope != nil, "surface position read before attaching a polytope")
		s.position = -1
		for i, surface := range s.polytope.Surfaces() {
			if surface == self {
				s.position = i
				break
			}
		}
		common.AssertTrue(s.position >= 0, "impossible to find surface position for polytope "+s.polytope.Name())
		s.positionComputed = true
	}
	return s.position
}

func (s *surfaceBase) IsWalkableCandidate() bool {
	return s.walkableCandidate
}

func (s *surfaceBase) SetWalkableCandidate(walkableCandidate bool) {
	s.walkableCandidate = walkableCandidate
}
