package polytope

import (
	"fmt"

	"github.com/gorustyt/gonavpath/common"
	"github.com/gorustyt/gonavpath/geometry"
)

// Polytope is an obstacle or terrain piece expanded by the agent clearance.
// It owns its surfaces.
type Polytope struct {
	name              string
	surfaces          []PolytopeSurface
	walkableCandidate bool
	obstacleCandidate bool

	aabbox      geometry.AABBox
	xzRectangle geometry.Rectangle
}

// NewPolytope takes ownership of the surfaces. It fails when one of them
// already exposed its position inside another polytope.
func NewPolytope(name string, surfaces []PolytopeSurface) (*Polytope, error) {
	if len(surfaces) == 0 {
		return nil, common.NewPreconditionError("polytope %s has no surface", name)
	}
	p := &Polytope{
		name:              name,
		surfaces:          surfaces,
		walkableCandidate: true,
		obstacleCandidate: true,
	}
	for _, surface := range surfaces {
		if surface.positionLocked() {
			return nil, fmt.Errorf("attach to %s: %w", name, common.ErrSurfaceReparented)
		}
	}
	for _, surface := range surfaces {
		if err := surface.setPolytope(p); err != nil {
			return nil, err
		}
	}

	p.aabbox = surfaces[0].ComputeAABBox()
	p.xzRectangle = surfaces[0].ComputeXZRectangle()
	for _, surface := range surfaces[1:] {
		p.aabbox = p.aabbox.Merge(surface.ComputeAABBox())
		p.xzRectangle = p.xzRectangle.Merge(surface.ComputeXZRectangle())
	}
	return p, nil
}

func (p *Polytope) Name() string {
	return p.name
}

func (p *Polytope) Surfaces() []PolytopeSurface {
	return p.surfaces
}

func (p *Polytope) Surface(i int) PolytopeSurface {
	return p.surfaces[i]
}

func (p *Polytope) AABBox() geometry.AABBox {
	return p.aabbox
}

func (p *Polytope) XZRectangle() geometry.Rectangle {
	return p.xzRectangle
}

// SetWalkableCandidate marks the polytope and every surface.
func (p *Polytope) SetWalkableCandidate(walkableCandidate bool) {
	p.walkableCandidate = walkableCandidate
	for _, surface := range p.surfaces {
		surface.SetWalkableCandidate(walkableCandidate)
	}
}

func (p *Polytope) IsWalkableCandidate() bool {
	return p.walkableCandidate
}

// SetObstacleCandidate tells whether the polytope can carve holes in the
// walkable surfaces of other polytopes.
func (p *Polytope) SetObstacleCandidate(obstacleCandidate bool) {
	p.obstacleCandidate = obstacleCandidate
}

func (p *Polytope) IsObstacleCandidate() bool {
	return p.obstacleCandidate
}

func (p *Polytope) String() string {
	return fmt.Sprintf("Polytope{name: %s, surfaces: %d, walkable: %v, obstacle: %v}", p.name, len(p.surfaces), p.walkableCandidate, p.obstacleCandidate)
}
