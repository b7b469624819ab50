package polytope

import (
	"github.com/gorustyt/gonavpath/common"
	"github.com/gorustyt/gonavpath/geometry"
	"github.com/gorustyt/gonavpath/navmesh/model"
)

// TerrainSurface is a heightfield patch. Steep parts are excluded from the
// walkable area through self obstacles.
type TerrainSurface struct {
	surfaceBase
	grid            *terrainGrid
	selfObstacles   []model.CSGPolygon
	outlineCwPoints []common.Vec2
}

func NewTerrainSurface(position common.Vec3, localVertices []common.Vec3, xLength, zLength int, selfObstacles []model.CSGPolygon) (*TerrainSurface, error) {
	grid, err := newTerrainGrid(position, localVertices, xLength, zLength)
	if err != nil {
		return nil, err
	}
	return &TerrainSurface{
		surfaceBase:     newSurfaceBase(),
		grid:            grid,
		selfObstacles:   selfObstacles,
		outlineCwPoints: model.NewCSGPolygon("", grid.cornersXZ()).CwPoints,
	}, nil
}

func (s *TerrainSurface) Position() int {
	return s.surfacePosition(s)
}

func (s *TerrainSurface) IsWalkable() bool {
	return s.IsWalkableCandidate()
}

func (s *TerrainSurface) ComputeXZRectangle() geometry.Rectangle {
	return geometry.NewRectangleFromPoints(s.outlineCwPoints)
}

func (s *TerrainSurface) ComputeAABBox() geometry.AABBox {
	return geometry.NewAABBoxFromPoints(s.grid.vertices)
}

func (s *TerrainSurface) OutlineCwPoints() []common.Vec2 {
	return s.outlineCwPoints
}

// Plane approximates the terrain inside rect by the upward plane through
// three of its corners lifted onto the heightfield.
func (s *TerrainSurface) Plane(rect geometry.Rectangle, agent *model.NavMeshAgent) (geometry.Plane, error) {
	corners := [3]common.Vec2{rect.Min, {rect.Min[0], rect.Max[1]}, rect.Max}
	var points [3]common.Vec3
	for i, corner := range corners {
		p, err := s.ComputeRealPoint(corner, agent)
		if err != nil {
			return geometry.Plane{}, err
		}
		points[i] = p
	}
	plane, err := geometry.NewPlaneFromPoints(points[0], points[1], points[2])
	if err != nil {
		return geometry.Plane{}, err
	}
	if plane.Normal[1] < 0 {
		plane = geometry.Plane{Normal: plane.Normal.Mul(-1), DistanceToOrigin: -plane.DistanceToOrigin}
	}
	return plane, nil
}

func (s *TerrainSurface) SelfObstacles() []model.CSGPolygon {
	return s.selfObstacles
}

func (s *TerrainSurface) ComputeRealPoint(point common.Vec2, _ *model.NavMeshAgent) (common.Vec3, error) {
	h, err := s.grid.heightAt(point[0], point[1])
	if err != nil {
		return common.Vec3{}, err
	}
	return common.Vec3{point[0], h, point[1]}, nil
}

func (s *TerrainSurface) NewNavTopography() model.NavTopography {
	return &TerrainTopography{grid: s.grid}
}
