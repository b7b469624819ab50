package polytope

import (
	"math"
	"strconv"

	"github.com/gorustyt/gonavpath/common"
	"github.com/gorustyt/gonavpath/geometry"
	"github.com/gorustyt/gonavpath/navmesh/model"
)

// TerrainObstacleService computes the parts of a terrain too steep to walk
// on, as 2D polygons carved out of the terrain surface.
type TerrainObstacleService interface {
	ComputeSelfObstacles(maxSlope float32) ([]model.CSGPolygon, error)
}

// TerrainObstacleServiceFactory seeds a TerrainObstacleService with a terrain.
type TerrainObstacleServiceFactory func(terrain *AITerrain) TerrainObstacleService

// SlopeTerrainObstacleService flags every grid cell holding a triangle
// steeper than the max slope. Consecutive steep cells of a row are merged in
// one polygon.
type SlopeTerrainObstacleService struct {
	name             string
	position         common.Vec3
	localVertices    []common.Vec3
	xLength, zLength int
}

func NewSlopeTerrainObstacleService(terrain *AITerrain) TerrainObstacleService {
	return &SlopeTerrainObstacleService{
		name:          terrain.Name,
		position:      terrain.Transform.Position,
		localVertices: terrain.Vertices,
		xLength:       terrain.XLength,
		zLength:       terrain.ZLength,
	}
}

func (s *SlopeTerrainObstacleService) ComputeSelfObstacles(maxSlope float32) ([]model.CSGPolygon, error) {
	grid, err := newTerrainGrid(s.position, s.localVertices, s.xLength, s.zLength)
	if err != nil {
		return nil, err
	}
	minNormalY := float32(math.Cos(float64(maxSlope)))

	var obstacles []model.CSGPolygon
	for z := 0; z < grid.zLength-1; z++ {
		runStart := -1
		for x := 0; x <= grid.xLength-1; x++ {
			steep := x < grid.xLength-1 && s.isSteepCell(grid, x, z, minNormalY)
			if steep && runStart < 0 {
				runStart = x
			} else if !steep && runStart >= 0 {
				obstacles = append(obstacles, model.NewCSGPolygon(s.name+"_obstacle"+strconv.Itoa(len(obstacles)), []common.Vec2{
					common.XZ(grid.vertex(runStart, z)),
					common.XZ(grid.vertex(x, z)),
					common.XZ(grid.vertex(x, z+1)),
					common.XZ(grid.vertex(runStart, z+1)),
				}))
				runStart = -1
			}
		}
	}
	return obstacles, nil
}

func (s *SlopeTerrainObstacleService) isSteepCell(grid *terrainGrid, x, z int, minNormalY float32) bool {
	for _, triangle := range grid.cellTriangles(x, z) {
		plane, err := geometry.NewPlaneFromPoints(triangle[0], triangle[1], triangle[2])
		if err != nil || plane.Normal[1] < minNormalY-1e-5 {
			return true
		}
	}
	return false
}
