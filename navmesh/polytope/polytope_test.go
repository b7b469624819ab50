package polytope

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorustyt/gonavpath/common"
	"github.com/gorustyt/gonavpath/common/logger"
	"github.com/gorustyt/gonavpath/geometry"
	"github.com/gorustyt/gonavpath/navmesh/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newSquareSurface(t *testing.T, y float32) *PlaneSurface {
	surface, err := NewPlaneSurface([]common.Vec3{{0, y, 0}, {0, y, 1}, {1, y, 1}, {1, y, 0}}, newAgent(t))
	require.NoError(t, err)
	return surface
}

func TestPlaneSurface(t *testing.T) {
	surface := newSquareSurface(t, 2)
	assertVec3(t, common.Vec3{0, 1, 0}, surface.Normal())
	assert.True(t, surface.IsWalkable())
	assert.True(t, common.IsCwPolygon(surface.OutlineCwPoints()))
	assert.Nil(t, surface.NewNavTopography())
	assert.Empty(t, surface.SelfObstacles())

	p, err := surface.ComputeRealPoint(common.Vec2{0.5, 0.5}, nil)
	require.NoError(t, err)
	assertVec3(t, common.Vec3{0.5, 2, 0.5}, p)

	surface.SetWalkableCandidate(false)
	assert.False(t, surface.IsWalkable())
}

func TestPlaneSurfaceDegenerate(t *testing.T) {
	_, err := NewPlaneSurface([]common.Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}, newAgent(t))
	var degenerate *common.DegenerateGeometryError
	assert.True(t, errors.As(err, &degenerate))

	_, err = NewPlaneSurface([]common.Vec3{{0, 0, 0}, {1, 0, 0}}, newAgent(t))
	assert.True(t, errors.As(err, &degenerate))
}

func TestSteepPlaneSurfaceIsNotWalkable(t *testing.T) {
	surface, err := NewPlaneSurface([]common.Vec3{{0, 0, 0}, {0, 0, 1}, {1, 2, 1}, {1, 2, 0}}, newAgent(t))
	require.NoError(t, err)
	assert.True(t, surface.IsWalkableCandidate())
	assert.False(t, surface.IsWalkable())
}

func TestPolytopeSurfacePosition(t *testing.T) {
	surfaces := []PolytopeSurface{newSquareSurface(t, 0), newSquareSurface(t, 1), newSquareSurface(t, 2)}
	polytope, err := NewPolytope("stairs", surfaces)
	require.NoError(t, err)

	for i, surface := range surfaces {
		assert.Same(t, polytope, surface.Polytope())
		assert.Equal(t, i, surface.Position())
		assert.Equal(t, i, surface.Position(), "cached position")
	}
	assertVec3(t, common.Vec3{0, 0, 0}, polytope.AABBox().Min)
	assertVec3(t, common.Vec3{1, 2, 1}, polytope.AABBox().Max)
	assert.Equal(t, geometry.Rectangle{Min: common.Vec2{0, 0}, Max: common.Vec2{1, 1}}, polytope.XZRectangle())
}

func TestPolytopeReparenting(t *testing.T) {
	first := newSquareSurface(t, 0)
	second := newSquareSurface(t, 1)

	_, err := NewPolytope("draft", []PolytopeSurface{first})
	require.NoError(t, err)
	// not read yet: a new owner is accepted
	owner, err := NewPolytope("final", []PolytopeSurface{first})
	require.NoError(t, err)
	assert.Equal(t, 0, first.Position())

	_, err = NewPolytope("other", []PolytopeSurface{second, first})
	assert.True(t, errors.Is(err, common.ErrSurfaceReparented))
	assert.Same(t, owner, first.Polytope())
	assert.Nil(t, second.Polytope(), "no surface attached on failure")
}

func TestPolytopeWithoutSurface(t *testing.T) {
	_, err := NewPolytope("empty", nil)
	var precondition *common.PreconditionError
	assert.True(t, errors.As(err, &precondition))
}

func TestPolytopeCandidates(t *testing.T) {
	polytope, err := NewPolytope("p", []PolytopeSurface{newSquareSurface(t, 0), newSquareSurface(t, 1)})
	require.NoError(t, err)
	assert.True(t, polytope.IsWalkableCandidate())
	assert.True(t, polytope.IsObstacleCandidate())

	polytope.SetWalkableCandidate(false)
	for _, surface := range polytope.Surfaces() {
		assert.False(t, surface.IsWalkableCandidate())
	}
	polytope.SetObstacleCandidate(false)
	assert.False(t, polytope.IsObstacleCandidate())
}

// newTerrain builds a 3x3 unit grid whose height is given per vertex.
func newTerrain(name string, position common.Vec3, height func(x, z int) float32) *AITerrain {
	vertices := make([]common.Vec3, 0, 9)
	for z := 0; z < 3; z++ {
		for x := 0; x < 3; x++ {
			vertices = append(vertices, common.Vec3{float32(x), height(x, z), float32(z)})
		}
	}
	transform := geometry.IdentityTransform()
	transform.Position = position
	return &AITerrain{Name: name, Vertices: vertices, XLength: 3, ZLength: 3, Transform: transform, ObstacleCandidate: false}
}

func newConfig(t *testing.T) *model.NavMeshConfig {
	return model.NewNavMeshConfig(newAgent(t))
}

func TestFlatTerrainPolytope(t *testing.T) {
	terrain := newTerrain("ground", common.Vec3{10, 0, 10}, func(int, int) float32 { return 0 })
	polytope, err := NewPolytopeBuilder().BuildExpandedPolytope(terrain, newConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "ground", polytope.Name())
	assert.True(t, polytope.IsWalkableCandidate())
	assert.False(t, polytope.IsObstacleCandidate())
	require.Len(t, polytope.Surfaces(), 1)

	surface := polytope.Surface(0)
	assert.True(t, surface.IsWalkable())
	assert.Empty(t, surface.SelfObstacles())
	assert.True(t, common.IsCwPolygon(surface.OutlineCwPoints()))
	assert.Equal(t, geometry.Rectangle{Min: common.Vec2{10, 10}, Max: common.Vec2{12, 12}}, polytope.XZRectangle())

	p, err := surface.ComputeRealPoint(common.Vec2{11, 11.5}, nil)
	require.NoError(t, err)
	assertVec3(t, common.Vec3{11, 0, 11.5}, p)
	assert.NotNil(t, surface.NewNavTopography())
}

func TestSteepTerrainSelfObstacles(t *testing.T) {
	terrain := newTerrain("hill", common.Vec3{}, func(x, z int) float32 {
		if x == 2 {
			return 5
		}
		return 0
	})
	polytope, err := NewPolytopeBuilder().BuildExpandedPolytope(terrain, newConfig(t))
	require.NoError(t, err)

	obstacles := polytope.Surface(0).SelfObstacles()
	require.Len(t, obstacles, 2)
	assert.Equal(t, "hill_obstacle0", obstacles[0].Name)
	assert.Equal(t, "hill_obstacle1", obstacles[1].Name)
	for _, obstacle := range obstacles {
		assert.True(t, common.IsCwPolygon(obstacle.CwPoints))
		rect := geometry.NewRectangleFromPoints(obstacle.CwPoints)
		assert.Equal(t, float32(1), rect.Min[0])
		assert.Equal(t, float32(2), rect.Max[0])
	}
}

type fixedObstacleService struct {
	obstacles []model.CSGPolygon
	maxSlope  *float32
}

func (s fixedObstacleService) ComputeSelfObstacles(maxSlope float32) ([]model.CSGPolygon, error) {
	*s.maxSlope = maxSlope
	return s.obstacles, nil
}

func TestTerrainObstacleFactory(t *testing.T) {
	var receivedSlope float32
	obstacle := model.NewCSGPolygon("rock", []common.Vec2{{0, 0}, {1, 0}, {1, 1}})
	builder := NewPolytopeBuilder().SetTerrainObstacleFactory(func(*AITerrain) TerrainObstacleService {
		return fixedObstacleService{obstacles: []model.CSGPolygon{obstacle}, maxSlope: &receivedSlope}
	})

	terrain := newTerrain("ground", common.Vec3{}, func(int, int) float32 { return 0 })
	polytope, err := builder.BuildExpandedPolytope(terrain, newConfig(t))
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/4, receivedSlope, 1e-6)
	assert.Equal(t, []model.CSGPolygon{obstacle}, polytope.Surface(0).SelfObstacles())
}

func TestTransformedTerrainIsRejected(t *testing.T) {
	terrain := newTerrain("ground", common.Vec3{}, func(int, int) float32 { return 0 })
	terrain.Transform.Scale = 2
	_, err := NewPolytopeBuilder().BuildExpandedPolytope(terrain, newConfig(t))
	var precondition *common.PreconditionError
	assert.True(t, errors.As(err, &precondition))

	terrain = newTerrain("ground", common.Vec3{}, func(int, int) float32 { return 0 })
	terrain.Transform.Orientation = mgl32.QuatRotate(0.1, common.Vec3{0, 1, 0})
	_, err = NewPolytopeBuilder().BuildExpandedPolytope(terrain, newConfig(t))
	assert.True(t, errors.As(err, &precondition))

	// rounding noise on the orientation is not a rotation
	terrain = newTerrain("ground", common.Vec3{}, func(int, int) float32 { return 0 })
	terrain.Transform.Orientation = mgl32.QuatRotate(1e-7, common.Vec3{0, 1, 0})
	_, err = NewPolytopeBuilder().BuildExpandedPolytope(terrain, newConfig(t))
	assert.NoError(t, err)

	terrain = newTerrain("ground", common.Vec3{}, func(int, int) float32 { return 0 })
	terrain.Vertices = terrain.Vertices[:5]
	_, err = NewPolytopeBuilder().BuildExpandedPolytope(terrain, newConfig(t))
	assert.Error(t, err)
}

func TestTerrainHeightAndPlane(t *testing.T) {
	terrain := newTerrain("ramp", common.Vec3{}, func(x, _ int) float32 { return float32(x) })
	surface, err := NewTerrainSurface(terrain.Transform.Position, terrain.Vertices, 3, 3, nil)
	require.NoError(t, err)

	p, err := surface.ComputeRealPoint(common.Vec2{0.5, 1.5}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p[1], eps)

	// outside the grid the border height is used
	p, err = surface.ComputeRealPoint(common.Vec2{5, 1}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 2, p[1], eps)

	plane, err := surface.Plane(geometry.Rectangle{Min: common.Vec2{0, 0}, Max: common.Vec2{1, 1}}, nil)
	require.NoError(t, err)
	s := float32(math.Sqrt2 / 2)
	assertVec3(t, common.Vec3{-s, s, 0}, plane.Normal)
}

func TestTerrainTopography(t *testing.T) {
	terrain := newTerrain("ramp", common.Vec3{}, func(x, _ int) float32 { return float32(x) })
	surface, err := NewTerrainSurface(terrain.Transform.Position, terrain.Vertices, 3, 3, nil)
	require.NoError(t, err)

	start := common.Vec3{0, 0, 0.5}
	end := common.Vec3{2, 2, 0.5}
	points := surface.NewNavTopography().FollowTopography(start, end)
	require.Len(t, points, 3)
	assert.Equal(t, start, points[0])
	assertVec3(t, common.Vec3{1, 1, 0.5}, points[1])
	assert.Equal(t, end, points[2])

	same := surface.NewNavTopography().FollowTopography(start, start)
	assert.Equal(t, []common.Vec3{start, start}, same)
}

func TestTerrainTopographyWithoutHeight(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	logger.SetLogger(zap.New(core))
	defer logger.SetLogger(zap.NewNop())

	// middle column squeezed against the last one: x=1 is under no triangle of its cell
	terrain := newTerrain("broken", common.Vec3{}, func(int, int) float32 { return 5 })
	for z := 0; z < 3; z++ {
		terrain.Vertices[z*3+1][0] = 1.9
	}
	surface, err := NewTerrainSurface(terrain.Transform.Position, terrain.Vertices, 3, 3, nil)
	require.NoError(t, err)

	start := common.Vec3{0, 0, 0.5}
	end := common.Vec3{2, 2, 0.5}
	points := surface.NewNavTopography().FollowTopography(start, end)
	require.Len(t, points, 3)
	assertVec3(t, common.Vec3{1, 1, 0.5}, points[1])

	warnings := logs.FilterMessage("terrain height not found, keeping straight segment height")
	require.Equal(t, 1, warnings.Len())
	assert.Equal(t, float32(1), warnings.All()[0].ContextMap()["x"])
}
