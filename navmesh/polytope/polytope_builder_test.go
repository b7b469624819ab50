package polytope

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorustyt/gonavpath/common"
	"github.com/gorustyt/gonavpath/geometry"
	"github.com/gorustyt/gonavpath/navmesh/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

func newAgent(t *testing.T) *model.NavMeshAgent {
	agent, err := model.NewNavMeshAgent(2, 0.5, math.Pi/4)
	require.NoError(t, err)
	return agent
}

func buildSingle(t *testing.T, shape geometry.ConvexShape, transform geometry.Transform) *Polytope {
	object := NewAIObject("object", transform, true, AIShape{Shape: shape})
	polytopes, err := NewPolytopeBuilder().BuildExpandedPolytopes(object, newAgent(t))
	require.NoError(t, err)
	require.Len(t, polytopes, 1)
	return polytopes[0]
}

func surfacePlane(t *testing.T, surface PolytopeSurface) geometry.Plane {
	plane, err := surface.Plane(geometry.Rectangle{}, nil)
	require.NoError(t, err)
	return plane
}

func assertVec3(t *testing.T, expected, actual common.Vec3) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], eps, "expected %v, got %v", expected, actual)
	}
}

func TestBoxExpansionTopFace(t *testing.T) {
	box := &geometry.BoxShape{HalfSizes: common.Vec3{1, 1, 1}}
	polytope := buildSingle(t, box, geometry.IdentityTransform())

	require.Len(t, polytope.Surfaces(), 6)
	top := surfacePlane(t, polytope.Surface(2))
	assertVec3(t, common.Vec3{0, 1, 0}, top.Normal)
	assert.InDelta(t, -1.5, top.DistanceToOrigin, eps)
	for _, p := range polytope.Surface(2).(*PlaneSurface).CcwPoints() {
		assert.InDelta(t, 1.5, p[1], eps)
	}
	assertVec3(t, common.Vec3{-1.5, -1.5, -1.5}, polytope.AABBox().Min)
	assertVec3(t, common.Vec3{1.5, 1.5, 1.5}, polytope.AABBox().Max)

	assert.True(t, polytope.Surface(2).IsWalkable())
	assert.False(t, polytope.Surface(3).IsWalkable(), "bottom face is upside down")
	assert.False(t, polytope.Surface(0).IsWalkable(), "side face is vertical")
	assert.True(t, polytope.IsObstacleCandidate())
}

func TestBoxExpansionKeepsFaceOrderAndClearance(t *testing.T) {
	agent := newAgent(t)
	orientations := []common.Quat{
		mgl32.QuatIdent(),
		mgl32.QuatRotate(0.7, common.Vec3{0, 1, 0}),
		mgl32.QuatRotate(0.3, common.Vec3{1, 1, 0}.Normalize()),
		mgl32.QuatRotate(math.Pi/4, common.Vec3{0, 0, 1}),
	}
	for _, orientation := range orientations {
		box := geometry.NewOBBox(common.Vec3{1, 2, 0.5}, common.Vec3{3, 1, -2}, orientation)
		polytope, err := NewPolytopeBuilder().createExpandedPolytopeForBox("box", box, agent)
		require.NoError(t, err)
		require.Len(t, polytope.Surfaces(), 6)

		expectedNormals := []common.Vec3{
			box.Axis(geometry.AxisX), box.Axis(geometry.AxisX).Mul(-1),
			box.Axis(geometry.AxisY), box.Axis(geometry.AxisY).Mul(-1),
			box.Axis(geometry.AxisZ), box.Axis(geometry.AxisZ).Mul(-1),
		}
		for i, surface := range polytope.Surfaces() {
			assert.Equal(t, i, surface.Position())
			plane := surfacePlane(t, surface)
			assertVec3(t, expectedNormals[i], plane.Normal)

			// the unexpanded face lies behind the expanded plane by the expand distance
			facePoint := box.Points()[pointIndexToPlanes[i][0]]
			assert.InDelta(t, -agent.ComputeExpandDistance(plane.Normal), plane.DistanceTo(facePoint), eps)
		}
	}
}

func TestCylinderExpansionWalkableCaps(t *testing.T) {
	tests := []struct {
		orientation geometry.Axis
		walkable    []int
	}{
		{geometry.AxisX, []int{0, 1}},
		{geometry.AxisY, []int{2, 3}},
		{geometry.AxisZ, []int{4, 5}},
	}
	for _, test := range tests {
		cylinder := &geometry.CylinderShape{Radius: 1, Height: 4, Orientation: test.orientation}
		polytope := buildSingle(t, cylinder, geometry.IdentityTransform())
		require.Len(t, polytope.Surfaces(), 6)

		var walkable []int
		for i, surface := range polytope.Surfaces() {
			if surface.IsWalkableCandidate() {
				walkable = append(walkable, i)
			}
		}
		assert.Equal(t, test.walkable, walkable)
	}

	cylinder := &geometry.CylinderShape{Radius: 1, Height: 4, Orientation: geometry.AxisY}
	polytope := buildSingle(t, cylinder, geometry.IdentityTransform())
	assert.InDelta(t, 2.5, polytope.AABBox().Max[1], eps)
	assert.InDelta(t, 1.5, polytope.AABBox().Max[0], eps)
}

func TestNonWalkableShapesExpansion(t *testing.T) {
	shapes := []geometry.ConvexShape{
		&geometry.CapsuleShape{Radius: 0.5, CylinderHeight: 2, Orientation: geometry.AxisY},
		&geometry.ConeShape{Radius: 1, Height: 4, Orientation: geometry.ConeYPositive},
		&geometry.SphereShape{Radius: 1},
	}
	for _, shape := range shapes {
		polytope := buildSingle(t, shape, geometry.IdentityTransform())
		require.Len(t, polytope.Surfaces(), 6, shape.ShapeKind().String())
		assert.False(t, polytope.IsWalkableCandidate())
		for _, surface := range polytope.Surfaces() {
			assert.False(t, surface.IsWalkableCandidate())
			assert.False(t, surface.IsWalkable())
		}
	}

	capsule := buildSingle(t, shapes[0], geometry.IdentityTransform())
	assert.InDelta(t, 2.0, capsule.AABBox().Max[1], eps)
	cone := buildSingle(t, shapes[1], geometry.IdentityTransform())
	assert.InDelta(t, 2.5, cone.AABBox().Max[1], eps)
	assert.InDelta(t, 1.5, cone.AABBox().Max[2], eps)
}

func TestScaledAndLocalTransform(t *testing.T) {
	local := geometry.NewTransform(common.Vec3{0, 2, 0}, mgl32.QuatIdent(), 1)
	object := NewAIObject("crate", geometry.NewTransform(common.Vec3{10, 0, 0}, mgl32.QuatIdent(), 2), false,
		AIShape{Shape: &geometry.BoxShape{HalfSizes: common.Vec3{1, 1, 1}}, LocalTransform: &local})
	polytopes, err := NewPolytopeBuilder().BuildExpandedPolytopes(object, newAgent(t))
	require.NoError(t, err)
	require.Len(t, polytopes, 1)

	// local offset scaled by the object transform: center (10, 4, 0), half sizes 2
	box := polytopes[0].AABBox()
	assertVec3(t, common.Vec3{7.5, 1.5, -2.5}, box.Min)
	assertVec3(t, common.Vec3{12.5, 6.5, 2.5}, box.Max)
	assert.False(t, polytopes[0].IsObstacleCandidate())
}

func TestMultiShapeObjectNames(t *testing.T) {
	object := NewAIObject("tree", geometry.IdentityTransform(), true,
		AIShape{Shape: &geometry.CylinderShape{Radius: 0.3, Height: 3, Orientation: geometry.AxisY}},
		AIShape{Shape: &geometry.SphereShape{Radius: 1.5}},
	)
	polytopes, err := NewPolytopeBuilder().BuildExpandedPolytopes(object, newAgent(t))
	require.NoError(t, err)
	require.Len(t, polytopes, 2)
	assert.Equal(t, "tree[0]", polytopes[0].Name())
	assert.Equal(t, "tree[1]", polytopes[1].Name())
	for _, polytope := range polytopes {
		assert.True(t, polytope.IsObstacleCandidate())
	}

	single, err := NewPolytopeBuilder().BuildExpandedPolytopes(NewAIObject("rock", geometry.IdentityTransform(), true,
		AIShape{Shape: &geometry.SphereShape{Radius: 1}}), newAgent(t))
	require.NoError(t, err)
	assert.Equal(t, "rock", single[0].Name())
}

func TestUnsupportedShape(t *testing.T) {
	object := NewAIObject("rock", geometry.IdentityTransform(), true,
		AIShape{Shape: &geometry.TriangleShape{Points: [3]common.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 0, 1}}}})
	polytopes, err := NewPolytopeBuilder().BuildExpandedPolytopes(object, newAgent(t))
	assert.Nil(t, polytopes)

	var unsupported *common.UnsupportedShapeError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "rock", unsupported.ObjectName)
	assert.Equal(t, "triangle", unsupported.Kind)
	assert.Contains(t, err.Error(), "rock")
}

func TestFlatBoxIsDegenerate(t *testing.T) {
	object := NewAIObject("wall", geometry.IdentityTransform(), true,
		AIShape{Shape: &geometry.SphereShape{Radius: 1}},
		AIShape{Shape: &geometry.BoxShape{HalfSizes: common.Vec3{0, 1, 1}}})
	polytopes, err := NewPolytopeBuilder().BuildExpandedPolytopes(object, newAgent(t))
	assert.Nil(t, polytopes, "no partial result")

	var degenerate *common.DegenerateGeometryError
	assert.True(t, errors.As(err, &degenerate))
	assert.Contains(t, err.Error(), "wall[1]")
}

func cubeHullShape() *geometry.ConvexHullShape {
	box := geometry.NewOBBox(common.Vec3{1, 1, 1}, common.Vec3{}, mgl32.QuatIdent())
	points := box.Points()
	hull := &geometry.ConvexHullShape{Points: points[:]}
	for _, quad := range pointIndexToPlanes {
		hull.Triangles = append(hull.Triangles,
			geometry.IndexedTriangle{Indices: [3]int{quad[0], quad[1], quad[2]}},
			geometry.IndexedTriangle{Indices: [3]int{quad[0], quad[2], quad[3]}})
	}
	return hull
}

func TestConvexHullExpansion(t *testing.T) {
	polytope := buildSingle(t, cubeHullShape(), geometry.IdentityTransform())

	require.Len(t, polytope.Surfaces(), 12)
	assert.False(t, polytope.IsWalkableCandidate())
	for _, surface := range polytope.Surfaces() {
		assert.False(t, surface.IsWalkableCandidate())
	}
	assertVec3(t, common.Vec3{-1.5, -1.5, -1.5}, polytope.AABBox().Min)
	assertVec3(t, common.Vec3{1.5, 1.5, 1.5}, polytope.AABBox().Max)
}

type failingHullResizer struct{}

func (failingHullResizer) ResizeConvexHull(*geometry.ConvexHull3D, map[int]geometry.Plane) (*geometry.ConvexHull3D, error) {
	return nil, common.NewDegenerateGeometryError("cannot resize")
}

func TestConvexHullResizeFailure(t *testing.T) {
	object := NewAIObject("statue", geometry.IdentityTransform(), true, AIShape{Shape: cubeHullShape()})
	_, err := NewPolytopeBuilder().SetHullResizer(failingHullResizer{}).BuildExpandedPolytopes(object, newAgent(t))

	var degenerate *common.DegenerateGeometryError
	assert.True(t, errors.As(err, &degenerate))
}

func TestNilShape(t *testing.T) {
	_, err := NewPolytopeBuilder().BuildExpandedPolytopes(NewAIObject("ghost", geometry.IdentityTransform(), true, AIShape{}), newAgent(t))
	var unsupported *common.UnsupportedShapeError
	assert.True(t, errors.As(err, &unsupported))
}
