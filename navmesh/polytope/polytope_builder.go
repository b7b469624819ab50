package polytope

import (
	"fmt"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorustyt/gonavpath/common"
	"github.com/gorustyt/gonavpath/common/logger"
	"github.com/gorustyt/gonavpath/geometry"
	"github.com/gorustyt/gonavpath/navmesh/model"
	"go.uber.org/zap"
)

// Box plane i is built from the corners pointIndexToPlanes[i], in
// counter-clockwise order seen from outside.
var pointIndexToPlanes = [6][4]int{
	{0, 2, 3, 1}, //right
	{4, 5, 7, 6}, //left
	{0, 1, 5, 4}, //top
	{3, 2, 6, 7}, //bottom
	{0, 4, 6, 2}, //front
	{1, 3, 7, 5}, //back
}

// Box corner i is the intersection of the planes planeIndexToPoints[i].
var planeIndexToPoints = [8][3]int{
	{0, 2, 4}, //NTR
	{0, 2, 5}, //FTR
	{0, 3, 4}, //NBR
	{0, 3, 5}, //FBR
	{1, 2, 4}, //NTL
	{1, 2, 5}, //FTL
	{1, 3, 4}, //NBL
	{1, 3, 5}, //FBL
}

// HullResizer rebuilds a convex hull from its moved face planes, indexed by triangle.
type HullResizer interface {
	ResizeConvexHull(hull *geometry.ConvexHull3D, newPlanes map[int]geometry.Plane) (*geometry.ConvexHull3D, error)
}

// PolytopeBuilder expands the collision shapes of scene objects into
// polytopes. It only holds read-only collaborators and can be shared by
// concurrent goroutines.
type PolytopeBuilder struct {
	hullResizer            HullResizer
	terrainObstacleFactory TerrainObstacleServiceFactory
}

func NewPolytopeBuilder() *PolytopeBuilder {
	return &PolytopeBuilder{
		hullResizer:            geometry.ResizeConvexHullService{},
		terrainObstacleFactory: NewSlopeTerrainObstacleService,
	}
}

func (b *PolytopeBuilder) SetHullResizer(hullResizer HullResizer) *PolytopeBuilder {
	b.hullResizer = hullResizer
	return b
}

func (b *PolytopeBuilder) SetTerrainObstacleFactory(factory TerrainObstacleServiceFactory) *PolytopeBuilder {
	b.terrainObstacleFactory = factory
	return b
}

// BuildExpandedPolytopes returns one expanded polytope per shape of the object.
// No polytope is returned when one of the shapes fails.
func (b *PolytopeBuilder) BuildExpandedPolytopes(object *AIObject, agent *model.NavMeshAgent) ([]*Polytope, error) {
	expandedPolytopes := make([]*Polytope, 0, len(object.Shapes))
	for i, aiShape := range object.Shapes {
		shapeName := object.Name
		if len(object.Shapes) > 1 {
			shapeName = object.Name + "[" + strconv.Itoa(i) + "]"
		}
		if aiShape.Shape == nil {
			return nil, &common.UnsupportedShapeError{ObjectName: shapeName, Kind: "nil"}
		}
		shapeTransform := object.Transform
		if aiShape.LocalTransform != nil {
			shapeTransform = object.Transform.Mul(*aiShape.LocalTransform)
		}

		expandedPolytope, err := b.createExpandedPolytope(shapeName, aiShape.Shape.ToConvexObject(shapeTransform), agent)
		if err != nil {
			logger.L().Warn("cannot expand polytope", zap.String("name", shapeName), zap.Error(err))
			return nil, fmt.Errorf("expand polytope %s: %w", shapeName, err)
		}
		expandedPolytope.SetObstacleCandidate(object.ObstacleCandidate)
		logger.L().Debug("expanded polytope built",
			zap.String("name", shapeName),
			zap.Int("surfaces", len(expandedPolytope.Surfaces())),
			zap.Bool("walkableCandidate", expandedPolytope.IsWalkableCandidate()))
		expandedPolytopes = append(expandedPolytopes, expandedPolytope)
	}
	return expandedPolytopes, nil
}

// BuildExpandedPolytope wraps a terrain in a walkable polytope. The ground is
// not inflated: steep parts become self obstacles of the terrain surface.
func (b *PolytopeBuilder) BuildExpandedPolytope(terrain *AITerrain, config *model.NavMeshConfig) (*Polytope, error) {
	t := terrain.Transform
	if !mgl32.FloatEqualThreshold(t.Scale, 1, 1e-4) || t.Orientation.Normalize().V.Len() > 1e-4 {
		return nil, common.NewPreconditionError("terrain %s must not be scaled nor rotated", terrain.Name)
	}

	selfObstacles, err := b.terrainObstacleFactory(terrain).ComputeSelfObstacles(config.MaxSlope())
	if err != nil {
		return nil, fmt.Errorf("terrain %s self obstacles: %w", terrain.Name, err)
	}
	expandedSurface, err := NewTerrainSurface(t.Position, terrain.Vertices, terrain.XLength, terrain.ZLength, selfObstacles)
	if err != nil {
		return nil, fmt.Errorf("terrain %s: %w", terrain.Name, err)
	}
	expandedSurface.SetWalkableCandidate(true)

	expandedPolytope, err := NewPolytope(terrain.Name, []PolytopeSurface{expandedSurface})
	if err != nil {
		return nil, err
	}
	expandedPolytope.SetWalkableCandidate(true)
	expandedPolytope.SetObstacleCandidate(terrain.ObstacleCandidate)
	logger.L().Debug("terrain polytope built", zap.String("name", terrain.Name), zap.Int("selfObstacles", len(selfObstacles)))
	return expandedPolytope, nil
}

func (b *PolytopeBuilder) createExpandedPolytope(name string, object geometry.ConvexObject, agent *model.NavMeshAgent) (*Polytope, error) {
	switch o := object.(type) {
	case *geometry.OBBox:
		return b.createExpandedPolytopeForBox(name, o, agent)
	case *geometry.Capsule:
		return b.createExpandedPolytopeForCapsule(name, o, agent)
	case *geometry.Cone:
		return b.createExpandedPolytopeForCone(name, o, agent)
	case *geometry.ConvexHull3D:
		return b.createExpandedPolytopeForConvexHull(name, o, agent)
	case *geometry.Cylinder:
		return b.createExpandedPolytopeForCylinder(name, o, agent)
	case *geometry.Sphere:
		return b.createExpandedPolytopeForSphere(name, o, agent)
	default:
		return nil, &common.UnsupportedShapeError{ObjectName: name, Kind: object.Kind().String()}
	}
}

func (b *PolytopeBuilder) createExpandedPolytopeForBox(name string, box *geometry.OBBox, agent *model.NavMeshAgent) (*Polytope, error) {
	expandedSurfaces, err := b.createExpandedBoxSurfaces(box, agent)
	if err != nil {
		return nil, err
	}
	return NewPolytope(name, expandedSurfaces)
}

func (b *PolytopeBuilder) createExpandedPolytopeForCapsule(name string, capsule *geometry.Capsule, agent *model.NavMeshAgent) (*Polytope, error) {
	r := capsule.Radius
	boxHalfSizes := common.Vec3{r, r, r}
	boxHalfSizes[capsule.Orientation] += capsule.CylinderHeight / 2

	capsuleBox := geometry.NewOBBox(boxHalfSizes, capsule.Center, capsule.Rotation)
	polytope, err := b.createExpandedPolytopeForBox(name, capsuleBox, agent)
	if err != nil {
		return nil, err
	}
	polytope.SetWalkableCandidate(false)
	return polytope, nil
}

func (b *PolytopeBuilder) createExpandedPolytopeForCone(name string, cone *geometry.Cone, agent *model.NavMeshAgent) (*Polytope, error) {
	r := cone.Radius
	boxHalfSizes := common.Vec3{r, r, r}
	boxHalfSizes[cone.Orientation.Axis()] = cone.Height / 2

	coneBox := geometry.NewOBBox(boxHalfSizes, cone.Center, cone.Rotation)
	polytope, err := b.createExpandedPolytopeForBox(name, coneBox, agent)
	if err != nil {
		return nil, err
	}
	polytope.SetWalkableCandidate(false)
	return polytope, nil
}

func (b *PolytopeBuilder) createExpandedPolytopeForConvexHull(name string, convexHull *geometry.ConvexHull3D, agent *model.NavMeshAgent) (*Polytope, error) {
	expandedPlanes := make(map[int]geometry.Plane, len(convexHull.Triangles))
	for id := range convexHull.Triangles {
		plane, err := convexHull.TrianglePlane(id)
		if err != nil {
			return nil, err
		}
		expandedPlanes[id] = plane.Offset(agent.ComputeExpandDistance(plane.Normal))
	}

	expandedConvexHull, err := b.hullResizer.ResizeConvexHull(convexHull, expandedPlanes)
	if err != nil {
		return nil, err
	}

	expandedSurfaces := make([]PolytopeSurface, 0, len(expandedConvexHull.Triangles))
	for id := range expandedConvexHull.Triangles {
		points := expandedConvexHull.TrianglePoints(id)
		surface, err := NewPlaneSurface(points[:], agent)
		if err != nil {
			return nil, err
		}
		expandedSurfaces = append(expandedSurfaces, surface)
	}

	polytope, err := NewPolytope(name, expandedSurfaces)
	if err != nil {
		return nil, err
	}
	polytope.SetWalkableCandidate(false)
	return polytope, nil
}

func (b *PolytopeBuilder) createExpandedPolytopeForCylinder(name string, cylinder *geometry.Cylinder, agent *model.NavMeshAgent) (*Polytope, error) {
	r := cylinder.Radius
	boxHalfSizes := common.Vec3{r, r, r}
	boxHalfSizes[cylinder.Orientation] = cylinder.Height / 2

	cylinderBox := geometry.NewOBBox(boxHalfSizes, cylinder.Center, cylinder.Rotation)
	expandedSurfaces, err := b.createExpandedBoxSurfaces(cylinderBox, agent)
	if err != nil {
		return nil, err
	}
	for i, surface := range expandedSurfaces {
		// only the flat caps can be walked on
		surface.SetWalkableCandidate(geometry.Axis(i/2) == cylinder.Orientation)
	}
	return NewPolytope(name, expandedSurfaces)
}

func (b *PolytopeBuilder) createExpandedPolytopeForSphere(name string, sphere *geometry.Sphere, agent *model.NavMeshAgent) (*Polytope, error) {
	polytope, err := b.createExpandedPolytopeForBox(name, geometry.NewOBBoxFromSphere(sphere), agent)
	if err != nil {
		return nil, err
	}
	polytope.SetWalkableCandidate(false)
	return polytope, nil
}

// createExpandedBoxSurfaces returns the 6 expanded faces in the order right,
// left, top, bottom, front, back.
func (b *PolytopeBuilder) createExpandedBoxSurfaces(box *geometry.OBBox, agent *model.NavMeshAgent) ([]PolytopeSurface, error) {
	expandedPoints, err := createExpandedBoxPoints(box, agent)
	if err != nil {
		return nil, err
	}

	expandedSurfaces := make([]PolytopeSurface, 0, len(pointIndexToPlanes))
	for _, pointIndex := range pointIndexToPlanes {
		surface, err := NewPlaneSurface([]common.Vec3{
			expandedPoints[pointIndex[0]],
			expandedPoints[pointIndex[1]],
			expandedPoints[pointIndex[2]],
			expandedPoints[pointIndex[3]],
		}, agent)
		if err != nil {
			return nil, err
		}
		expandedSurfaces = append(expandedSurfaces, surface)
	}
	return expandedSurfaces, nil
}

// createExpandedBoxPoints returns the expanded corners in the order NTR, FTR,
// NBR, FBR, NTL, FTL, NBL, FBL.
func createExpandedBoxPoints(box *geometry.OBBox, agent *model.NavMeshAgent) ([8]common.Vec3, error) {
	var expandedPoints [8]common.Vec3
	expandedPlanes, err := createExpandedBoxPlanes(box.Points(), agent)
	if err != nil {
		return expandedPoints, err
	}

	for i, planeIndex := range planeIndexToPoints {
		point, err := geometry.IntersectPlanes(expandedPlanes[planeIndex[0]], expandedPlanes[planeIndex[1]], expandedPlanes[planeIndex[2]])
		if err != nil {
			return expandedPoints, err
		}
		expandedPoints[i] = point
	}
	return expandedPoints, nil
}

// createExpandedBoxPlanes returns the expanded planes in the order right,
// left, top, bottom, front, back.
func createExpandedBoxPlanes(sortedPoints [8]common.Vec3, agent *model.NavMeshAgent) ([6]geometry.Plane, error) {
	var expandedPlanes [6]geometry.Plane
	for i, pointIndex := range pointIndexToPlanes {
		plane, err := createExpandedPlane(sortedPoints[pointIndex[0]], sortedPoints[pointIndex[1]], sortedPoints[pointIndex[2]], agent)
		if err != nil {
			return expandedPlanes, err
		}
		expandedPlanes[i] = plane
	}
	return expandedPlanes, nil
}

func createExpandedPlane(p1, p2, p3 common.Vec3, agent *model.NavMeshAgent) (geometry.Plane, error) {
	plane, err := geometry.NewPlaneFromPoints(p1, p2, p3)
	if err != nil {
		return plane, err
	}
	return plane.Offset(agent.ComputeExpandDistance(plane.Normal)), nil
}
