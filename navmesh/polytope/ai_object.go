package polytope

import (
	"github.com/gorustyt/gonavpath/common"
	"github.com/gorustyt/gonavpath/geometry"
)

// AIShape is one collision shape of an AIObject, optionally placed relative
// to the object.
type AIShape struct {
	Shape          geometry.ConvexShape
	LocalTransform *geometry.Transform
}

// AIObject is a scene object as seen by the navigation mesh generator.
type AIObject struct {
	Name              string
	Shapes            []AIShape
	Transform         geometry.Transform
	ObstacleCandidate bool
}

func NewAIObject(name string, transform geometry.Transform, obstacleCandidate bool, shapes ...AIShape) *AIObject {
	return &AIObject{Name: name, Shapes: shapes, Transform: transform, ObstacleCandidate: obstacleCandidate}
}

// AITerrain is a heightfield terrain. Vertices are local to the transform
// position; the transform must not rotate nor scale.
type AITerrain struct {
	Name              string
	Vertices          []common.Vec3
	XLength           int
	ZLength           int
	Transform         geometry.Transform
	ObstacleCandidate bool
}
