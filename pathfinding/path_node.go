package pathfinding

import (
	"github.com/gorustyt/gonavpath/navmesh/model"
)

// PathNode is a walkable polygon crossed by a path.
type PathNode struct {
	PolygonName string
	// Topography is nil when the polygon is planar.
	Topography model.NavTopography
}

func NewPathNode(polygonName string, topography model.NavTopography) *PathNode {
	return &PathNode{PolygonName: polygonName, Topography: topography}
}
