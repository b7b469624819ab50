package pathfinding

import (
	"github.com/gorustyt/gonavpath/common"
	"github.com/gorustyt/gonavpath/geometry"
	"github.com/gorustyt/gonavpath/navmesh/model"
)

// PathPortal is a segment crossed between two polygons of a path. Portal.A
// is on the left of the agent crossing it, Portal.B on its right. Start and
// end portals are degenerate (A == B).
type PathPortal struct {
	Portal           geometry.LineSegment3D
	PreviousPathNode *PathNode
}

func NewPathPortal(portal geometry.LineSegment3D, previousPathNode *PathNode) *PathPortal {
	return &PathPortal{Portal: portal, PreviousPathNode: previousPathNode}
}

// NewPointPortal builds a degenerate portal on point, used for the path ends.
func NewPointPortal(point common.Vec3, previousPathNode *PathNode) *PathPortal {
	return &PathPortal{Portal: geometry.NewLineSegment3D(point, point), PreviousPathNode: previousPathNode}
}

// topography of the polygon crossed before reaching the portal, nil when planar.
func (p *PathPortal) topography() model.NavTopography {
	if p.PreviousPathNode == nil {
		return nil
	}
	return p.PreviousPathNode.Topography
}
