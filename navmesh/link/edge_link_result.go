package link

import (
	"github.com/gorustyt/gonavpath/geometry"
)

// EdgeLinkResult is the outcome of EdgeLinkDetection.DetectLink. When linked,
// the jump leaves the start edge on JumpStartSegment and lands on the end
// edge on JumpEndSegment.
type EdgeLinkResult struct {
	linked           bool
	startEdgeRange   [2]float32
	jumpStartSegment geometry.LineSegment3D
	jumpEndSegment   geometry.LineSegment3D
}

func noEdgeLink() EdgeLinkResult {
	return EdgeLinkResult{}
}

func newEdgeLink(startEdgeRange [2]float32, jumpStartSegment, jumpEndSegment geometry.LineSegment3D) EdgeLinkResult {
	return EdgeLinkResult{
		linked:           true,
		startEdgeRange:   startEdgeRange,
		jumpStartSegment: jumpStartSegment,
		jumpEndSegment:   jumpEndSegment,
	}
}

func (r EdgeLinkResult) Linked() bool {
	return r.linked
}

// StartEdgeRange is the linked part of the start edge as fractions of its
// length: 0 is the start edge A point, 1 its B point.
func (r EdgeLinkResult) StartEdgeRange() (float32, float32) {
	return r.startEdgeRange[0], r.startEdgeRange[1]
}

func (r EdgeLinkResult) JumpStartSegment() geometry.LineSegment3D {
	return r.jumpStartSegment
}

func (r EdgeLinkResult) JumpEndSegment() geometry.LineSegment3D {
	return r.jumpEndSegment
}
