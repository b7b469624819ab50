package link

import (
	"github.com/gorustyt/gonavpath/common"
	"github.com/gorustyt/gonavpath/geometry"
)

const epsilon = 0.0001

var up = common.Vec3{0, 1, 0}

// EdgeLinkDetection decides whether an agent standing on the edge of a
// walkable polygon can jump to the edge of another one. Walkable polygons
// are counter-clockwise seen from above, so the outside of an edge is on
// the right of its direction.
//
// Two edges are linked when:
//   - their lines are parallel and no farther apart than the jump length,
//   - the end edge projected on the start edge overlaps it,
//   - every jump from the overlap to the end edge fits in the jump length,
//   - the jumps go outward of the start edge.
type EdgeLinkDetection struct {
	jumpMaxLength       float32
	jumpMaxSquareLength float32
}

func NewEdgeLinkDetection(jumpMaxLength float32) *EdgeLinkDetection {
	return &EdgeLinkDetection{
		jumpMaxLength:       jumpMaxLength,
		jumpMaxSquareLength: jumpMaxLength * jumpMaxLength,
	}
}

func (d *EdgeLinkDetection) JumpMaxLength() float32 {
	return d.jumpMaxLength
}

// DetectLink checks whether the agent can jump from startEdge to endEdge.
// A zero length edge is a PreconditionError.
func (d *EdgeLinkDetection) DetectLink(startEdge, endEdge geometry.LineSegment3D) (EdgeLinkResult, error) {
	if pointsAreEquals(startEdge.A, startEdge.B) || pointsAreEquals(endEdge.A, endEdge.B) {
		return noEdgeLink(), common.NewPreconditionError("zero length edge in link detection: %v, %v", startEdge, endEdge)
	}

	if !d.isCollinearLines(startEdge, endEdge) {
		return noEdgeLink(), nil
	}
	startRange, endRange, ok := isTouchingCollinearEdges(startEdge, endEdge)
	if !ok {
		return noEdgeLink(), nil
	}

	jumpStartSegment := startEdge.SubSegment(startRange, endRange)
	jumpEndSegment := geometry.NewLineSegment3D(endEdge.ClosestPoint(jumpStartSegment.A), endEdge.ClosestPoint(jumpStartSegment.B))
	if !d.canJumpThatFar(jumpStartSegment.A, jumpEndSegment.A) || !d.canJumpThatFar(jumpStartSegment.B, jumpEndSegment.B) {
		return noEdgeLink(), nil
	}
	if !isProperJumpDirection(startEdge, jumpStartSegment.A, jumpEndSegment.A) || !isProperJumpDirection(startEdge, jumpStartSegment.B, jumpEndSegment.B) {
		return noEdgeLink(), nil
	}
	return newEdgeLink([2]float32{startRange, endRange}, jumpStartSegment, jumpEndSegment), nil
}

func pointsAreEquals(p1, p2 common.Vec3) bool {
	return common.VdistSqr(p1, p2) <= epsilon*epsilon
}

// isCollinearLines accepts parallel lines whose distance stays within the
// jump length: a jump can bridge that gap.
func (d *EdgeLinkDetection) isCollinearLines(startEdge, endEdge geometry.LineSegment3D) bool {
	startDirection := startEdge.Vector().Normalize()
	endDirection := endEdge.Vector().Normalize()
	if startDirection.Cross(endDirection).Len() > epsilon {
		return false
	}

	tolerance := max(epsilon, d.jumpMaxLength)
	return startEdge.Line().SquareDistance(endEdge.A) <= tolerance*tolerance+epsilon
}

// isTouchingCollinearEdges returns the part of the start edge facing the end
// edge, as start edge fractions. Edges touching on one point are accepted.
func isTouchingCollinearEdges(startEdge, endEdge geometry.LineSegment3D) (float32, float32, bool) {
	t1 := startEdge.ProjectedParameter(endEdge.A)
	t2 := startEdge.ProjectedParameter(endEdge.B)
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	tolerance := epsilon / startEdge.Length()
	if t2 < -tolerance || t1 > 1+tolerance {
		return 0, 0, false
	}
	return common.Clamp(t1, 0, 1), common.Clamp(t2, 0, 1), true
}

func (d *EdgeLinkDetection) canJumpThatFar(jumpStartPoint, jumpEndPoint common.Vec3) bool {
	return common.VdistSqr(jumpStartPoint, jumpEndPoint) <= d.jumpMaxSquareLength
}

// isProperJumpDirection rejects jumps going toward the inside of the start
// edge polygon.
func isProperJumpDirection(startEdge geometry.LineSegment3D, jumpStartPoint, jumpEndPoint common.Vec3) bool {
	outward := startEdge.Vector().Cross(up)
	return jumpEndPoint.Sub(jumpStartPoint).Dot(outward) >= -epsilon
}
