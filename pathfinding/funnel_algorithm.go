package pathfinding

import (
	"github.com/gorustyt/gonavpath/common"
	"github.com/gorustyt/gonavpath/common/logger"
	"go.uber.org/zap"
)

type funnelSide int

const (
	sideLeft funnelSide = iota
	sideRight
)

func (s funnelSide) other() funnelSide {
	if s == sideLeft {
		return sideRight
	}
	return sideLeft
}

// FunnelAlgorithm computes the shortest path through an ordered list of
// portals (simple stupid funnel). An instance computes a single path and must
// not be shared between goroutines.
type FunnelAlgorithm struct {
	portals []*PathPortal
	used    bool

	apex        common.Vec3
	sideIndices [2]int // last accepted portal index, per funnel side
	path        []common.Vec3
}

// NewFunnelAlgorithm checks the portals to cross: at least a start and an end
// portal, both degenerate.
func NewFunnelAlgorithm(portals []*PathPortal) (*FunnelAlgorithm, error) {
	if len(portals) < 2 {
		return nil, common.NewPreconditionError("funnel needs at least 2 portals, got %d", len(portals))
	}
	for i, portal := range portals {
		if portal == nil {
			return nil, common.NewPreconditionError("funnel portal %d is nil", i)
		}
	}
	if !portals[0].Portal.IsDegenerate() {
		return nil, common.NewPreconditionError("funnel start portal %v is not degenerate", portals[0].Portal)
	}
	if last := portals[len(portals)-1]; !last.Portal.IsDegenerate() {
		return nil, common.NewPreconditionError("funnel end portal %v is not degenerate", last.Portal)
	}
	return &FunnelAlgorithm{portals: portals}, nil
}

// FindPath returns the path points from the start portal to the end portal.
// A second call returns ErrFunnelAlreadyUsed.
func (f *FunnelAlgorithm) FindPath() ([]common.Vec3, error) {
	if f.used {
		return nil, common.ErrFunnelAlreadyUsed
	}
	f.used = true

	startPoint := f.portals[0].Portal.A
	endPoint := f.portals[len(f.portals)-1].Portal.A

	f.path = make([]common.Vec3, 0, len(f.portals)/2+1)
	f.addPathPoint(startPoint, f.portals[0])

	f.apex = startPoint
	f.sideIndices = [2]int{1, 1}

	for currentIndex := 2; currentIndex < len(f.portals); {
		currentIndex = f.step(currentIndex)
	}

	f.addPathPoint(endPoint, f.portals[len(f.portals)-1])

	logger.L().Debug("funnel path found", zap.Int("portals", len(f.portals)), zap.Int("points", len(f.path)))
	return f.path, nil
}

// step updates the left then the right side of the funnel with the portal
// currentIndex and returns the next portal index to process.
func (f *FunnelAlgorithm) step(currentIndex int) int {
	for _, side := range [...]funnelSide{sideLeft, sideRight} {
		if resumeIndex, ok := f.updateFunnelSide(side, currentIndex); ok {
			return resumeIndex
		}
	}
	return currentIndex + 1
}

// updateFunnelSide returns true with the index to resume from when the side
// crossed the other one and a new apex was added to the path.
func (f *FunnelAlgorithm) updateFunnelSide(updateSide funnelSide, currentIndex int) (int, bool) {
	otherSide := updateSide.other()
	sideIndex := f.sideIndices[updateSide]
	otherSideIndex := f.sideIndices[otherSide]

	newPoint := f.portalPoint(updateSide, currentIndex)
	if currentIndex <= sideIndex || newPoint == f.portalPoint(updateSide, sideIndex) {
		return 0, false
	}

	currentSide := f.portalPoint(updateSide, sideIndex).Sub(f.apex)
	newSide := newPoint.Sub(f.apex)
	if !f.isInside(updateSide, common.Vperp2D(currentSide, newSide)) {
		// funnel enlarged: keep the side for a later portal
		return 0, false
	}

	currentOtherSide := f.portalPoint(otherSide, otherSideIndex).Sub(f.apex)
	if f.isInside(otherSide, common.Vperp2D(currentOtherSide, newSide)) {
		// funnel narrowed
		f.sideIndices[updateSide] = currentIndex
		return 0, false
	}

	// crossed the other side: its point becomes the new apex
	f.apex = f.portalPoint(otherSide, otherSideIndex)
	f.addPathPoint(f.apex, f.portals[otherSideIndex])

	f.sideIndices[otherSide] = otherSideIndex + 1
	f.sideIndices[updateSide] = otherSideIndex + 1
	return otherSideIndex + 1, true
}

// isInside reports whether a point lies on the inner side of a funnel side,
// crossProductY being the horizontal cross product from the side to the
// point, both seen from the apex. Collinear points are inside.
func (f *FunnelAlgorithm) isInside(side funnelSide, crossProductY float32) bool {
	if side == sideLeft {
		return crossProductY <= 0
	}
	return crossProductY >= 0
}

func (f *FunnelAlgorithm) portalPoint(side funnelSide, index int) common.Vec3 {
	if side == sideLeft {
		return f.portals[index].Portal.A
	}
	return f.portals[index].Portal.B
}

// addPathPoint appends point, following the ground of the polygon crossed
// before pathPortal when that polygon is not planar.
func (f *FunnelAlgorithm) addPathPoint(point common.Vec3, pathPortal *PathPortal) {
	topography := pathPortal.topography()
	if len(f.path) == 0 || topography == nil {
		f.path = append(f.path, point)
		return
	}

	startPoint := f.path[len(f.path)-1]
	f.path = append(f.path[:len(f.path)-1], topography.FollowTopography(startPoint, point)...)
}
