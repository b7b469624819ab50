package model

import (
	"github.com/gorustyt/gonavpath/common"
)

// CSGPolygon is a named 2D polygon (XZ plane) with clockwise points, as
// consumed by the triangulation stage.
type CSGPolygon struct {
	Name     string
	CwPoints []common.Vec2
}

// NewCSGPolygon orders the points clockwise.
func NewCSGPolygon(name string, points []common.Vec2) CSGPolygon {
	if !common.IsCwPolygon(points) {
		points = common.ReversePolygon(points)
	}
	return CSGPolygon{Name: name, CwPoints: points}
}
