package geometry

import (
	"github.com/gorustyt/gonavpath/common"
)

// Rectangle is an axis aligned rectangle in the XZ plane (X, Z stored as X, Y).
type Rectangle struct {
	Min, Max common.Vec2
}

func NewRectangleFromPoints(points []common.Vec2) Rectangle {
	common.AssertTrue(len(points) > 0, "rectangle needs at least one point")
	r := Rectangle{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.Min = common.Vec2{min(r.Min[0], p[0]), min(r.Min[1], p[1])}
		r.Max = common.Vec2{max(r.Max[0], p[0]), max(r.Max[1], p[1])}
	}
	return r
}

func (r Rectangle) Merge(o Rectangle) Rectangle {
	return Rectangle{
		Min: common.Vec2{min(r.Min[0], o.Min[0]), min(r.Min[1], o.Min[1])},
		Max: common.Vec2{max(r.Max[0], o.Max[0]), max(r.Max[1], o.Max[1])},
	}
}

// AABBox is an axis aligned bounding box.
type AABBox struct {
	Min, Max common.Vec3
}

func NewAABBoxFromPoints(points []common.Vec3) AABBox {
	common.AssertTrue(len(points) > 0, "box needs at least one point")
	b := AABBox{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		for i := 0; i < 3; i++ {
			b.Min[i] = min(b.Min[i], p[i])
			b.Max[i] = max(b.Max[i], p[i])
		}
	}
	return b
}

func (b AABBox) Merge(o AABBox) AABBox {
	res := b
	for i := 0; i < 3; i++ {
		res.Min[i] = min(res.Min[i], o.Min[i])
		res.Max[i] = max(res.Max[i], o.Max[i])
	}
	return res
}
