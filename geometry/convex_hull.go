package geometry

import (
	"github.com/gorustyt/gonavpath/common"
)

// IndexedTriangle references three points of a ConvexHull3D in counter-clockwise
// order seen from outside the hull.
type IndexedTriangle struct {
	Indices [3]int
}

// ConvexHull3D is a convex mesh in world space. A triangle is identified by
// its position in Triangles.
type ConvexHull3D struct {
	Points    []common.Vec3
	Triangles []IndexedTriangle
}

func (h *ConvexHull3D) Kind() ShapeKind { return ShapeConvexHull }
func (h *ConvexHull3D) convexObject()   {}

func (h *ConvexHull3D) TrianglePoints(triangleID int) [3]common.Vec3 {
	t := h.Triangles[triangleID]
	return [3]common.Vec3{h.Points[t.Indices[0]], h.Points[t.Indices[1]], h.Points[t.Indices[2]]}
}

// TrianglePlane is the supporting plane of a triangle, normal pointing outside.
func (h *ConvexHull3D) TrianglePlane(triangleID int) (Plane, error) {
	p := h.TrianglePoints(triangleID)
	return NewPlaneFromPoints(p[0], p[1], p[2])
}

func (h *ConvexHull3D) validate() error {
	if len(h.Points) < 4 || len(h.Triangles) < 4 {
		return common.NewDegenerateGeometryError("convex hull needs at least 4 points and 4 triangles, got %d and %d", len(h.Points), len(h.Triangles))
	}
	for id, t := range h.Triangles {
		for _, index := range t.Indices {
			if index < 0 || index >= len(h.Points) {
				return common.NewDegenerateGeometryError("triangle %d references unknown point %d", id, index)
			}
		}
	}
	return nil
}

// ResizeConvexHullService rebuilds a convex hull after its face planes have
// been moved. Each point becomes the intersection of three non parallel
// planes among the faces it belongs to; the triangle topology is unchanged.
type ResizeConvexHullService struct{}

func (ResizeConvexHullService) ResizeConvexHull(hull *ConvexHull3D, newPlanes map[int]Plane) (*ConvexHull3D, error) {
	if err := hull.validate(); err != nil {
		return nil, err
	}

	pointPlanes := make([][]Plane, len(hull.Points))
	for id, t := range hull.Triangles {
		plane, ok := newPlanes[id]
		if !ok {
			return nil, common.NewDegenerateGeometryError("no resized plane for triangle %d", id)
		}
		for _, index := range t.Indices {
			pointPlanes[index] = append(pointPlanes[index], plane)
		}
	}

	newPoints := make([]common.Vec3, len(hull.Points))
	for i, planes := range pointPlanes {
		point, err := intersectAnyThreePlanes(planes)
		if err != nil {
			return nil, common.NewDegenerateGeometryError("cannot resize hull point %d: %v", i, err)
		}
		newPoints[i] = point
	}

	triangles := make([]IndexedTriangle, len(hull.Triangles))
	copy(triangles, hull.Triangles)
	return &ConvexHull3D{Points: newPoints, Triangles: triangles}, nil
}

func intersectAnyThreePlanes(planes []Plane) (common.Vec3, error) {
	var lastErr error = common.NewDegenerateGeometryError("point shared by %d planes only", len(planes))
	for i := 0; i < len(planes); i++ {
		for j := i + 1; j < len(planes); j++ {
			for k := j + 1; k < len(planes); k++ {
				point, err := IntersectPlanes(planes[i], planes[j], planes[k])
				if err == nil {
					return point, nil
				}
				lastErr = err
			}
		}
	}
	return common.Vec3{}, lastErr
}
