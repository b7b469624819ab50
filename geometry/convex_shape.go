package geometry

import (
	"github.com/gorustyt/gonavpath/common"
)

// ConvexShape is a collision shape in its local frame.
type ConvexShape interface {
	ShapeKind() ShapeKind
	ToConvexObject(transform Transform) ConvexObject
}

type BoxShape struct {
	HalfSizes common.Vec3
}

func (s *BoxShape) ShapeKind() ShapeKind { return ShapeBox }

func (s *BoxShape) ToConvexObject(transform Transform) ConvexObject {
	return NewOBBox(s.HalfSizes.Mul(transform.Scale), transform.Position, transform.Orientation)
}

type CapsuleShape struct {
	Radius         float32
	CylinderHeight float32
	Orientation    Axis
}

func (s *CapsuleShape) ShapeKind() ShapeKind { return ShapeCapsule }

func (s *CapsuleShape) ToConvexObject(transform Transform) ConvexObject {
	return &Capsule{
		Radius:         s.Radius * transform.Scale,
		CylinderHeight: s.CylinderHeight * transform.Scale,
		Orientation:    s.Orientation,
		Center:         transform.Position,
		Rotation:       transform.Orientation,
	}
}

// ComputeHeight is the full capsule height including both caps.
func (s *CapsuleShape) ComputeHeight() float32 {
	return s.CylinderHeight + 2*s.Radius
}

type ConeShape struct {
	Radius      float32
	Height      float32
	Orientation ConeOrientation
}

func (s *ConeShape) ShapeKind() ShapeKind { return ShapeCone }

func (s *ConeShape) ToConvexObject(transform Transform) ConvexObject {
	return &Cone{
		Radius:      s.Radius * transform.Scale,
		Height:      s.Height * transform.Scale,
		Orientation: s.Orientation,
		Center:      transform.Position,
		Rotation:    transform.Orientation,
	}
}

type CylinderShape struct {
	Radius      float32
	Height      float32
	Orientation Axis
}

func (s *CylinderShape) ShapeKind() ShapeKind { return ShapeCylinder }

func (s *CylinderShape) ToConvexObject(transform Transform) ConvexObject {
	return &Cylinder{
		Radius:      s.Radius * transform.Scale,
		Height:      s.Height * transform.Scale,
		Orientation: s.Orientation,
		Center:      transform.Position,
		Rotation:    transform.Orientation,
	}
}

type SphereShape struct {
	Radius float32
}

func (s *SphereShape) ShapeKind() ShapeKind { return ShapeSphere }

func (s *SphereShape) ToConvexObject(transform Transform) ConvexObject {
	return &Sphere{Radius: s.Radius * transform.Scale, Center: transform.Position}
}

// ConvexHullShape is a convex mesh given by its points and counter-clockwise
// (seen from outside) indexed triangles.
type ConvexHullShape struct {
	Points    []common.Vec3
	Triangles []IndexedTriangle
}

func (s *ConvexHullShape) ShapeKind() ShapeKind { return ShapeConvexHull }

func (s *ConvexHullShape) ToConvexObject(transform Transform) ConvexObject {
	points := make([]common.Vec3, len(s.Points))
	for i, p := range s.Points {
		points[i] = transform.TransformPoint(p)
	}
	triangles := make([]IndexedTriangle, len(s.Triangles))
	copy(triangles, s.Triangles)
	return &ConvexHull3D{Points: points, Triangles: triangles}
}

type TriangleShape struct {
	Points [3]common.Vec3
}

func (s *TriangleShape) ShapeKind() ShapeKind { return ShapeTriangle }

func (s *TriangleShape) ToConvexObject(transform Transform) ConvexObject {
	t := &Triangle3D{}
	for i, p := range s.Points {
		t.Points[i] = transform.TransformPoint(p)
	}
	return t
}
