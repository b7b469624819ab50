package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorustyt/gonavpath/common"
)

type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeCapsule
	ShapeCone
	ShapeCylinder
	ShapeSphere
	ShapeConvexHull
	ShapeTriangle
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeBox:
		return "box"
	case ShapeCapsule:
		return "capsule"
	case ShapeCone:
		return "cone"
	case ShapeCylinder:
		return "cylinder"
	case ShapeSphere:
		return "sphere"
	case ShapeConvexHull:
		return "convex hull"
	case ShapeTriangle:
		return "triangle"
	}
	return "unknown"
}

// Axis indexes the X, Y and Z components of a vector.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// ConeOrientation is the direction the cone apex points to. Dividing by two
// gives the Axis of the cone.
type ConeOrientation int

const (
	ConeXPositive ConeOrientation = iota
	ConeXNegative
	ConeYPositive
	ConeYNegative
	ConeZPositive
	ConeZNegative
)

func (o ConeOrientation) Axis() Axis {
	return Axis(o / 2)
}

// ConvexObject is a convex primitive placed in world space. The set of
// implementations is closed to this package.
type ConvexObject interface {
	Kind() ShapeKind
	convexObject()
}

// OBBox is an oriented box.
type OBBox struct {
	HalfSizes   common.Vec3
	Center      common.Vec3
	Orientation common.Quat
}

func NewOBBox(halfSizes, center common.Vec3, orientation common.Quat) *OBBox {
	return &OBBox{HalfSizes: halfSizes, Center: center, Orientation: orientation}
}

// NewOBBoxFromSphere builds the axis aligned cube enclosing the sphere.
func NewOBBoxFromSphere(sphere *Sphere) *OBBox {
	r := sphere.Radius
	return &OBBox{HalfSizes: common.Vec3{r, r, r}, Center: sphere.Center, Orientation: mgl32.QuatIdent()}
}

func (b *OBBox) Axis(i Axis) common.Vec3 {
	var unit common.Vec3
	unit[i] = 1
	return b.Orientation.Rotate(unit)
}

// Points returns the 8 corners in the order NTR, FTR, NBR, FBR, NTL, FTL, NBL, FBL
// where right is +X, top is +Y and near is +Z of the box frame.
func (b *OBBox) Points() [8]common.Vec3 {
	axisX := b.Axis(AxisX).Mul(b.HalfSizes[0])
	axisY := b.Axis(AxisY).Mul(b.HalfSizes[1])
	axisZ := b.Axis(AxisZ).Mul(b.HalfSizes[2])
	var points [8]common.Vec3
	for i := range points {
		p := b.Center
		if i < 4 {
			p = p.Add(axisX)
		} else {
			p = p.Sub(axisX)
		}
		if i&2 == 0 {
			p = p.Add(axisY)
		} else {
			p = p.Sub(axisY)
		}
		if i&1 == 0 {
			p = p.Add(axisZ)
		} else {
			p = p.Sub(axisZ)
		}
		points[i] = p
	}
	return points
}

func (b *OBBox) Kind() ShapeKind { return ShapeBox }
func (b *OBBox) convexObject()   {}

// Capsule is a cylinder of CylinderHeight capped with two half spheres.
type Capsule struct {
	Radius         float32
	CylinderHeight float32
	Orientation    Axis
	Center         common.Vec3
	Rotation       common.Quat
}

func (c *Capsule) Kind() ShapeKind { return ShapeCapsule }
func (c *Capsule) convexObject()   {}

type Cone struct {
	Radius      float32
	Height      float32
	Orientation ConeOrientation
	Center      common.Vec3
	Rotation    common.Quat
}

func (c *Cone) Kind() ShapeKind { return ShapeCone }
func (c *Cone) convexObject()   {}

type Cylinder struct {
	Radius      float32
	Height      float32
	Orientation Axis
	Center      common.Vec3
	Rotation    common.Quat
}

func (c *Cylinder) Kind() ShapeKind { return ShapeCylinder }
func (c *Cylinder) convexObject()   {}

type Sphere struct {
	Radius float32
	Center common.Vec3
}

func (s *Sphere) Kind() ShapeKind { return ShapeSphere }
func (s *Sphere) convexObject()   {}

type Triangle3D struct {
	Points [3]common.Vec3
}

func (t *Triangle3D) Kind() ShapeKind { return ShapeTriangle }
func (t *Triangle3D) convexObject()   {}
