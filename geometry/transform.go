package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorustyt/gonavpath/common"
)

// Transform places a shape in the world: scale, then rotation, then translation.
type Transform struct {
	Position    common.Vec3
	Orientation common.Quat
	Scale       float32
}

func IdentityTransform() Transform {
	return Transform{Orientation: mgl32.QuatIdent(), Scale: 1}
}

func NewTransform(position common.Vec3, orientation common.Quat, scale float32) Transform {
	return Transform{Position: position, Orientation: orientation.Normalize(), Scale: scale}
}

// Mul composes t with a child transform expressed in t's local space.
func (t Transform) Mul(local Transform) Transform {
	return Transform{
		Position:    t.Position.Add(t.Orientation.Rotate(local.Position.Mul(t.Scale))),
		Orientation: t.Orientation.Mul(local.Orientation).Normalize(),
		Scale:       t.Scale * local.Scale,
	}
}

func (t Transform) TransformPoint(p common.Vec3) common.Vec3 {
	return t.Position.Add(t.Orientation.Rotate(p.Mul(t.Scale)))
}
