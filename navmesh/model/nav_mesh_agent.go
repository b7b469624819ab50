package model

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorustyt/gonavpath/common"
)

const slopeTolerance = 1e-5

// NavMeshAgent describes the capsule moving on the navigation mesh.
type NavMeshAgent struct {
	height   float32
	radius   float32
	maxSlope float32 // radians
}

func NewNavMeshAgent(height, radius, maxSlope float32) (*NavMeshAgent, error) {
	if !(height > 0) || !(radius > 0) {
		return nil, common.NewPreconditionError("agent height (%v) and radius (%v) must be positive", height, radius)
	}
	agent := &NavMeshAgent{height: height, radius: radius}
	if err := agent.SetMaxSlope(maxSlope); err != nil {
		return nil, err
	}
	return agent, nil
}

func (a *NavMeshAgent) Height() float32 {
	return a.height
}

func (a *NavMeshAgent) Radius() float32 {
	return a.radius
}

func (a *NavMeshAgent) MaxSlope() float32 {
	return a.maxSlope
}

func (a *NavMeshAgent) SetMaxSlope(maxSlope float32) error {
	if !(maxSlope >= 0) || maxSlope >= math.Pi/2 {
		return common.NewPreconditionError("max slope %v must be in [0, PI/2)", maxSlope)
	}
	a.maxSlope = maxSlope
	return nil
}

// ComputeExpandDistance returns how far a plane of the given normal is pushed
// outward for the agent. It is the support distance radius*(|n_xz|+|n_y|) of a
// cylinder of the agent radius and half height, a conservative bound of the
// agent shape rather than an exact one: never less than the radius, largest
// (radius*sqrt(2)) on 45 degree planes and back to the radius on horizontal
// and vertical planes.
func (a *NavMeshAgent) ComputeExpandDistance(normal common.Vec3) float32 {
	n := normal.Normalize()
	horizontal := common.Sqrt(n[0]*n[0] + n[2]*n[2])
	return a.radius * (horizontal + mgl32.Abs(n[1]))
}

// IsWalkableSlope reports whether a surface of the given normal is within
// the agent max slope of the up direction.
func (a *NavMeshAgent) IsWalkableSlope(normal common.Vec3) bool {
	n := normal.Normalize()
	return n[1] >= float32(math.Cos(float64(a.maxSlope)))-slopeTolerance
}
