package model

// NavMeshConfig is the read-only configuration of a navigation mesh generation pass.
type NavMeshConfig struct {
	Agent *NavMeshAgent
}

func NewNavMeshConfig(agent *NavMeshAgent) *NavMeshConfig {
	return &NavMeshConfig{Agent: agent}
}

// MaxSlope is the agent max slope, used by the terrain self obstacles.
func (c *NavMeshConfig) MaxSlope() float32 {
	return c.Agent.MaxSlope()
}
