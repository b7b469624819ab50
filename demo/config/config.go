package config

import (
	"fmt"
	"os"

	"github.com/gorustyt/gonavpath/common/logger"
	"github.com/hjson/hjson-go/v4"
)

// Config is a scene file: the agent, the objects and terrains to expand and
// optional link and path queries.
type Config struct {
	Logger   LoggerConfig     `json:"logger"`
	Agent    AgentConfig      `json:"agent"`
	Objects  []*ObjectConfig  `json:"objects"`
	Terrains []*TerrainConfig `json:"terrains"`
	Link     *LinkConfig      `json:"link"`
	Path     *PathConfig      `json:"path"`
}

type LoggerConfig struct {
	Level      string `json:"level"`
	EnableJson bool   `json:"enable_json"`
	EnableFile bool   `json:"enable_file"`
	FilePath   string `json:"file_path"`
	DisableStd bool   `json:"disable_std"`
}

type AgentConfig struct {
	Height         float32 `json:"height"`
	Radius         float32 `json:"radius"`
	MaxSlopeDegree float32 `json:"max_slope_degree"`
}

type TransformConfig struct {
	Position    [3]float32 `json:"position"`
	Axis        [3]float32 `json:"axis"`         // rotation axis
	AngleDegree float32    `json:"angle_degree"` // rotation angle around Axis
	Scale       float32    `json:"scale"`        // 0 means 1
}

type ShapeConfig struct {
	Kind           string           `json:"kind"`
	HalfSizes      [3]float32       `json:"half_sizes"`
	Radius         float32          `json:"radius"`
	Height         float32          `json:"height"`
	CylinderHeight float32          `json:"cylinder_height"`
	Orientation    string           `json:"orientation"` // x, y, z or +x, -x, ... for cones
	Points         [][3]float32     `json:"points"`
	Triangles      [][3]int         `json:"triangles"`
	Local          *TransformConfig `json:"local"`
}

type ObjectConfig struct {
	Name              string          `json:"name"`
	ObstacleCandidate *bool           `json:"obstacle_candidate"` // default true
	Transform         TransformConfig `json:"transform"`
	Shapes            []*ShapeConfig  `json:"shapes"`
}

// TerrainConfig is a regular heightfield: Heights[z][x] is the height of the
// vertex at (x*XSpacing, z*ZSpacing) from Position.
type TerrainConfig struct {
	Name              string      `json:"name"`
	Position          [3]float32  `json:"position"`
	XSpacing          float32     `json:"x_spacing"`
	ZSpacing          float32     `json:"z_spacing"`
	Heights           [][]float32 `json:"heights"`
	ObstacleCandidate bool        `json:"obstacle_candidate"`
}

type EdgePairConfig struct {
	Start [2][3]float32 `json:"start"`
	End   [2][3]float32 `json:"end"`
}

type LinkConfig struct {
	JumpMaxLength float32           `json:"jump_max_length"`
	Edges         []*EdgePairConfig `json:"edges"`
}

// PortalConfig is a portal of a path query. B omitted means a degenerate
// portal on A. Polygon names the polygon crossed before the portal; a
// terrain name makes the path follow that terrain.
type PortalConfig struct {
	A       [3]float32  `json:"a"`
	B       *[3]float32 `json:"b"`
	Polygon string      `json:"polygon"`
}

type PathConfig struct {
	Portals []*PortalConfig `json:"portals"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*Config, error) {
	c := &Config{}
	if err := hjson.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	for i, object := range c.Objects {
		if object.Name == "" {
			return nil, fmt.Errorf("object %d has no name", i)
		}
	}
	for i, terrain := range c.Terrains {
		if terrain.Name == "" {
			return nil, fmt.Errorf("terrain %d has no name", i)
		}
	}
	return c, nil
}

func (c *LoggerConfig) ToLoggerConfig(appName string) *logger.Config {
	return &logger.Config{
		AppName:    appName,
		Level:      c.Level,
		EnableJson: c.EnableJson,
		EnableFile: c.EnableFile,
		FilePath:   c.FilePath,
		DisableStd: c.DisableStd,
	}
}
