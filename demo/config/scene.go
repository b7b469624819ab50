package config

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorustyt/gonavpath/common"
	"github.com/gorustyt/gonavpath/geometry"
	"github.com/gorustyt/gonavpath/navmesh/link"
	"github.com/gorustyt/gonavpath/navmesh/model"
	"github.com/gorustyt/gonavpath/navmesh/polytope"
	"github.com/gorustyt/gonavpath/pathfinding"
)

func (c *AgentConfig) ToNavMeshAgent() (*model.NavMeshAgent, error) {
	return model.NewNavMeshAgent(c.Height, c.Radius, mgl32.DegToRad(c.MaxSlopeDegree))
}

func (c *TransformConfig) ToTransform() geometry.Transform {
	orientation := mgl32.QuatIdent()
	axis := common.Vec3(c.Axis)
	if c.AngleDegree != 0 && axis.Len() > 0 {
		orientation = mgl32.QuatRotate(mgl32.DegToRad(c.AngleDegree), axis.Normalize())
	}
	scale := c.Scale
	if scale == 0 {
		scale = 1
	}
	return geometry.NewTransform(c.Position, orientation, scale)
}

func parseAxis(orientation string) (geometry.Axis, error) {
	switch strings.ToLower(orientation) {
	case "x":
		return geometry.AxisX, nil
	case "y", "":
		return geometry.AxisY, nil
	case "z":
		return geometry.AxisZ, nil
	}
	return 0, fmt.Errorf("unknown axis %q", orientation)
}

func parseConeOrientation(orientation string) (geometry.ConeOrientation, error) {
	switch strings.ToLower(orientation) {
	case "+x":
		return geometry.ConeXPositive, nil
	case "-x":
		return geometry.ConeXNegative, nil
	case "+y", "y", "":
		return geometry.ConeYPositive, nil
	case "-y":
		return geometry.ConeYNegative, nil
	case "+z":
		return geometry.ConeZPositive, nil
	case "-z":
		return geometry.ConeZNegative, nil
	}
	return 0, fmt.Errorf("unknown cone orientation %q", orientation)
}

func (c *ShapeConfig) ToShape() (geometry.ConvexShape, error) {
	switch strings.ToLower(c.Kind) {
	case "box":
		return &geometry.BoxShape{HalfSizes: c.HalfSizes}, nil
	case "capsule":
		axis, err := parseAxis(c.Orientation)
		if err != nil {
			return nil, err
		}
		return &geometry.CapsuleShape{Radius: c.Radius, CylinderHeight: c.CylinderHeight, Orientation: axis}, nil
	case "cone":
		orientation, err := parseConeOrientation(c.Orientation)
		if err != nil {
			return nil, err
		}
		return &geometry.ConeShape{Radius: c.Radius, Height: c.Height, Orientation: orientation}, nil
	case "cylinder":
		axis, err := parseAxis(c.Orientation)
		if err != nil {
			return nil, err
		}
		return &geometry.CylinderShape{Radius: c.Radius, Height: c.Height, Orientation: axis}, nil
	case "sphere":
		return &geometry.SphereShape{Radius: c.Radius}, nil
	case "convex_hull":
		hull := &geometry.ConvexHullShape{}
		for _, p := range c.Points {
			hull.Points = append(hull.Points, p)
		}
		for _, triangle := range c.Triangles {
			hull.Triangles = append(hull.Triangles, geometry.IndexedTriangle{Indices: triangle})
		}
		return hull, nil
	case "triangle":
		if len(c.Points) != 3 {
			return nil, fmt.Errorf("triangle needs 3 points, got %d", len(c.Points))
		}
		return &geometry.TriangleShape{Points: [3]common.Vec3{c.Points[0], c.Points[1], c.Points[2]}}, nil
	}
	return nil, fmt.Errorf("unknown shape kind %q", c.Kind)
}

func (c *ObjectConfig) ToAIObject() (*polytope.AIObject, error) {
	shapes := make([]polytope.AIShape, 0, len(c.Shapes))
	for i, shapeConfig := range c.Shapes {
		shape, err := shapeConfig.ToShape()
		if err != nil {
			return nil, fmt.Errorf("object %s shape %d: %w", c.Name, i, err)
		}
		aiShape := polytope.AIShape{Shape: shape}
		if shapeConfig.Local != nil {
			local := shapeConfig.Local.ToTransform()
			aiShape.LocalTransform = &local
		}
		shapes = append(shapes, aiShape)
	}
	obstacleCandidate := c.ObstacleCandidate == nil || *c.ObstacleCandidate
	return polytope.NewAIObject(c.Name, c.Transform.ToTransform(), obstacleCandidate, shapes...), nil
}

func (c *TerrainConfig) ToAITerrain() (*polytope.AITerrain, error) {
	zLength := len(c.Heights)
	if zLength == 0 {
		return nil, fmt.Errorf("terrain %s has no height", c.Name)
	}
	xLength := len(c.Heights[0])
	xSpacing, zSpacing := c.XSpacing, c.ZSpacing
	if xSpacing == 0 {
		xSpacing = 1
	}
	if zSpacing == 0 {
		zSpacing = 1
	}

	vertices := make([]common.Vec3, 0, xLength*zLength)
	for z, row := range c.Heights {
		if len(row) != xLength {
			return nil, fmt.Errorf("terrain %s row %d has %d heights, expected %d", c.Name, z, len(row), xLength)
		}
		for x, height := range row {
			vertices = append(vertices, common.Vec3{float32(x) * xSpacing, height, float32(z) * zSpacing})
		}
	}

	transform := geometry.IdentityTransform()
	transform.Position = c.Position
	return &polytope.AITerrain{
		Name:              c.Name,
		Vertices:          vertices,
		XLength:           xLength,
		ZLength:           zLength,
		Transform:         transform,
		ObstacleCandidate: c.ObstacleCandidate,
	}, nil
}

func (c *EdgePairConfig) ToEdges() (geometry.LineSegment3D, geometry.LineSegment3D) {
	return geometry.NewLineSegment3D(c.Start[0], c.Start[1]), geometry.NewLineSegment3D(c.End[0], c.End[1])
}

func (c *LinkConfig) ToEdgeLinkDetection() *link.EdgeLinkDetection {
	return link.NewEdgeLinkDetection(c.JumpMaxLength)
}

// ToPortals builds the portals of the path query. Polygons found in
// topographies are followed on the ground.
func (c *PathConfig) ToPortals(topographies map[string]model.NavTopography) []*pathfinding.PathPortal {
	portals := make([]*pathfinding.PathPortal, 0, len(c.Portals))
	for _, portalConfig := range c.Portals {
		var node *pathfinding.PathNode
		if portalConfig.Polygon != "" {
			node = pathfinding.NewPathNode(portalConfig.Polygon, topographies[portalConfig.Polygon])
		}
		b := portalConfig.A
		if portalConfig.B != nil {
			b = *portalConfig.B
		}
		portals = append(portals, pathfinding.NewPathPortal(geometry.NewLineSegment3D(portalConfig.A, b), node))
	}
	return portals
}
