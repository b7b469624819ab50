package polytope

import (
	"math"

	"github.com/gorustyt/gonavpath/common"
	"github.com/gorustyt/gonavpath/geometry"
)

// terrainGrid is a regular heightfield in world space. Vertex (x, z) is stored
// at index z*xLength + x.
type terrainGrid struct {
	vertices         []common.Vec3
	xLength, zLength int
	xSpacing         float32
	zSpacing         float32
}

func newTerrainGrid(position common.Vec3, localVertices []common.Vec3, xLength, zLength int) (*terrainGrid, error) {
	if xLength < 2 || zLength < 2 {
		return nil, common.NewPreconditionError("terrain grid must be at least 2x2, got %dx%d", xLength, zLength)
	}
	if len(localVertices) != xLength*zLength {
		return nil, common.NewPreconditionError("terrain has %d vertices, expected %d", len(localVertices), xLength*zLength)
	}
	vertices := make([]common.Vec3, len(localVertices))
	for i, v := range localVertices {
		vertices[i] = position.Add(v)
	}
	g := &terrainGrid{vertices: vertices, xLength: xLength, zLength: zLength}
	g.xSpacing = (g.vertex(xLength-1, 0)[0] - g.vertex(0, 0)[0]) / float32(xLength-1)
	g.zSpacing = (g.vertex(0, zLength-1)[2] - g.vertex(0, 0)[2]) / float32(zLength-1)
	if !(g.xSpacing > 0) || !(g.zSpacing > 0) {
		return nil, common.NewDegenerateGeometryError("terrain vertices must grow along X and Z (spacing %v, %v)", g.xSpacing, g.zSpacing)
	}
	return g, nil
}

func (g *terrainGrid) vertex(x, z int) common.Vec3 {
	return g.vertices[z*g.xLength+x]
}

// cellTriangles returns the two triangles of cell (x, z), counter-clockwise seen from above.
func (g *terrainGrid) cellTriangles(x, z int) [2][3]common.Vec3 {
	v00 := g.vertex(x, z)
	v10 := g.vertex(x+1, z)
	v01 := g.vertex(x, z+1)
	v11 := g.vertex(x+1, z+1)
	return [2][3]common.Vec3{{v00, v01, v10}, {v10, v01, v11}}
}

func (g *terrainGrid) cellOf(x, z float32) (int, int) {
	origin := g.vertex(0, 0)
	cellX := int(math.Floor(float64((x - origin[0]) / g.xSpacing)))
	cellZ := int(math.Floor(float64((z - origin[2]) / g.zSpacing)))
	return common.Clamp(cellX, 0, g.xLength-2), common.Clamp(cellZ, 0, g.zLength-2)
}

// clampXZ keeps the XZ point inside the grid.
func (g *terrainGrid) clampXZ(x, z float32) (float32, float32) {
	minV := g.vertex(0, 0)
	maxV := g.vertex(g.xLength-1, g.zLength-1)
	return common.Clamp(x, minV[0], maxV[0]), common.Clamp(z, minV[2], maxV[2])
}

// heightAt returns the terrain height under (x, z). Points outside the grid
// take the height of the closest border point.
func (g *terrainGrid) heightAt(x, z float32) (float32, error) {
	x, z = g.clampXZ(x, z)
	cellX, cellZ := g.cellOf(x, z)
	p := common.Vec3{x, 0, z}
	for _, triangle := range g.cellTriangles(cellX, cellZ) {
		if h, ok := geometry.ClosestHeightPointTriangle(p, triangle[0], triangle[1], triangle[2]); ok {
			return h, nil
		}
	}
	return 0, common.NewDegenerateGeometryError("no terrain triangle under (%v, %v)", x, z)
}

func (g *terrainGrid) cornersXZ() []common.Vec2 {
	return []common.Vec2{
		common.XZ(g.vertex(0, 0)),
		common.XZ(g.vertex(g.xLength-1, 0)),
		common.XZ(g.vertex(g.xLength-1, g.zLength-1)),
		common.XZ(g.vertex(0, g.zLength-1)),
	}
}
