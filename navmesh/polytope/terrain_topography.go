package polytope

import (
	"math"

	"github.com/gorustyt/gonavpath/common"
	"github.com/gorustyt/gonavpath/common/logger"
	"go.uber.org/zap"
)

// TerrainTopography follows the heightfield between two points, one sample
// per grid cell crossed. A sample without terrain height keeps the height of
// the straight segment and is reported as a warning.
type TerrainTopography struct {
	grid *terrainGrid
}

func (t *TerrainTopography) FollowTopography(start, end common.Vec3) []common.Vec3 {
	step := min(t.grid.xSpacing, t.grid.zSpacing)
	distance := common.Sqrt(common.Vdist2DSqr(start, end))
	n := int(math.Ceil(float64(distance / step)))
	if n < 1 {
		return []common.Vec3{start, end}
	}

	points := make([]common.Vec3, 0, n+1)
	points = append(points, start)
	for i := 1; i < n; i++ {
		p := common.Vlerp(start, end, float32(i)/float32(n))
		h, err := t.grid.heightAt(p[0], p[2])
		if err != nil {
			logger.L().Warn("terrain height not found, keeping straight segment height",
				zap.Float32("x", p[0]), zap.Float32("z", p[2]), zap.Error(err))
		} else {
			p[1] = h
		}
		points = append(points, p)
	}
	return append(points, end)
}
