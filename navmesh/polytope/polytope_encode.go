package polytope

import (
	"github.com/gorustyt/gonavpath/common/rw"
)

const (
	planeSurfaceTag   uint8 = 0
	terrainSurfaceTag uint8 = 1
)

// EncodePolytopes dumps the expanded geometry handed to the triangulation
// stage: per polytope its name, candidate flags and surfaces.
func EncodePolytopes(polytopes []*Polytope) []byte {
	w := rw.NewBinWriter()
	w.WriteUInt32(len(polytopes))
	for _, p := range polytopes {
		p.ToBin(w)
	}
	return w.GetWriteBytes()
}

func (p *Polytope) ToBin(w *rw.ReaderWriter) {
	w.WriteString(p.name)
	w.WriteBool(p.walkableCandidate)
	w.WriteBool(p.obstacleCandidate)
	w.WriteUInt32(len(p.surfaces))
	for _, surface := range p.surfaces {
		switch s := surface.(type) {
		case *PlaneSurface:
			w.WriteUInt8(planeSurfaceTag)
			w.WriteBool(s.IsWalkable())
			w.WriteVec3(s.Normal())
			w.WriteUInt32(len(s.ccwPoints))
			for _, point := range s.ccwPoints {
				w.WriteVec3(point)
			}
		case *TerrainSurface:
			w.WriteUInt8(terrainSurfaceTag)
			w.WriteBool(s.IsWalkable())
			w.WriteUInt32(s.grid.xLength)
			w.WriteUInt32(s.grid.zLength)
			for _, vertex := range s.grid.vertices {
				w.WriteVec3(vertex)
			}
			w.WriteUInt32(len(s.selfObstacles))
			for _, obstacle := range s.selfObstacles {
				w.WriteString(obstacle.Name)
				w.WriteUInt32(len(obstacle.CwPoints))
				for _, point := range obstacle.CwPoints {
					w.WriteFloat32s(point[:])
				}
			}
		}
	}
}
