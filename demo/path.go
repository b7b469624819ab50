package main

import (
	"errors"
	"os"

	"github.com/gorustyt/gonavpath/common/logger"
	"github.com/gorustyt/gonavpath/common/message"
	"github.com/gorustyt/gonavpath/demo/config"
	"github.com/gorustyt/gonavpath/navmesh/model"
	"github.com/gorustyt/gonavpath/navmesh/polytope"
	"github.com/gorustyt/gonavpath/pathfinding"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func PathCmd() *cobra.Command {
	var configFile string
	var outFile string
	c := &cobra.Command{
		Use:   "path",
		Short: "reduce the scene portal list into a path",
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, agent, err := loadScene(configFile)
			if err != nil {
				return err
			}
			defer logger.CloseLogger()
			if scene.Path == nil {
				return errors.New("scene has no path section")
			}

			topographies, err := terrainTopographies(scene, agent)
			if err != nil {
				return err
			}
			funnel, err := pathfinding.NewFunnelAlgorithm(scene.Path.ToPortals(topographies))
			if err != nil {
				return err
			}
			path, err := funnel.FindPath()
			if err != nil {
				return err
			}
			for i, point := range path {
				logger.L().Info("path point", zap.Int("index", i), zap.Any("point", [3]float32(point)))
			}
			if outFile != "" {
				return os.WriteFile(outFile, message.EncodePath(path), 0o644)
			}
			return nil
		},
	}
	c.Flags().StringVar(&configFile, "config", "scene.hjson", "scene file")
	c.Flags().StringVar(&outFile, "out", "", "protobuf encoded path")
	return c
}

// terrainTopographies returns the ground following topography of every
// scene terrain, by terrain name.
func terrainTopographies(scene *config.Config, agent *model.NavMeshAgent) (map[string]model.NavTopography, error) {
	builder := polytope.NewPolytopeBuilder()
	navMeshConfig := model.NewNavMeshConfig(agent)
	topographies := make(map[string]model.NavTopography, len(scene.Terrains))
	for _, terrainConfig := range scene.Terrains {
		terrain, err := terrainConfig.ToAITerrain()
		if err != nil {
			return nil, err
		}
		terrainPolytope, err := builder.BuildExpandedPolytope(terrain, navMeshConfig)
		if err != nil {
			return nil, err
		}
		topographies[terrain.Name] = terrainPolytope.Surface(0).NewNavTopography()
	}
	return topographies, nil
}
