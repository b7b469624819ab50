package main

import (
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/gorustyt/gonavpath/common/logger"
	"github.com/gorustyt/gonavpath/demo/config"
	"github.com/gorustyt/gonavpath/navmesh/model"
	"github.com/gorustyt/gonavpath/navmesh/polytope"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func BuildCmd() *cobra.Command {
	var configFile string
	var outFile string
	var workers int
	c := &cobra.Command{
		Use:   "build",
		Short: "expand the scene objects and terrains into polytopes",
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, agent, err := loadScene(configFile)
			if err != nil {
				return err
			}
			defer logger.CloseLogger()

			polytopes, err := buildPolytopes(scene, agent, workers)
			if err != nil {
				return err
			}
			if outFile != "" {
				return os.WriteFile(outFile, polytope.EncodePolytopes(polytopes), 0o644)
			}
			return nil
		},
	}
	c.Flags().StringVar(&configFile, "config", "scene.hjson", "scene file")
	c.Flags().StringVar(&outFile, "out", "", "binary polytope dump")
	c.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "objects expanded concurrently")
	return c
}

type buildResult struct {
	polytopes []*polytope.Polytope
	err       error
}

// buildPolytopes expands objects on a pool of workers sharing one builder.
// Objects failing to expand are skipped; terrains must succeed.
func buildPolytopes(scene *config.Config, agent *model.NavMeshAgent, workers int) ([]*polytope.Polytope, error) {
	start := time.Now()
	builder := polytope.NewPolytopeBuilder()

	objects := make([]*polytope.AIObject, 0, len(scene.Objects))
	for _, objectConfig := range scene.Objects {
		object, err := objectConfig.ToAIObject()
		if err != nil {
			return nil, err
		}
		objects = append(objects, object)
	}

	results := make([]buildResult, len(objects))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < max(1, workers); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				polytopes, err := builder.BuildExpandedPolytopes(objects[index], agent)
				results[index] = buildResult{polytopes: polytopes, err: err}
			}
		}()
	}
	for i := range objects {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var expandedPolytopes []*polytope.Polytope
	skipped := 0
	for i, result := range results {
		if result.err != nil {
			logger.L().Error("object skipped", zap.String("object", objects[i].Name), zap.Error(result.err))
			skipped++
			continue
		}
		expandedPolytopes = append(expandedPolytopes, result.polytopes...)
	}

	navMeshConfig := model.NewNavMeshConfig(agent)
	for _, terrainConfig := range scene.Terrains {
		terrain, err := terrainConfig.ToAITerrain()
		if err != nil {
			return nil, err
		}
		terrainPolytope, err := builder.BuildExpandedPolytope(terrain, navMeshConfig)
		if err != nil {
			return nil, err
		}
		expandedPolytopes = append(expandedPolytopes, terrainPolytope)
	}

	logger.L().Info("polytopes built",
		zap.Int("polytopes", len(expandedPolytopes)),
		zap.Int("skippedObjects", skipped),
		zap.Duration("cost", time.Since(start)))
	return expandedPolytopes, nil
}
