package main

import (
	"errors"

	"github.com/gorustyt/gonavpath/common/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func LinkCmd() *cobra.Command {
	var configFile string
	c := &cobra.Command{
		Use:   "link",
		Short: "detect jump links between the scene edge pairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, _, err := loadScene(configFile)
			if err != nil {
				return err
			}
			defer logger.CloseLogger()
			if scene.Link == nil {
				return errors.New("scene has no link section")
			}

			detection := scene.Link.ToEdgeLinkDetection()
			for i, edges := range scene.Link.Edges {
				startEdge, endEdge := edges.ToEdges()
				result, err := detection.DetectLink(startEdge, endEdge)
				if err != nil {
					return err
				}
				if !result.Linked() {
					logger.L().Info("edges not linked", zap.Int("pair", i))
					continue
				}
				jump := result.JumpStartSegment()
				landing := result.JumpEndSegment()
				logger.L().Info("edges linked",
					zap.Int("pair", i),
					zap.Any("jumpStart", [2][3]float32{jump.A, jump.B}),
					zap.Any("jumpEnd", [2][3]float32{landing.A, landing.B}))
			}
			return nil
		},
	}
	c.Flags().StringVar(&configFile, "config", "scene.hjson", "scene file")
	return c
}
