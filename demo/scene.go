package main

import (
	"github.com/gorustyt/gonavpath/common/logger"
	"github.com/gorustyt/gonavpath/demo/config"
	"github.com/gorustyt/gonavpath/navmesh/model"
	"go.uber.org/zap"
)

const appName = "navpath"

// loadScene reads the scene file and installs the logger it configures.
func loadScene(configFile string) (*config.Config, *model.NavMeshAgent, error) {
	c, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, nil, err
	}
	if _, err := logger.InitLogger(c.Logger.ToLoggerConfig(appName)); err != nil {
		return nil, nil, err
	}
	agent, err := c.Agent.ToNavMeshAgent()
	if err != nil {
		return nil, nil, err
	}
	logger.L().Info("scene loaded",
		zap.String("file", configFile),
		zap.Int("objects", len(c.Objects)),
		zap.Int("terrains", len(c.Terrains)))
	return c, agent, nil
}
