//go:build gui
// +build gui

package main

import (
	"go.uber.org/zap"

	"github.com/flyhigh/fare-radial/internal/config"
	"github.com/flyhigh/fare-radial/internal/gui/app"
	"github.com/flyhigh/fare-radial/internal/logging"
)

type FyneGUIApplication struct {
	logger *zap.Logger
	app    *app.Application
}

func NewFyneGUIApplication(configPath string) (*FyneGUIApplication, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Application.LogLevel)
	if err != nil {
		return nil, err
	}

	guiApp := app.NewApplication(logger, cfg, configPath)
	if err := guiApp.Initialize(); err != nil {
		return nil, err
	}

	return &FyneGUIApplication{logger: logger, app: guiApp}, nil
}

// Run blocks until the window is closed.
func (a *FyneGUIApplication) Run() {
	defer a.logger.Sync()
	a.app.Run()
}
