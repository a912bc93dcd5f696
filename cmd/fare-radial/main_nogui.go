package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/flyhigh/fare-radial/internal/config"
	"github.com/flyhigh/fare-radial/internal/geometry"
	"github.com/flyhigh/fare-radial/internal/ingest"
	"github.com/flyhigh/fare-radial/internal/logging"
	"github.com/flyhigh/fare-radial/internal/pipeline"
)

type NoGUIApplication struct {
	cfg    *config.Config
	logger *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc

	loader *ingest.Loader
}

func NewNoGUIApplication(configPath string) (*NoGUIApplication, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Application.LogLevel)
	if err != nil {
		return nil, err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	return &NoGUIApplication{
		cfg:    cfg,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
		loader: ingest.NewLoader(ingest.Options{
			SamplesPath: cfg.Data.SamplesPath,
			FlightsPath: cfg.Data.FlightsPath,
			CachePath:   cfg.Data.CachePath,
		}, logger),
	}, nil
}

// Run loads the dataset, builds the chart model at the base width and
// prints one line per departure day.
func (a *NoGUIApplication) Run() error {
	defer a.cancel()
	defer a.logger.Sync()

	a.logger.Info("Starting fare radial (No GUI Mode)",
		zap.String("version", a.cfg.Application.Version),
		zap.String("samples", a.cfg.Data.SamplesPath),
		zap.String("flights", a.cfg.Data.FlightsPath))

	ds, err := a.loader.Load(a.ctx)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	opts, err := pipeline.EngineOptions(a.cfg, float64(a.cfg.Chart.BaseWidth))
	if err != nil {
		return err
	}
	model, err := pipeline.Prepare(ds, opts, a.logger)
	if err != nil {
		return err
	}

	window, err := model.InitialWindow(a.cfg.Brush.Start, a.cfg.Brush.DefaultDays)
	if err != nil {
		return err
	}
	paths, err := model.Select(window)
	if err != nil {
		a.logger.Warn("Initial window not indexed",
			zap.String("window", window.String()),
			zap.Error(err))
	}

	fmt.Printf("Dataset %s: %d flights over %d departure days\n", ds.ID, len(model.Paths), model.Index.Len())
	fmt.Printf("Initial window %s: %d flights\n", window, len(paths))
	fmt.Printf("%-12s %8s %6s %14s\n", "day", "flights", "flat", "mean end price")
	for _, s := range model.Summaries() {
		fmt.Printf("%-12s %8d %6d %14.2f\n", s.Day, s.Paths, s.Flat, s.MeanEndPrice)
	}

	gradients := 0
	for _, p := range model.Paths {
		if p.Color.Kind == geometry.PaintRadialGradient {
			gradients++
		}
	}
	a.logger.Info("Summary complete",
		zap.String("dataset_id", ds.ID.String()),
		zap.Int("gradient_paths", gradients),
		zap.Int("flat_paths", len(model.Paths)-gradients))
	return nil
}
