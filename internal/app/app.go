package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vk/advent2020/internal/config"
	"github.com/vk/advent2020/internal/ctxlog"
	"github.com/vk/advent2020/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	cfg       *AppConfig
	logger    *slog.Logger
	registry  *registry.Registry
	manifest  *config.Manifest
	converter config.Converter
}

// NewApp is the constructor for the main application. Answers are written
// to outW and logs to logW. When no modules are given every built-in puzzle
// is registered.
func NewApp(outW, logW io.Writer, cfg *AppConfig, loader config.Loader, modules ...registry.Module) (*App, error) {
	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat, uuid.NewString(), logW)
	if err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var manifestPaths []string
	if cfg.ManifestPath != "" {
		manifestPaths = append(manifestPaths, cfg.ManifestPath)
	}

	manifest, converter, err := loader.Load(ctx, config.Vars{InputDir: cfg.InputDir}, manifestPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest: %w", err)
	}
	logger.Debug("Manifest loaded.", "puzzles", len(manifest.Puzzles))

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules))

	return &App{
		outW:      outW,
		cfg:       cfg,
		logger:    logger,
		registry:  reg,
		manifest:  manifest,
		converter: converter,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
