package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/crossdexgo/internal/config"
	"github.com/vk/crossdexgo/internal/ctxlog"
	"github.com/vk/crossdexgo/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *config.Model
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load the manifest into the format-agnostic model first.
	cfgModel, err := loader.Load(ctx, appConfig.ManifestPath)
	if err != nil {
		// A failure to load the manifest is a fatal startup error.
		panic(fmt.Errorf("failed to load manifest: %w", err))
	}
	if err := cfgModel.Validate(); err != nil {
		panic(fmt.Errorf("invalid manifest: %w", err))
	}
	logger.Debug("Manifest loaded and translated into unified model.")

	// Create and populate the registry with the compiled page providers.
	reg := registry.New()
	if len(modules) == 0 {
		modules = coreTables
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All page providers registered.", "count", len(modules))

	// Validate the integrity of the registry against the manifest.
	if err := reg.ValidateRegistry(ctx, cfgModel); err != nil {
		// This is a mismatch between code and manifest, so we panic.
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   cfgModel,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Config returns the loaded manifest model. This is primarily for testing.
func (a *App) Config() *config.Model {
	return a.config
}
