package app

import (
	"io"
	"log/slog"

	"github.com/vk/qualbench/internal/provider"
)

// App encapsulates the harness's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *provider.Registry
	config   *Config
}

// NewApp constructs an App with its own isolated logger and provider
// registry. When no modules are passed the core providers are registered.
func NewApp(outW io.Writer, config *Config, modules ...provider.Module) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	reg := provider.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All provider modules registered.", "count", len(modules), "names", reg.Names())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   config,
	}
}

// Registry returns the application's provider registry. Primarily for tests.
func (a *App) Registry() *provider.Registry {
	return a.registry
}
