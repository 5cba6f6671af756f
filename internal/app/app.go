package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/deansher/morphics-v0.1/internal/ctxlog"
	"github.com/deansher/morphics-v0.1/internal/morph"
	"github.com/deansher/morphics-v0.1/internal/registry"
	"github.com/deansher/morphics-v0.1/internal/resolver"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle: one populated, validated, frozen registry plus the resolution
// engine over it.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	engine   *resolver.Engine
	config   *Config
}

// NewApp is the constructor for the main application. It runs the complete
// initialization phase: install every module's registrations inside a fresh
// init context, validate registry integrity, and freeze. A defective module
// set is a programmer error, so it panics rather than returning an error.
func NewApp(outW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = coreModules
	}

	mc := morph.NewContext()
	reg := registry.New()
	reg.Install(ctx, mc, modules...)
	logger.Debug("All modules registered.", "top_level_count", len(modules))

	reg.Validate(ctx, mc)
	if !mc.OK() {
		panic(fmt.Errorf("registry initialization failed:\n%s", formatErrors(mc.Errors())))
	}
	logger.Debug("Registry validation passed.")

	reg.Freeze()

	engine := resolver.New(reg)
	if cfg.MaxDepth > 0 {
		engine.MaxDepth = cfg.MaxDepth
	}

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		engine:   engine,
		config:   cfg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Engine returns the application's resolution engine. This is primarily for
// testing.
func (a *App) Engine() *resolver.Engine {
	return a.engine
}

// formatErrors renders an ordered defect list one defect per line.
func formatErrors(errs []*morph.Error) string {
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = "  - " + e.Error()
	}
	return strings.Join(lines, "\n")
}
