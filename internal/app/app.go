package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/Delfictus/Prism-Tuning/internal/config"
	"github.com/Delfictus/Prism-Tuning/internal/ctxlog"
	"github.com/Delfictus/Prism-Tuning/internal/experiment"
	"github.com/Delfictus/Prism-Tuning/internal/schema"
)

// App bundles the configured core subsystems for the command layer.
type App struct {
	cfg     *Config
	logger  *slog.Logger
	schema  *schema.Schema
	store   *config.Store
	builder *experiment.Builder
}

// New constructs a fully wired App. Diagnostics go to errW so command
// output on stdout stays clean.
func New(errW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	sch := schema.Default()
	return &App{
		cfg:     cfg,
		logger:  logger,
		schema:  sch,
		store:   config.NewStore(cfg.BaseConfig, cfg.OverridePath, sch),
		builder: experiment.NewBuilder(cfg.OverridesDir, sch),
	}
}

// Context attaches the app's logger to ctx for the core packages.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// Cfg returns the resolved workspace configuration.
func (a *App) Cfg() *Config { return a.cfg }

// Logger returns the app's logger.
func (a *App) Logger() *slog.Logger { return a.logger }

// Schema returns the parameter catalog.
func (a *App) Schema() *schema.Schema { return a.schema }

// Store returns the layered configuration store.
func (a *App) Store() *config.Store { return a.store }

// Builder returns the experiment override builder.
func (a *App) Builder() *experiment.Builder { return a.builder }
