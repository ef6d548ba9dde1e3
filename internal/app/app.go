// Package app owns the lifecycle of one riboprep invocation: logger setup,
// configuration loading, the startup checks, the SLURM dispatch gate, and
// the pipeline run itself.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ribokit/riboprep/internal/config"
	"github.com/ribokit/riboprep/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *Config
	doc    *config.Document
}

// New constructs a fully initialized App with its own isolated logger and
// the configuration document loaded through the given loader.
func New(outW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	doc, err := loader.Load(ctx, cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration document loaded.", "path", cfg.ConfigPath)

	return &App{
		outW:   outW,
		logger: logger,
		cfg:    cfg,
		doc:    doc,
	}, nil
}

// Document returns the loaded configuration document. This is primarily for
// testing.
func (a *App) Document() *config.Document {
	return a.doc
}
