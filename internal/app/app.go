// Package app wires the converter together: configuration, logging, input
// discovery, bounded-parallel conversion, and output encoding.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/umlfold/umlfold/internal/config"
	"github.com/umlfold/umlfold/internal/ctxlog"
)

// App is one configured converter invocation.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp builds an App from the CLI-level configuration, loading and
// merging the optional config file. Logs go to errW so encoded documents
// on standard output stay clean.
func NewApp(outW, errW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)

	if cfg.ConfigPath != "" {
		fileCfg, err := config.Load(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg.merge(fileCfg)
		logger.Debug("config file merged", "path", cfg.ConfigPath)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return &App{
		outW:   outW,
		errW:   errW,
		logger: logger,
		config: cfg,
	}, nil
}

// Run converts every discovered input and writes the results.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	return a.convertAll(ctx)
}

// ensureOutputDir creates the output directory when one is configured.
func (a *App) ensureOutputDir() error {
	if a.config.OutputDir == "" {
		return nil
	}
	if err := os.MkdirAll(a.config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}
