package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/aeroconst/internal/catalog"
	"github.com/specialistvlad/aeroconst/internal/ctxlog"
	"github.com/specialistvlad/aeroconst/internal/host"
)

// Version is the application version.
const Version = "0.3.0"

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *Config
	catalog   *catalog.Catalog
	class     *host.Namespace
	publisher *catalog.Publisher
}

// NewApp is the constructor for the main application. It builds an isolated
// logger, creates the host class and publishes the catalog onto it before
// sealing it. A nil catalog selects catalog.Default.
//
// Startup failures are programmer errors (an invalid table or class) and panic.
func NewApp(outW, logW io.Writer, cfg *Config, cat *catalog.Catalog) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if cat == nil {
		cat = catalog.Default()
	}

	class, err := host.NewNamespace(cfg.ClassName)
	if err != nil {
		panic(fmt.Errorf("failed to create class: %w", err))
	}

	publisher := catalog.NewPublisher(cat)
	if err := publisher.Publish(ctxlog.With(ctx, "class", cfg.ClassName), class); err != nil {
		panic(fmt.Errorf("failed to publish constants: %w", err))
	}
	class.Seal()
	logger.Debug("Class sealed.", "class", class.Name(), "constants", class.Len())

	return &App{
		outW:      outW,
		logger:    logger,
		config:    cfg,
		catalog:   cat,
		class:     class,
		publisher: publisher,
	}
}

// Class returns the populated host class. This is primarily for testing.
func (a *App) Class() *host.Namespace {
	return a.class
}
