package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/aeroconst/internal/catalog"
	"github.com/specialistvlad/aeroconst/internal/ctxlog"
	"github.com/specialistvlad/aeroconst/internal/native"
	"github.com/specialistvlad/aeroconst/internal/oracle"
	"github.com/specialistvlad/aeroconst/internal/render"
)

var (
	// ErrDriftDetected is returned by verify when the catalog disagrees with the oracle.
	ErrDriftDetected = errors.New("catalog drifted from native library")
	// ErrUnknownConstant is returned by list for a name that is not in the catalog.
	ErrUnknownConstant = errors.New("unknown constant")
)

// Run executes the configured command.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "command", a.config.Command)

	var err error
	switch a.config.Command {
	case CommandList:
		err = a.list(ctx)
	case CommandEval:
		err = a.eval(ctx)
	case CommandVerify:
		err = a.verify(ctx)
	case CommandVersion:
		_, err = fmt.Fprintf(a.outW, "aeroconst v%s (aerospike-c-client %s)\n", Version, native.LibraryVersion)
	default:
		err = fmt.Errorf("unknown command %q", a.config.Command)
	}

	a.logger.Debug("App.Run method finished.", "error", err)
	return err
}

// list prints the published constants, optionally restricted to the given names.
func (a *App) list(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	entries := a.catalog.Entries()
	if len(a.config.Args) > 0 {
		selected := make([]catalog.Entry, 0, len(a.config.Args))
		for _, name := range a.config.Args {
			e, ok := a.catalog.Lookup(name)
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownConstant, name)
			}
			selected = append(selected, e)
		}
		entries = selected
	}

	logger.Debug("Listing constants.", "count", len(entries), "format", a.config.Format)
	return render.Entries(a.outW, render.Format(a.config.Format), a.class.Name(), entries)
}

// eval evaluates an HCL expression against the sealed class.
func (a *App) eval(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	expr := a.config.Expression()
	logger.Debug("Evaluating expression.", "expr", expr)

	v, err := a.class.Eval(expr)
	if err != nil {
		return err
	}
	return render.Value(a.outW, render.Format(a.config.Format), v)
}

// verify compares the catalog with a symbol oracle and reports any drift.
func (a *App) verify(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	o, err := oracle.Load(ctx, a.config.Args...)
	if err != nil {
		return fmt.Errorf("failed to load oracle: %w", err)
	}

	drifts := a.catalog.Verify(o)
	if len(drifts) == 0 {
		logger.Info("No drift detected.", "library", o.Library, "version", o.Version)
		_, err := fmt.Fprintf(a.outW, "OK: %d integer constants match %s %s\n",
			a.catalog.Count(catalog.KindInteger), o.Library, o.Version)
		return err
	}

	for _, d := range drifts {
		logger.Warn("Constant drifted.", "name", d.Name, "symbol", d.Symbol, "kind", d.Kind.String())
		if _, err := fmt.Fprintf(a.outW, "DRIFT %s\n", d); err != nil {
			return err
		}
	}
	return fmt.Errorf("%w: %d of %d integer constants", ErrDriftDetected, len(drifts), a.catalog.Count(catalog.KindInteger))
}
