// Package app implements the application layer for javelin.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.trai.ch/javelin/internal/core/domain"
	"go.trai.ch/javelin/internal/core/ports"
	"go.trai.ch/javelin/internal/engine/planner"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader  ports.ConfigLoader
	analyzer      ports.DependencyAnalyzer
	store         ports.SnapshotStore
	fingerprinter ports.Fingerprinter
	planner       *planner.Planner
	logger        ports.Logger
	telemetry     ports.Telemetry

	cwd string
	out io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	analyzer ports.DependencyAnalyzer,
	store ports.SnapshotStore,
	fingerprinter ports.Fingerprinter,
	pl *planner.Planner,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader:  loader,
		analyzer:      analyzer,
		store:         store,
		fingerprinter: fingerprinter,
		planner:       pl,
		logger:        logger,
		telemetry:     telemetry,
		cwd:           ".",
		out:           os.Stdout,
	}
}

// WithWorkdir overrides the working directory the configuration is read
// from. Used for testing.
func (a *App) WithWorkdir(cwd string) *App {
	a.cwd = cwd
	return a
}

// SetOutput overrides the plan output destination. Used for testing.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// Plan computes and prints the recompilation plan for the given changed
// classes.
func (a *App) Plan(ctx context.Context, changedClasses []string) error {
	if len(changedClasses) == 0 {
		return domain.ErrNoChangedClasses
	}

	cfg, err := a.configLoader.Load(a.cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	graph, err := a.loadGraph(ctx, cfg)
	if err != nil {
		return err
	}

	changed := make([]domain.ClassName, len(changedClasses))
	for i, name := range changedClasses {
		changed[i] = domain.NewClassName(name)
	}

	plan, err := a.planner.Plan(ctx, graph, changed)
	if err != nil {
		return zerr.Wrap(err, "failed to compute recompilation plan")
	}

	a.render(plan)
	return nil
}

// Analyze rebuilds the dependency graph from the report and refreshes the
// snapshot, regardless of snapshot freshness.
func (a *App) Analyze(ctx context.Context) error {
	cfg, err := a.configLoader.Load(a.cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	graph, err := a.analyzeAndSave(ctx, cfg)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("dependency graph rebuilt: %d classes with dependents", graph.Size()))
	return nil
}

// loadGraph returns the graph for the current round: the snapshot if its
// fingerprint still matches the report, otherwise a fresh analysis.
func (a *App) loadGraph(ctx context.Context, cfg *domain.ProjectConfig) (*domain.DependencyGraph, error) {
	_, vtx := a.telemetry.Record(ctx, "load dependency graph")

	fp, err := a.fingerprinter.FileFingerprint(cfg.Analysis.Report)
	if err == nil {
		graph, ok, loadErr := a.store.Load(cfg.Snapshot.Path, fp)
		if loadErr != nil {
			vtx.Complete(loadErr)
			return nil, loadErr
		}
		if ok {
			vtx.Cached()
			return graph, nil
		}
	}

	graph, err := a.analyzeAndSave(ctx, cfg)
	vtx.Complete(err)
	return graph, err
}

func (a *App) analyzeAndSave(ctx context.Context, cfg *domain.ProjectConfig) (*domain.DependencyGraph, error) {
	graph, err := a.analyzer.Analyze(ctx, cfg.Analysis)
	if err != nil {
		return nil, zerr.Wrap(err, "dependency analysis failed")
	}

	// The report exists after analysis; fingerprint it so the next round can
	// reuse the snapshot.
	fp, err := a.fingerprinter.FileFingerprint(cfg.Analysis.Report)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to fingerprint dependency report")
	}

	info := domain.SnapshotInfo{
		ReportFingerprint: fp,
		CreatedAt:         time.Now(),
		ClassCount:        graph.Size(),
	}
	if err := a.store.Save(cfg.Snapshot.Path, graph, info); err != nil {
		return nil, zerr.Wrap(err, "failed to persist graph snapshot")
	}

	return graph, nil
}

func (a *App) render(plan *domain.RecompilationPlan) {
	if plan.FullRebuild {
		a.logger.Warn("could not determine incremental impact precisely")
		_, _ = fmt.Fprintf(a.out, "full rebuild required (triggered by %s)\n", plan.Reason)
		return
	}

	_, _ = fmt.Fprintf(a.out, "%d classes require recompilation\n", len(plan.Classes))
	for _, class := range plan.Classes {
		_, _ = fmt.Fprintln(a.out, class)
	}
}
