package jdeps

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"go.trai.ch/javelin/internal/core/domain"
	"go.trai.ch/javelin/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DependencyAnalyzer = (*Analyzer)(nil)

// Analyzer implements ports.DependencyAnalyzer over the jdeps tool. When the
// configured report already exists it is parsed as-is; otherwise jdeps is run
// against the compiled classes directory to produce it first.
type Analyzer struct {
	logger ports.Logger
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(logger ports.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// Analyze produces the frozen dependency graph for the configured classes.
func (a *Analyzer) Analyze(ctx context.Context, cfg domain.AnalysisConfig) (*domain.DependencyGraph, error) {
	if _, err := os.Stat(cfg.Report); errors.Is(err, fs.ErrNotExist) {
		if err := a.runTool(ctx, cfg); err != nil {
			return nil, err
		}
	}

	f, err := os.Open(cfg.Report) //nolint:gosec // Path comes from project config
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open dependency report"), "report", cfg.Report)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	graph, err := ParseReport(f, cfg)
	if err != nil {
		return nil, zerr.With(err, "report", cfg.Report)
	}
	return graph, nil
}

// runTool invokes jdeps and writes its verbose class-level output to the
// configured report path. The output goes to a temp file first and only
// lands at the report path on success, so a failed invocation never leaves
// a partial report behind for the next round to trust.
func (a *Analyzer) runTool(ctx context.Context, cfg domain.AnalysisConfig) error {
	a.logger.Info("no dependency report found, running jdeps")

	if err := os.MkdirAll(filepath.Dir(cfg.Report), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create report directory")
	}

	tmp, err := os.CreateTemp(filepath.Dir(cfg.Report), ".jdeps-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create dependency report")
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Already renamed away on success

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "jdeps", "-verbose:class", "-filter:none", cfg.ClassesDir)
	cmd.Stdout = tmp
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		_ = tmp.Close()
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.With(domain.ErrAnalyzerFailed, "cause", err.Error())
		wrapped = zerr.With(wrapped, "exit_code", exitCode)
		return zerr.With(wrapped, "stderr", stderr.String())
	}

	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to write dependency report")
	}
	if err := os.Rename(tmp.Name(), cfg.Report); err != nil {
		return zerr.Wrap(err, "failed to move dependency report into place")
	}
	return nil
}
