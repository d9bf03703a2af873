// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/javelin/internal/core/domain"
)

// DependencyAnalyzer defines the interface for the external bytecode analyzer
// that produces the per-round class dependency graph.
//
//go:generate go run go.uber.org/mock/mockgen -source=analyzer.go -destination=mocks/mock_analyzer.go -package=mocks
type DependencyAnalyzer interface {
	// Analyze builds a frozen dependency graph for the configured classes.
	// It may shell out to an analysis tool, so it honors ctx cancellation.
	Analyze(ctx context.Context, cfg domain.AnalysisConfig) (*domain.DependencyGraph, error)
}
