// Package planner turns a set of changed classes into a recompilation plan.
package planner

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/javelin/internal/core/domain"
	"go.trai.ch/javelin/internal/core/ports"
	"go.trai.ch/javelin/internal/engine/resolver"
	"go.trai.ch/javelin/internal/ui/output"
	"go.trai.ch/zerr"
)

// errFullRebuild aborts the remaining queries once any closure degrades to
// DependencyToAll. It never escapes Plan.
var errFullRebuild = errors.New("full rebuild required")

// Planner resolves the transitive impact of every changed class and merges
// the results into one plan. Queries run concurrently: each one only reads
// the frozen graph and owns its own traversal state.
type Planner struct {
	logger      ports.Logger
	telemetry   ports.Telemetry
	parallelism int
}

// NewPlanner creates a Planner with parallelism bounded by the CPU count.
func NewPlanner(logger ports.Logger, telemetry ports.Telemetry) *Planner {
	return &Planner{
		logger:      logger,
		telemetry:   telemetry,
		parallelism: runtime.NumCPU(),
	}
}

// WithParallelism overrides the query parallelism. Values below one are
// ignored.
func (p *Planner) WithParallelism(n int) *Planner {
	if n >= 1 {
		p.parallelism = n
	}
	return p
}

// Plan computes the recompilation plan for the changed classes against the
// given graph snapshot.
//
// If any changed class's closure resolves to DependencyToAll, the plan
// demands a full rebuild and carries no concrete class list: a partial
// answer would understate the impact. Otherwise the plan lists the union of
// all closures plus the changed top-level classes themselves.
func (p *Planner) Plan(ctx context.Context, graph *domain.DependencyGraph, changed []domain.ClassName) (*domain.RecompilationPlan, error) {
	if len(changed) == 0 {
		return nil, domain.ErrNoChangedClasses
	}

	res := resolver.New(graph)
	progress := output.NewProgress(len(changed), "changed classes analysed")

	var mu sync.Mutex
	affected := make(map[string]struct{})
	var rebuildReason domain.ClassName

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(p.parallelism)

	for _, class := range changed {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			_, vtx := p.telemetry.Record(ctx, "impact of "+class.String())
			deps := res.RelevantDependents(class)
			vtx.Complete(nil)

			if deps.IsDependencyToAll() {
				mu.Lock()
				if rebuildReason == (domain.ClassName{}) {
					rebuildReason = class
				}
				mu.Unlock()
				return errFullRebuild
			}

			mu.Lock()
			// The changed class itself always recompiles; nested changes
			// map to their enclosing compilation unit.
			affected[class.TopLevel().String()] = struct{}{}
			for dep := range deps.Classes() {
				affected[dep.String()] = struct{}{}
			}
			mu.Unlock()

			if line, err := progress.Increment(); err == nil {
				p.logger.Info(line)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		if errors.Is(err, errFullRebuild) {
			mu.Lock()
			reason := rebuildReason
			mu.Unlock()
			p.logger.Warn("could not determine incremental impact precisely; falling back to full recompilation")
			return domain.FullRebuildPlan(reason), nil
		}
		return nil, zerr.Wrap(err, domain.ErrPlanningFailed.Error())
	}

	classes := make([]string, 0, len(affected))
	for name := range affected {
		classes = append(classes, name)
	}
	return domain.IncrementalPlan(classes), nil
}
