// Package resolver computes transitive recompilation impact over a frozen
// class dependency graph.
package resolver

import "go.trai.ch/javelin/internal/core/domain"

// Resolver answers "which classes must be recompiled when this class
// changes?" against one graph snapshot. It holds no mutable state: every
// query owns its own worklist, so a single Resolver may serve concurrent
// queries as long as the graph outlives them.
type Resolver struct {
	graph *domain.DependencyGraph
}

// New creates a Resolver over the given frozen graph.
func New(graph *domain.DependencyGraph) *Resolver {
	return &Resolver{graph: graph}
}

// RelevantDependents returns the transitive closure of classes depending on
// the given class.
//
// The result is one of three variants. Empty means no recompilation beyond
// the class itself. A concrete set lists every affected top-level class,
// excluding the queried class and excluding nested-class names. If any
// reachable class resolves to DependencyToAll the whole result is
// DependencyToAll: a partial concrete answer would understate the impact and
// make incremental compilation unsound, so accumulated progress is discarded.
func (r *Resolver) RelevantDependents(name domain.ClassName) domain.DependentsSet {
	direct := r.graph.DependentsOf(name)
	if direct.IsEmpty() {
		return domain.NoDependents()
	}
	if direct.IsDependencyToAll() {
		return domain.AllDependents()
	}

	// Explicit worklist instead of recursion: bounds stack usage on deep
	// graphs and makes the cycle guard a plain map lookup.
	visited := make(map[domain.ClassName]struct{})
	accumulated := make(map[domain.ClassName]struct{})
	frontier := make([]domain.ClassName, 0, direct.Size())
	for dep := range direct.Classes() {
		frontier = append(frontier, dep)
	}

	for len(frontier) > 0 {
		dep := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if _, seen := visited[dep]; seen {
			continue
		}
		visited[dep] = struct{}{}

		// Nested classes are not compilation targets, but their own
		// dependents still are, so they stay on the walk.
		if !dep.IsNested() {
			accumulated[dep] = struct{}{}
		}

		next := r.graph.DependentsOf(dep)
		if next.IsDependencyToAll() {
			return domain.AllDependents()
		}
		for d := range next.Classes() {
			frontier = append(frontier, d)
		}
	}

	// A cycle may have routed the walk back to the start; a class is never
	// a dependent of itself.
	delete(accumulated, name)

	classes := make([]domain.ClassName, 0, len(accumulated))
	for c := range accumulated {
		classes = append(classes, c)
	}
	return domain.DependentsOn(classes...)
}
