// Package domain contains the core domain models and business logic for the
// class dependency graph.
package domain

import "iter"

// DependencyGraph maps a class's binary name to the set of classes known to
// depend on it. It is built once per incremental-compilation round by an
// analyzer, frozen, and then only read. Absence of a class is semantically
// equivalent to an empty dependents set, never an error.
//
// The freeze happens in GraphBuilder.Build: after that no writer exists, so
// concurrent closure queries need no synchronization.
type DependencyGraph struct {
	dependents map[ClassName]DependentsSet
}

// DependentsOf returns the direct dependents recorded for the given class,
// or the empty variant if the class is unknown to the graph.
func (g *DependencyGraph) DependentsOf(name ClassName) DependentsSet {
	deps, ok := g.dependents[name]
	if !ok {
		return NoDependents()
	}
	return deps
}

// Size returns the number of classes with at least one recorded entry.
func (g *DependencyGraph) Size() int {
	return len(g.dependents)
}

// Classes returns an iterator over every class with a recorded entry.
// Iteration order is unspecified.
func (g *DependencyGraph) Classes() iter.Seq[ClassName] {
	return func(yield func(ClassName) bool) {
		for name := range g.dependents {
			if !yield(name) {
				return
			}
		}
	}
}

// GraphBuilder accumulates reversed dependency edges and produces a frozen
// DependencyGraph. It is not safe for concurrent use; the analyzer populating
// it is single-threaded per round.
type GraphBuilder struct {
	dependents map[ClassName]map[ClassName]struct{}
	toAll      map[ClassName]struct{}
}

// NewGraphBuilder creates an empty GraphBuilder.
func NewGraphBuilder() *GraphBuilder {
	return &GraphBuilder{
		dependents: make(map[ClassName]map[ClassName]struct{}),
		toAll:      make(map[ClassName]struct{}),
	}
}

// AddDependency records that from depends on to, i.e. from becomes a
// dependent of to. Self-edges are dropped: a class is never a dependent of
// itself.
func (b *GraphBuilder) AddDependency(from, to ClassName) {
	if from == to {
		return
	}
	set, ok := b.dependents[to]
	if !ok {
		set = make(map[ClassName]struct{})
		b.dependents[to] = set
	}
	set[from] = struct{}{}
}

// MarkDependencyToAll records that the dependents of the given class cannot
// be tracked precisely. The mark wins over any concrete edges recorded for
// the same class, before or after.
func (b *GraphBuilder) MarkDependencyToAll(name ClassName) {
	b.toAll[name] = struct{}{}
}

// Build freezes the accumulated state into an immutable DependencyGraph.
// The builder must not be used afterwards.
func (b *GraphBuilder) Build() *DependencyGraph {
	g := &DependencyGraph{
		dependents: make(map[ClassName]DependentsSet, len(b.dependents)+len(b.toAll)),
	}
	for name, set := range b.dependents {
		if _, all := b.toAll[name]; all {
			continue
		}
		classes := make([]ClassName, 0, len(set))
		for c := range set {
			classes = append(classes, c)
		}
		g.dependents[name] = DependentsOn(classes...)
	}
	for name := range b.toAll {
		g.dependents[name] = AllDependents()
	}
	b.dependents = nil
	b.toAll = nil
	return g
}
