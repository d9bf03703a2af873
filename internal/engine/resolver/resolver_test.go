package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/javelin/internal/core/domain"
	"go.trai.ch/javelin/internal/engine/resolver"
)

func cls(name string) domain.ClassName {
	return domain.NewClassName(name)
}

// buildGraph declares edges as dependent -> dependency, mirroring how an
// analyzer feeds the builder.
func buildGraph(edges map[string][]string, toAll ...string) *domain.DependencyGraph {
	b := domain.NewGraphBuilder()
	for from, tos := range edges {
		for _, to := range tos {
			b.AddDependency(cls(from), cls(to))
		}
	}
	for _, name := range toAll {
		b.MarkDependencyToAll(cls(name))
	}
	return b.Build()
}

func TestRelevantDependents_EmptyGraph(t *testing.T) {
	r := resolver.New(buildGraph(nil))

	deps := r.RelevantDependents(cls("com.example.X"))
	assert.True(t, deps.IsEmpty())
	assert.False(t, deps.IsDependencyToAll())
}

func TestRelevantDependents_ClassAbsentFromGraph(t *testing.T) {
	r := resolver.New(buildGraph(map[string][]string{
		"com.example.B": {"com.example.A"},
	}))

	deps := r.RelevantDependents(cls("com.example.Unrelated"))
	assert.True(t, deps.IsEmpty())
}

func TestRelevantDependents_Transitive(t *testing.T) {
	// B depends on A, C depends on B: changing A affects both.
	r := resolver.New(buildGraph(map[string][]string{
		"com.example.B": {"com.example.A"},
		"com.example.C": {"com.example.B"},
	}))

	deps := r.RelevantDependents(cls("com.example.A"))
	require.False(t, deps.IsDependencyToAll())
	assert.Equal(t, []string{"com.example.B", "com.example.C"}, deps.Names())
}

func TestRelevantDependents_SelfExclusion(t *testing.T) {
	// A -> B -> A cycle routes the walk back to the start.
	r := resolver.New(buildGraph(map[string][]string{
		"com.example.B": {"com.example.A"},
		"com.example.A": {"com.example.B"},
	}))

	deps := r.RelevantDependents(cls("com.example.A"))
	require.False(t, deps.IsDependencyToAll())
	assert.False(t, deps.Contains(cls("com.example.A")), "a class is never a dependent of itself")
	assert.Equal(t, []string{"com.example.B"}, deps.Names())
}

func TestRelevantDependents_TerminatesOnCycle(t *testing.T) {
	// A1 <- A2 <- A3 <- A4 <- A1.
	r := resolver.New(buildGraph(map[string][]string{
		"com.example.A2": {"com.example.A1"},
		"com.example.A3": {"com.example.A2"},
		"com.example.A4": {"com.example.A3"},
		"com.example.A1": {"com.example.A4"},
	}))

	deps := r.RelevantDependents(cls("com.example.A1"))
	require.False(t, deps.IsDependencyToAll())
	assert.Equal(t, []string{"com.example.A2", "com.example.A3", "com.example.A4"}, deps.Names())
}

func TestRelevantDependents_NestedClassesFiltered(t *testing.T) {
	// Nested dependents never appear in the result, however deep.
	r := resolver.New(buildGraph(map[string][]string{
		"com.example.B":           {"com.example.A"},
		"com.example.Outer$Inner": {"com.example.B"},
	}))

	deps := r.RelevantDependents(cls("com.example.A"))
	require.False(t, deps.IsDependencyToAll())
	assert.Equal(t, []string{"com.example.B"}, deps.Names())
}

func TestRelevantDependents_NestedClassStillExpands(t *testing.T) {
	// The nested class is filtered from the result but its own dependents
	// must still be reached through it.
	r := resolver.New(buildGraph(map[string][]string{
		"com.example.Outer$Inner": {"com.example.A"},
		"com.example.C":           {"com.example.Outer$Inner"},
	}))

	deps := r.RelevantDependents(cls("com.example.A"))
	require.False(t, deps.IsDependencyToAll())
	assert.Equal(t, []string{"com.example.C"}, deps.Names())
}

func TestRelevantDependents_DirectDependencyToAll(t *testing.T) {
	r := resolver.New(buildGraph(nil, "com.example.Processor"))

	deps := r.RelevantDependents(cls("com.example.Processor"))
	assert.True(t, deps.IsDependencyToAll())
}

func TestRelevantDependents_AbsorptionViaReachableClass(t *testing.T) {
	// B depends on A, and B's own dependents are untrackable: the whole
	// answer degrades, even though the C branch is concrete.
	r := resolver.New(buildGraph(map[string][]string{
		"com.example.B": {"com.example.A"},
		"com.example.C": {"com.example.A"},
	}, "com.example.B"))

	deps := r.RelevantDependents(cls("com.example.A"))
	assert.True(t, deps.IsDependencyToAll())
	assert.Empty(t, deps.Names(), "no partial concrete progress may leak out")
}

func TestRelevantDependents_DiamondVisitedOnce(t *testing.T) {
	// B and C both depend on A, D depends on both: D appears exactly once.
	r := resolver.New(buildGraph(map[string][]string{
		"com.example.B": {"com.example.A"},
		"com.example.C": {"com.example.A"},
		"com.example.D": {"com.example.B", "com.example.C"},
	}))

	deps := r.RelevantDependents(cls("com.example.A"))
	require.False(t, deps.IsDependencyToAll())
	assert.Equal(t, []string{"com.example.B", "com.example.C", "com.example.D"}, deps.Names())
}

func TestRelevantDependents_Scenario(t *testing.T) {
	// graph: A <- {B, Outer$Inner}, B <- {C}.
	r := resolver.New(buildGraph(map[string][]string{
		"com.example.B":           {"com.example.A"},
		"com.example.Outer$Inner": {"com.example.A"},
		"com.example.C":           {"com.example.B"},
	}))

	deps := r.RelevantDependents(cls("com.example.A"))
	require.False(t, deps.IsDependencyToAll())
	assert.Equal(t, []string{"com.example.B", "com.example.C"}, deps.Names())
}

func TestRelevantDependents_Idempotent(t *testing.T) {
	r := resolver.New(buildGraph(map[string][]string{
		"com.example.B": {"com.example.A"},
		"com.example.C": {"com.example.B"},
	}))

	first := r.RelevantDependents(cls("com.example.A"))
	second := r.RelevantDependents(cls("com.example.A"))
	assert.Equal(t, first.Names(), second.Names())
	assert.Equal(t, first.IsDependencyToAll(), second.IsDependencyToAll())
}

func TestRelevantDependents_ConcurrentQueries(t *testing.T) {
	r := resolver.New(buildGraph(map[string][]string{
		"com.example.B": {"com.example.A"},
		"com.example.C": {"com.example.B"},
		"com.example.D": {"com.example.C"},
	}))

	done := make(chan []string, 8)
	for range 8 {
		go func() {
			done <- r.RelevantDependents(cls("com.example.A")).Names()
		}()
	}
	want := []string{"com.example.B", "com.example.C", "com.example.D"}
	for range 8 {
		assert.Equal(t, want, <-done)
	}
}
