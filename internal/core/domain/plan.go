package domain

import "slices"

// RecompilationPlan is the outcome of impact analysis for one set of changed
// classes. A plan is either a full rebuild or a finite, sorted list of
// compilation targets. The zero value is an empty incremental plan.
type RecompilationPlan struct {
	// FullRebuild is set when precise impact could not be determined for at
	// least one class reachable from the changes. The orchestrator must then
	// recompile the entire compilation unit set for the round.
	FullRebuild bool

	// Reason names the changed class whose closure forced the full rebuild.
	// Empty for incremental plans.
	Reason string

	// Classes is the sorted set of top-level class names to recompile,
	// including the changed classes themselves. Empty when FullRebuild is set.
	Classes []string
}

// FullRebuildPlan creates a plan demanding recompilation of everything,
// recording which changed class triggered it.
func FullRebuildPlan(reason ClassName) *RecompilationPlan {
	return &RecompilationPlan{
		FullRebuild: true,
		Reason:      reason.String(),
	}
}

// IncrementalPlan creates a plan for the given class names. The input is
// deduplicated and sorted so that equal impact sets produce equal plans.
func IncrementalPlan(classes []string) *RecompilationPlan {
	sorted := make([]string, len(classes))
	copy(sorted, classes)
	slices.Sort(sorted)
	return &RecompilationPlan{
		Classes: slices.Compact(sorted),
	}
}
