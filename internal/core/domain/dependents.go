package domain

import (
	"iter"
	"slices"
)

type dependentsKind int

const (
	dependentsEmpty dependentsKind = iota
	dependentsConcrete
	dependentsToAll
)

// DependentsSet is the result of a dependency query for one class. It is a
// three-way sum: no known dependents, an exact set of dependent classes, or
// the DependencyToAll sentinel meaning the relationship could not be tracked
// precisely and every class must be assumed affected.
//
// DependencyToAll is absorbing: once it appears anywhere in a transitive
// walk, the overall result is DependencyToAll and any concrete progress is
// meaningless. Callers must never narrow it to a concrete set.
type DependentsSet struct {
	kind    dependentsKind
	classes map[ClassName]struct{}
}

// NoDependents returns the empty variant.
func NoDependents() DependentsSet {
	return DependentsSet{kind: dependentsEmpty}
}

// DependentsOn returns a concrete set containing the given classes.
// With no classes it collapses to the empty variant.
func DependentsOn(classes ...ClassName) DependentsSet {
	if len(classes) == 0 {
		return NoDependents()
	}
	set := make(map[ClassName]struct{}, len(classes))
	for _, c := range classes {
		set[c] = struct{}{}
	}
	return DependentsSet{kind: dependentsConcrete, classes: set}
}

// AllDependents returns the DependencyToAll sentinel.
func AllDependents() DependentsSet {
	return DependentsSet{kind: dependentsToAll}
}

// IsEmpty reports whether the set has no known dependents.
func (s DependentsSet) IsEmpty() bool {
	return s.kind == dependentsEmpty || (s.kind == dependentsConcrete && len(s.classes) == 0)
}

// IsDependencyToAll reports whether the set is the conservative sentinel.
func (s DependentsSet) IsDependencyToAll() bool {
	return s.kind == dependentsToAll
}

// Size returns the number of classes in a concrete set. It is zero for the
// empty variant and zero for DependencyToAll, which has no finite members.
func (s DependentsSet) Size() int {
	return len(s.classes)
}

// Contains reports whether the concrete set includes the given class.
func (s DependentsSet) Contains(c ClassName) bool {
	_, ok := s.classes[c]
	return ok
}

// Classes returns an iterator over the members of a concrete set. The empty
// and DependencyToAll variants yield nothing; callers must check
// IsDependencyToAll before treating the iteration as exhaustive.
func (s DependentsSet) Classes() iter.Seq[ClassName] {
	return func(yield func(ClassName) bool) {
		for c := range s.classes {
			if !yield(c) {
				return
			}
		}
	}
}

// Names returns the member class names sorted lexicographically, for stable
// output and serialization.
func (s DependentsSet) Names() []string {
	names := make([]string, 0, len(s.classes))
	for c := range s.classes {
		names = append(names, c.String())
	}
	slices.Sort(names)
	return names
}
