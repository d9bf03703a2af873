package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
)

// TestGraftDependencies ensures that the dependency injection graph is valid
// at test time.
func TestGraftDependencies(t *testing.T) {
	// graft.AssertDepsValid infers dependency IDs from the package name of
	// the interface used in Dep[T]. All of our nodes resolve interfaces from
	// the shared ports package, which the static analysis cannot tell apart.
	t.Skip("Skipping Graft validation due to static analysis limitation with shared ports package")
	graft.AssertDepsValid(t, "../../internal")
}
