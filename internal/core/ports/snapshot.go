package ports

import "go.trai.ch/javelin/internal/core/domain"

// SnapshotStore defines the interface for persisting the frozen dependency
// graph between compilation rounds.
//
//go:generate go run go.uber.org/mock/mockgen -source=snapshot.go -destination=mocks/mock_snapshot.go -package=mocks
type SnapshotStore interface {
	// Load reads the snapshot at path if it exists and its recorded report
	// fingerprint matches the given one. It returns ok=false, without error,
	// when there is no usable snapshot.
	Load(path, reportFingerprint string) (graph *domain.DependencyGraph, ok bool, err error)

	// Save persists the graph and its metadata at path, replacing any
	// previous snapshot.
	Save(path string, graph *domain.DependencyGraph, info domain.SnapshotInfo) error
}
