// Package snapshot persists the frozen dependency graph between
// incremental-compilation rounds.
package snapshot

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/javelin/internal/core/domain"
	"go.trai.ch/javelin/internal/core/ports"
	"go.trai.ch/zerr"
)

// dependencyToAllMarker encodes the DependencyToAll variant in the snapshot
// file. Binary class names always contain a package separator, so the marker
// cannot collide with a real name.
const dependencyToAllMarker = "*"

var _ ports.SnapshotStore = (*Store)(nil)

// document is the on-disk snapshot layout.
type document struct {
	Info       domain.SnapshotInfo `json:"info"`
	Dependents map[string][]string `json:"dependents"`
}

// Store implements ports.SnapshotStore using a flat JSON file.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new snapshot Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the snapshot at path. It returns ok=false without error when no
// snapshot exists or when the recorded report fingerprint does not match,
// meaning the analyzer must run again.
func (s *Store) Load(path, reportFingerprint string) (*domain.DependencyGraph, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path comes from project config
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, zerr.Wrap(err, "failed to read graph snapshot")
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false, zerr.Wrap(err, "failed to unmarshal graph snapshot")
	}

	if doc.Info.ReportFingerprint != reportFingerprint {
		return nil, false, nil
	}

	b := domain.NewGraphBuilder()
	for class, dependents := range doc.Dependents {
		name := domain.NewClassName(class)
		for _, dep := range dependents {
			if dep == dependencyToAllMarker {
				b.MarkDependencyToAll(name)
				continue
			}
			b.AddDependency(domain.NewClassName(dep), name)
		}
	}
	return b.Build(), true, nil
}

// Save persists the graph and its metadata at path, replacing any previous
// snapshot.
func (s *Store) Save(path string, graph *domain.DependencyGraph, info domain.SnapshotInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := document{
		Info:       info,
		Dependents: make(map[string][]string, graph.Size()),
	}
	for class := range graph.Classes() {
		deps := graph.DependentsOf(class)
		if deps.IsDependencyToAll() {
			doc.Dependents[class.String()] = []string{dependencyToAllMarker}
			continue
		}
		doc.Dependents[class.String()] = deps.Names()
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal graph snapshot")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create snapshot directory")
	}

	//nolint:gosec // Path comes from project config
	if err := os.WriteFile(filepath.Clean(path), data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write graph snapshot")
	}

	return nil
}
