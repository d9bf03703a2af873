package snapshot_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/javelin/internal/adapters/snapshot"
	"go.trai.ch/javelin/internal/core/domain"
)

func sampleGraph() *domain.DependencyGraph {
	b := domain.NewGraphBuilder()
	b.AddDependency(domain.NewClassName("com.example.B"), domain.NewClassName("com.example.A"))
	b.AddDependency(domain.NewClassName("com.example.C"), domain.NewClassName("com.example.A"))
	b.MarkDependencyToAll(domain.NewClassName("com.example.Processor"))
	return b.Build()
}

func TestStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".javelin", "graph.json")
	store := snapshot.NewStore()
	graph := sampleGraph()

	info := domain.SnapshotInfo{
		ReportFingerprint: "abc123",
		CreatedAt:         time.Now(),
		ClassCount:        graph.Size(),
	}
	require.NoError(t, store.Save(path, graph, info))

	loaded, ok, err := store.Load(path, "abc123")
	require.NoError(t, err)
	require.True(t, ok)

	deps := loaded.DependentsOf(domain.NewClassName("com.example.A"))
	assert.Equal(t, []string{"com.example.B", "com.example.C"}, deps.Names())
	assert.True(t, loaded.DependentsOf(domain.NewClassName("com.example.Processor")).IsDependencyToAll())
}

func TestStore_Load_MissingSnapshot(t *testing.T) {
	store := snapshot.NewStore()

	_, ok, err := store.Load(filepath.Join(t.TempDir(), "graph.json"), "abc123")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Load_StaleFingerprint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	store := snapshot.NewStore()
	require.NoError(t, store.Save(path, sampleGraph(), domain.SnapshotInfo{ReportFingerprint: "old"}))

	_, ok, err := store.Load(path, "new")
	require.NoError(t, err)
	assert.False(t, ok, "mismatched fingerprint must invalidate the snapshot")
}

func TestStore_Load_CorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := snapshot.NewStore()
	_, _, err := store.Load(path, "abc123")
	assert.Error(t, err)
}

func TestStore_Save_ReplacesPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	store := snapshot.NewStore()
	require.NoError(t, store.Save(path, sampleGraph(), domain.SnapshotInfo{ReportFingerprint: "v1"}))

	b := domain.NewGraphBuilder()
	b.AddDependency(domain.NewClassName("com.example.Z"), domain.NewClassName("com.example.Y"))
	require.NoError(t, store.Save(path, b.Build(), domain.SnapshotInfo{ReportFingerprint: "v2"}))

	loaded, ok, err := store.Load(path, "v2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, loaded.DependentsOf(domain.NewClassName("com.example.A")).IsEmpty())
	assert.Equal(t, []string{"com.example.Z"}, loaded.DependentsOf(domain.NewClassName("com.example.Y")).Names())
}
