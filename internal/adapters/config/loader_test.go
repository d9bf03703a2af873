package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/javelin/internal/adapters/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "javelin.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `version: "1"
analysis:
  classes: out/classes
  report: out/jdeps.txt
  packageRoots:
    - com.example
    - com.example  # duplicate on purpose
    - com.acme
  fullRebuildTriggers:
    - com.example.processor.
snapshot:
  path: out/graph.json
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "out/classes", cfg.Analysis.ClassesDir)
	assert.Equal(t, "out/jdeps.txt", cfg.Analysis.Report)
	assert.Equal(t, []string{"com.acme", "com.example"}, cfg.Analysis.PackageRoots)
	assert.Equal(t, []string{"com.example.processor."}, cfg.Analysis.FullRebuildTriggers)
	assert.Equal(t, "out/graph.json", cfg.Snapshot.Path)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `version: "1"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultClassesDir, cfg.Analysis.ClassesDir)
	assert.Equal(t, config.DefaultReportPath, cfg.Analysis.Report)
	assert.Equal(t, config.DefaultSnapshotPath, cfg.Snapshot.Path)
	assert.Nil(t, cfg.Analysis.PackageRoots)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "javelin.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "analysis: [not: a mapping\n")
	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestFileConfigLoader_Load(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "javelin.yaml"), []byte("version: \"1\"\n"), 0o600))

	loader := &config.FileConfigLoader{Filename: "javelin.yaml"}
	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultReportPath, cfg.Analysis.Report)
}
