// Package config provides the configuration loader for javelin.
package config

import (
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/javelin/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Default locations applied when the configuration leaves them unset,
// following the usual JVM build layout.
const (
	DefaultClassesDir   = "build/classes"
	DefaultReportPath   = "build/jdeps.txt"
	DefaultSnapshotPath = ".javelin/graph.json"
)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// Load reads the configuration from the given working directory.
func (l *FileConfigLoader) Load(cwd string) (*domain.ProjectConfig, error) {
	return Load(filepath.Join(cwd, l.Filename))
}

// Load reads a configuration file from the given path.
func Load(path string) (*domain.ProjectConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file Javelinfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	cfg := &domain.ProjectConfig{
		Analysis: domain.AnalysisConfig{
			ClassesDir:          file.Analysis.Classes,
			Report:              file.Analysis.Report,
			PackageRoots:        canonicalizeStrings(file.Analysis.PackageRoots),
			FullRebuildTriggers: canonicalizeStrings(file.Analysis.FullRebuildTriggers),
		},
		Snapshot: domain.SnapshotConfig{
			Path: file.Snapshot.Path,
		},
	}
	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills unset locations with the conventional layout.
func applyDefaults(cfg *domain.ProjectConfig) {
	if cfg.Analysis.ClassesDir == "" {
		cfg.Analysis.ClassesDir = DefaultClassesDir
	}
	if cfg.Analysis.Report == "" {
		cfg.Analysis.Report = DefaultReportPath
	}
	if cfg.Snapshot.Path == "" {
		cfg.Snapshot.Path = DefaultSnapshotPath
	}
}

func canonicalizeStrings(strs []string) []string {
	if len(strs) == 0 {
		return nil
	}
	sorted := make([]string, len(strs))
	copy(sorted, strs)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}
