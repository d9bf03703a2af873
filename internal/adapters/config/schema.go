package config

// Javelinfile represents the structure of the javelin.yaml configuration file.
type Javelinfile struct {
	Version  string      `yaml:"version"`
	Analysis AnalysisDTO `yaml:"analysis"`
	Snapshot SnapshotDTO `yaml:"snapshot"`
}

// AnalysisDTO describes the dependency analysis inputs.
type AnalysisDTO struct {
	Classes             string   `yaml:"classes"`
	Report              string   `yaml:"report"`
	PackageRoots        []string `yaml:"packageRoots"`
	FullRebuildTriggers []string `yaml:"fullRebuildTriggers"`
}

// SnapshotDTO describes where the graph snapshot is persisted.
type SnapshotDTO struct {
	Path string `yaml:"path"`
}
