package domain

// AnalysisConfig describes where class dependency information comes from for
// one project.
type AnalysisConfig struct {
	// ClassesDir is the directory of compiled class files handed to the
	// analyzer tool when no report exists yet.
	ClassesDir string

	// Report is the path of the analyzer's verbose dependency report.
	Report string

	// PackageRoots limits the graph to project classes: only classes whose
	// binary name starts with one of these package prefixes are tracked.
	// Edges to JDK and third-party classes are dropped.
	PackageRoots []string

	// FullRebuildTriggers lists class name prefixes whose dependents cannot
	// be tracked precisely (annotation processors, reflection-heavy code).
	// Matching classes are recorded as DependencyToAll.
	FullRebuildTriggers []string
}

// SnapshotConfig describes where the frozen graph is persisted between
// compilation rounds.
type SnapshotConfig struct {
	Path string
}

// ProjectConfig is the loaded javelin.yaml configuration.
type ProjectConfig struct {
	Analysis AnalysisConfig
	Snapshot SnapshotConfig
}
