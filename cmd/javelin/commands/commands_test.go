package commands_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/javelin/cmd/javelin/commands"
	"go.trai.ch/javelin/internal/adapters/config"
	"go.trai.ch/javelin/internal/adapters/fs"
	"go.trai.ch/javelin/internal/adapters/jdeps"
	"go.trai.ch/javelin/internal/adapters/logger"
	"go.trai.ch/javelin/internal/adapters/snapshot"
	"go.trai.ch/javelin/internal/adapters/telemetry"
	"go.trai.ch/javelin/internal/app"
	"go.trai.ch/javelin/internal/engine/planner"
)

func newCLI(t *testing.T, dir string) (*commands.CLI, *bytes.Buffer) {
	t.Helper()

	log := logger.New()
	if l, ok := log.(*logger.Logger); ok {
		l.SetOutput(io.Discard)
	}
	noop := telemetry.NewNoOp()

	a := app.New(
		&config.FileConfigLoader{Filename: "javelin.yaml"},
		jdeps.NewAnalyzer(log),
		snapshot.NewStore(),
		fs.NewFingerprinter(),
		planner.NewPlanner(log, noop),
		log,
		noop,
	).WithWorkdir(dir)

	var out bytes.Buffer
	a.SetOutput(&out)
	return commands.New(a), &out
}

// setupProject writes a config and a jdeps report into dir, using absolute
// paths so the test does not depend on the process working directory.
func setupProject(t *testing.T, dir string) {
	t.Helper()

	report := filepath.Join(dir, "jdeps.txt")
	reportContent := "   com.example.B    -> com.example.A    classes\n" +
		"   com.example.C    -> com.example.B    classes\n"
	require.NoError(t, os.WriteFile(report, []byte(reportContent), 0o600))

	cfg := fmt.Sprintf(`version: "1"
analysis:
  report: %s
  packageRoots:
    - com.example
snapshot:
  path: %s
`, report, filepath.Join(dir, "graph.json"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "javelin.yaml"), []byte(cfg), 0o600))
}

func TestPlanCommand(t *testing.T) {
	dir := t.TempDir()
	setupProject(t, dir)

	cli, out := newCLI(t, dir)
	cli.SetArgs([]string{"plan", "com.example.A"})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Contains(t, out.String(), "3 classes require recompilation")
	assert.Contains(t, out.String(), "com.example.C")
}

func TestPlanCommand_NoArgsShowsHelp(t *testing.T) {
	cli, out := newCLI(t, t.TempDir())
	cli.SetArgs([]string{"plan"})

	// No changed classes: plan prints usage and succeeds without touching
	// the configuration.
	require.NoError(t, cli.Execute(context.Background()))
	assert.Empty(t, out.String())
}

func TestPlanCommand_MissingConfig(t *testing.T) {
	cli, _ := newCLI(t, t.TempDir())
	cli.SetArgs([]string{"plan", "com.example.A"})

	assert.Error(t, cli.Execute(context.Background()))
}

func TestAnalyzeCommand(t *testing.T) {
	dir := t.TempDir()
	setupProject(t, dir)

	cli, _ := newCLI(t, dir)
	cli.SetArgs([]string{"analyze"})
	require.NoError(t, cli.Execute(context.Background()))

	_, err := os.Stat(filepath.Join(dir, "graph.json"))
	assert.NoError(t, err, "analyze must write the snapshot")
}

func TestVersionCommand(t *testing.T) {
	cli, _ := newCLI(t, t.TempDir())
	cli.SetArgs([]string{"version"})
	assert.NoError(t, cli.Execute(context.Background()))
}
