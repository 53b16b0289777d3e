package cli

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticktock-project/ticktock/pkg/config"
)

// runCommand executes the root command in-process and returns what it
// printed to stdout.
func runCommand(t *testing.T, args ...string) string {
	t.Helper()

	// Flag variables survive between in-process invocations; reset the
	// ones that change behavior when stale.
	addName, addDZ, envHint, reportExport = "", "", "", ""
	jsonOutput = false

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	rootCmd.SetArgs(args)
	execErr := rootCmd.Execute()

	w.Close()
	os.Stdout = old
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, execErr, "command %v", args)
	return string(out)
}

func newTestRoot(t *testing.T) {
	t.Helper()
	for _, v := range []string{
		config.EnvVarEnvironment, config.EnvVarDistributed,
		"TICKTOCK_DEBUG", "TICKTOCK_AUTO_SAVE", "TICKTOCK_DATA_FILE",
	} {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
	rootDir = t.TempDir()
	t.Cleanup(func() { rootDir = "" })
}

func TestCLI_ProjectLifecycle(t *testing.T) {
	newTestRoot(t)

	out := runCommand(t, "project", "add", "acme", "--name", "ACME Corp", "--dz", "DZ-100")
	assert.Contains(t, out, "added project acme")

	out = runCommand(t, "sub", "add", "acme", "review")
	assert.Contains(t, out, "added acme/review")

	out = runCommand(t, "project", "list")
	assert.Contains(t, out, "ACME Corp")
	assert.Contains(t, out, "acme/review")

	out = runCommand(t, "sub", "remove", "acme", "review")
	assert.Contains(t, out, "removed acme/review")

	out = runCommand(t, "project", "remove", "acme")
	assert.Contains(t, out, "removed project acme")
}

func TestCLI_TrackingRoundTrip(t *testing.T) {
	newTestRoot(t)

	runCommand(t, "project", "add", "acme")

	out := runCommand(t, "status")
	assert.Contains(t, out, "idle")

	out = runCommand(t, "start", "acme")
	assert.Contains(t, out, "tracking acme")

	// Separate invocations share state through the persisted ledger.
	out = runCommand(t, "status")
	assert.Contains(t, out, "running: acme")

	out = runCommand(t, "stop")
	assert.Contains(t, out, "stopped acme")

	out = runCommand(t, "status")
	assert.Contains(t, out, "idle")
}

func TestCLI_StopWhileIdle(t *testing.T) {
	newTestRoot(t)
	out := runCommand(t, "stop")
	assert.Contains(t, out, "nothing to stop")
}

func TestCLI_ConfigShowAndSet(t *testing.T) {
	newTestRoot(t)

	out := runCommand(t, "config", "show")
	assert.Contains(t, out, "environment:")
	assert.Contains(t, out, "auto-save interval: 300s")

	out = runCommand(t, "config", "set", "max_backups", "5")
	assert.Contains(t, out, "max_backups = 5")

	out = runCommand(t, "config", "get", "max_backups")
	assert.Contains(t, out, "max_backups = 5")
}

func TestCLI_ReportRange(t *testing.T) {
	newTestRoot(t)

	runCommand(t, "project", "add", "acme")
	out := runCommand(t, "report", "range", "acme", "2026-08-01", "2026-08-31")
	assert.Contains(t, out, "00:00:00")
}

func TestCLI_BackupsListEmpty(t *testing.T) {
	newTestRoot(t)
	out := runCommand(t, "backups", "list")
	assert.Contains(t, out, "no backups")
}
