package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/tabview/internal/cli"
)

// isolateEnv points config discovery and the data directory at temp dirs so
// tests never touch the developer's real files. It returns the data directory.
func isolateEnv(t *testing.T) string {
	t.Helper()
	dataDir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TABVIEW_DATA_DIR", dataDir)
	t.Setenv("TABVIEW_LOG_LEVEL", "error")
	chdir(t, t.TempDir())
	return dataDir
}

// chdir switches the working directory for the duration of the test,
// restoring the original directory on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

// writeDataset drops a dataset fixture into the data directory.
func writeDataset(t *testing.T, dataDir, name, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, name), []byte(contents), 0o600))
}

// executeCommand runs the root command with args and returns stdout plus the
// execution error. Logs go to stderr and are kept out of the returned output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd("dev")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// employeesJSON is the four-row fixture most command tests share.
const employeesJSON = `[
	{"name": "Alice", "department": "Engineering", "salary": 95000},
	{"name": "Bob", "department": "Marketing", "salary": 75000},
	{"name": "Charlie", "department": "Engineering", "salary": 105000},
	{"name": "Diana", "department": "Sales", "salary": 85000}
]`
