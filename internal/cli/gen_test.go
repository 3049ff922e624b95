package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenCmd_WritesDataset(t *testing.T) {
	dataDir := isolateEnv(t)

	out, err := executeCommand(t, "gen", "-n", "5", "-o", "demo.json")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 5 records to demo.json")

	data, err := os.ReadFile(filepath.Join(dataDir, "demo.json"))
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 5)

	first := rows[0]
	assert.Equal(t, "Alice Johnson", first["name"])
	assert.Equal(t, "Engineering", first["department"])
	assert.InDelta(t, 95000, first["salary"], 0.001)
	assert.InDelta(t, 32, first["age"], 0.001)
	id, ok := first["id"].(string)
	require.True(t, ok)
	assert.Len(t, id, 26)
}

func TestGenCmd_Defaults(t *testing.T) {
	dataDir := isolateEnv(t)

	out, err := executeCommand(t, "gen")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 10 records to employees.json")

	_, statErr := os.Stat(filepath.Join(dataDir, "employees.json"))
	require.NoError(t, statErr)
}

func TestGenCmd_RejectsNonPositiveCount(t *testing.T) {
	isolateEnv(t)

	_, err := executeCommand(t, "gen", "-n", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count must be >= 1")
}

func TestGenCmd_RefusesOverwrite(t *testing.T) {
	isolateEnv(t)

	_, err := executeCommand(t, "gen", "-o", "team.json")
	require.NoError(t, err)

	// Non-interactive runs cannot be prompted, so this fails outright.
	_, err = executeCommand(t, "gen", "-o", "team.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "team.json already exists")
	assert.Contains(t, err.Error(), "--force")
}

func TestGenCmd_ForceOverwrites(t *testing.T) {
	dataDir := isolateEnv(t)

	_, err := executeCommand(t, "gen", "-n", "3", "-o", "team.json")
	require.NoError(t, err)

	out, err := executeCommand(t, "gen", "-n", "5", "-o", "team.json", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 5 records to team.json")

	data, err := os.ReadFile(filepath.Join(dataDir, "team.json"))
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(data, &rows))
	assert.Len(t, rows, 5)
}

func TestGenCmd_RoundTripsThroughView(t *testing.T) {
	isolateEnv(t)

	_, err := executeCommand(t, "gen", "-n", "3", "-o", "team.json")
	require.NoError(t, err)

	out, err := executeCommand(t, "view", "team.json", "--columns", "name,department")
	require.NoError(t, err)

	assert.Contains(t, out, "Alice Johnson")
	assert.Contains(t, out, "Charlie Brown")
	assert.Contains(t, out, "Rows 1-3 of 3")
}
