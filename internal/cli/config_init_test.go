package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/tabview/internal/config"
)

func TestConfigInitCmd_WritesLocalFile(t *testing.T) {
	isolateEnv(t)

	out, err := executeCommand(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized at .tabview.yaml")

	data, err := os.ReadFile(config.FileName)
	require.NoError(t, err)
	assert.Contains(t, string(data), "page_size: 10")
	assert.Contains(t, string(data), "level: info")
}

func TestConfigInitCmd_WritesGlobalFile(t *testing.T) {
	isolateEnv(t)

	out, err := executeCommand(t, "config", "init", "--global")
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	globalPath := filepath.Join(home, config.FileName)

	assert.Contains(t, out, "Configuration initialized at "+globalPath)
	_, statErr := os.Stat(globalPath)
	require.NoError(t, statErr)
}

func TestConfigInitCmd_RefusesOverwrite(t *testing.T) {
	isolateEnv(t)

	_, err := executeCommand(t, "config", "init")
	require.NoError(t, err)

	_, err = executeCommand(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.Contains(t, err.Error(), "--force")
}

func TestConfigInitCmd_ForceOverwrites(t *testing.T) {
	isolateEnv(t)

	_, err := executeCommand(t, "config", "init")
	require.NoError(t, err)

	_, err = executeCommand(t, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigInitCmd_InitializedFileLoads(t *testing.T) {
	isolateEnv(t)

	_, err := executeCommand(t, "config", "init")
	require.NoError(t, err)

	out, err := executeCommand(t, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
}
