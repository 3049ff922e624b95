package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/tabview/internal/logging"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tabview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
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

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, logging.FormatConsole, cfg.Logging.Format)
	assert.Empty(t, cfg.Requires)
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := writeConfig(t, `
page_size: 25
data_dir: /srv/datasets
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, "/srv/datasets", cfg.DataDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, logging.FormatJSON, cfg.Logging.Format)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "page_size: 5\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.PageSize)
	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_NoDefaultFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().PageSize, cfg.PageSize)
}

func TestLoad_DefaultFileInWorkingDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tabview.yaml"), []byte("page_size: 3\n"), 0600))
	chdir(t, dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.PageSize)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "page_size: [not an int\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tabview.yaml")

	cfg := Default()
	cfg.PageSize = 7
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, loaded.PageSize)
	assert.Equal(t, cfg.DataDir, loaded.DataDir)
	assert.Equal(t, cfg.Logging, loaded.Logging)
}

func TestDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, FileName), path)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvPageSize, "42")
	t.Setenv(EnvDataDir, "/data")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvLogFile, "/tmp/tabview.log")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, 42, cfg.PageSize)
	assert.Equal(t, "/data", cfg.DataDir)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/tmp/tabview.log", cfg.Logging.File)
}

func TestApplyEnv_BadIntKeepsFallback(t *testing.T) {
	t.Setenv(EnvPageSize, "lots")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, Default().PageSize, cfg.PageSize)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults valid", mutate: func(*Config) {}},
		{name: "zero page size", mutate: func(c *Config) { c.PageSize = 0 }, wantErr: true},
		{name: "negative page size", mutate: func(c *Config) { c.PageSize = -1 }, wantErr: true},
		{name: "valid requires", mutate: func(c *Config) { c.Requires = ">= 0.1.0" }},
		{name: "garbage requires", mutate: func(c *Config) { c.Requires = "not-a-constraint!!" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckRequires(t *testing.T) {
	tests := []struct {
		name     string
		requires string
		version  string
		wantErr  error
	}{
		{name: "no constraint", requires: "", version: "0.1.0"},
		{name: "dev build skips check", requires: ">= 9.0.0", version: "dev"},
		{name: "empty version skips check", requires: ">= 9.0.0", version: ""},
		{name: "satisfied", requires: ">= 0.2.0", version: "0.3.1"},
		{name: "satisfied with v prefix", requires: ">= 0.2.0", version: "v0.2.0"},
		{name: "not satisfied", requires: ">= 2.0.0", version: "1.9.0", wantErr: ErrVersionConstraint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Requires = tt.requires
			err := cfg.CheckRequires(tt.version)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
