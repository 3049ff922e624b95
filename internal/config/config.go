// Package config loads tabview configuration from YAML files with
// environment overrides. Resolution order: built-in defaults, then the
// config file, then TABVIEW_* environment variables. CLI flags override
// all of these at the command layer.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/rshade/tabview/internal/dataview"
	"github.com/rshade/tabview/internal/logging"
)

// Environment variable names recognized by ApplyEnv.
const (
	EnvPageSize  = "TABVIEW_PAGE_SIZE"
	EnvDataDir   = "TABVIEW_DATA_DIR"
	EnvLogLevel  = "TABVIEW_LOG_LEVEL"
	EnvLogFormat = "TABVIEW_LOG_FORMAT"
	EnvLogFile   = "TABVIEW_LOG_FILE"
)

// FileName is searched in the working directory and the home directory
// when no explicit path is given.
const FileName = ".tabview.yaml"

// ErrVersionConstraint reports a build that does not satisfy the config's
// requires expression.
var ErrVersionConstraint = errors.New("version does not satisfy config requires")

// Config is the resolved tabview configuration.
type Config struct {
	// PageSize is the default rows-per-page for views and the browser.
	PageSize int `yaml:"page_size"`

	// DataDir is the base directory datasets are resolved against.
	DataDir string `yaml:"data_dir"`

	// Requires optionally pins a semver constraint the running binary
	// must satisfy, e.g. ">= 0.2.0". Useful when a shared config relies
	// on newer flags.
	Requires string `yaml:"requires,omitempty"`

	// Logging configures the zerolog factory.
	Logging logging.Config `yaml:"logging"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		PageSize: dataview.DefaultPageSize,
		DataDir:  ".",
		Logging: logging.Config{
			Level:  "info",
			Format: logging.FormatConsole,
		},
	}
}

// Load resolves the configuration: defaults, overlaid with the YAML file
// at path, overlaid with environment variables. An empty path searches the
// working directory and then the home directory for .tabview.yaml; a
// missing default file is not an error, a missing explicit one is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = findDefaultFile()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
			}
		case explicit:
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// findDefaultFile returns the first default config file that exists, or
// the empty string.
func findDefaultFile() string {
	candidates := []string{FileName}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, FileName))
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// DefaultPath returns the global config file path in the home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, FileName), nil
}

// Save writes the configuration as YAML to path.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ApplyEnv overlays TABVIEW_* environment variables onto the config.
func (c *Config) ApplyEnv() {
	c.PageSize = getEnvAsInt(EnvPageSize, c.PageSize)
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Logging.File = v
	}
}

// Validate rejects configurations the view layer cannot honor.
func (c Config) Validate() error {
	if c.PageSize < 1 {
		return fmt.Errorf("page_size must be >= 1, got %d", c.PageSize)
	}
	if c.Requires != "" {
		if _, err := semver.NewConstraint(c.Requires); err != nil {
			return fmt.Errorf("invalid requires constraint %q: %w", c.Requires, err)
		}
	}
	return nil
}

// CheckRequires verifies the running binary version against the config's
// requires constraint. Development builds ("dev" or empty) skip the check,
// as do configs without a constraint.
func (c Config) CheckRequires(version string) error {
	if c.Requires == "" || version == "" || version == "dev" {
		return nil
	}

	constraint, err := semver.NewConstraint(c.Requires)
	if err != nil {
		return fmt.Errorf("invalid requires constraint %q: %w", c.Requires, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("invalid build version %q: %w", version, err)
	}

	if !constraint.Check(v) {
		return fmt.Errorf("%w: have %s, need %s", ErrVersionConstraint, v, c.Requires)
	}
	return nil
}

// getEnvAsInt reads an integer environment variable, keeping fallback on
// absence or parse failure.
func getEnvAsInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}
