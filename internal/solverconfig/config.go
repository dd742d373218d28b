// Package solverconfig persists optional solver tuning as a YAML
// file: depth bound, shuffle seed, and a verbose toggle that dumps the
// dealt layout before solving.
package solverconfig

import (
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the solver's tunable options. MaxBound generalizes the
// depth cap the search package otherwise hardcodes: the cap is
// empirical, so it is exposed here rather than kept as an untunable
// constant.
type Config struct {
	file string

	MaxBound int  `yaml:"max_bound"`
	Seed     int  `yaml:"seed"`
	Verbose  bool `yaml:"verbose"`
}

// Default returns the out-of-the-box configuration: the solver's
// documented depth cap, no fixed shuffle seed (deck comes from the
// deck file), and no layout dump.
func Default() *Config {
	return &Config{MaxBound: 256, Seed: -1, Verbose: false}
}

// Path returns the default config file location under the user's home
// directory.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".klondikesolve", "solver.yaml")
}

// Load reads a config from path, falling back to Default when the file
// does not exist. A malformed file is reported as an error rather than
// silently ignored: unlike window geometry, a bad depth bound changes
// the solver's observable behavior.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.file = path
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.file = path
	return cfg, nil
}

// Save writes cfg back to its file, creating the parent directory if
// needed. Failures are logged at debug level and swallowed: a failed
// preference save should not abort a solve in progress.
func (c *Config) Save() {
	if c.file == "" {
		c.file = Path()
	}
	if err := os.MkdirAll(filepath.Dir(c.file), 0o755); err != nil {
		slog.Debug("create solver config dir", "error", err)
		return
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		slog.Debug("encode solver config", "error", err)
		return
	}
	if err := os.WriteFile(c.file, data, 0o644); err != nil {
		slog.Debug("write solver config", "error", err)
	}
}
