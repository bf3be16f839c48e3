package app

import (
	"errors"
	"path/filepath"
)

// DefaultBaseConfig is the shipped base configuration the solver runs
// against unless told otherwise.
const DefaultBaseConfig = "configs/base/wr_sweep_D_aggr_seed_9001.v1.1.toml"

// Config holds the resolved workspace layout and logging options for one
// App instance.
type Config struct {
	Root         string // workspace root; all other paths resolve under it
	BaseConfig   string // shipped base layer (read-only)
	OverridePath string // persisted global override layer
	OverridesDir string // per-experiment override artifacts
	LogsDir      string // solver logs
	SummariesDir string // CSV/JSON summary artifacts

	LogFormat string
	LogLevel  string
}

// NewConfig validates the configuration and fills derived paths from Root.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Root == "" {
		return nil, errors.New("workspace root must not be empty")
	}
	if cfg.BaseConfig == "" {
		cfg.BaseConfig = filepath.Join(cfg.Root, DefaultBaseConfig)
	}
	if cfg.OverridePath == "" {
		cfg.OverridePath = filepath.Join(cfg.Root, "configs", "global_hyper.toml")
	}
	if cfg.OverridesDir == "" {
		cfg.OverridesDir = filepath.Join(cfg.Root, "overrides")
	}
	if cfg.LogsDir == "" {
		cfg.LogsDir = filepath.Join(cfg.Root, "results", "logs")
	}
	if cfg.SummariesDir == "" {
		cfg.SummariesDir = filepath.Join(cfg.Root, "results", "summaries")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return &cfg, nil
}
