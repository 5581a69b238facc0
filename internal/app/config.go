package app

import (
	"errors"
	"fmt"
)

// ActionVectorQuality is the only evaluation action this harness drives.
const ActionVectorQuality = "vectorq"

// Config holds everything one App instance needs to run, for both the
// parent orchestration mode and the hidden worker mode.
type Config struct {
	Action    string
	Provider  string
	ConfigDir string
	OutputDir string
	Stem      string
	InputFile string
	Forks     int

	LogLevel  string
	LogFormat string

	// Worker mode: set only on the re-executed child processes.
	WorkerShard string
	WorkerLog   string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Action != ActionVectorQuality {
		return nil, fmt.Errorf("unknown action %q", cfg.Action)
	}
	if cfg.Provider == "" {
		return nil, errors.New("provider name cannot be empty")
	}

	if cfg.WorkerShard != "" || cfg.WorkerLog != "" {
		if cfg.WorkerShard == "" || cfg.WorkerLog == "" {
			return nil, errors.New("worker mode requires both a shard path and a log path")
		}
		return &cfg, nil
	}

	if cfg.InputFile == "" {
		return nil, errors.New("an input manifest is required")
	}
	if cfg.Forks < 1 {
		return nil, fmt.Errorf("fork count must be at least 1, got %d", cfg.Forks)
	}
	return &cfg, nil
}

// WorkerMode reports whether this process is a spawned shard worker.
func (c *Config) WorkerMode() bool { return c.WorkerShard != "" }
