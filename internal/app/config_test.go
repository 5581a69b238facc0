package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Action:    ActionVectorQuality,
		Provider:  "reference",
		ConfigDir: "config",
		OutputDir: "output",
		Stem:      "validate",
		InputFile: "input.txt",
		Forks:     2,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name      string
		mutate    func(*Config)
		expectErr bool
	}{
		{name: "valid parent config", mutate: func(c *Config) {}},
		{name: "unknown action", mutate: func(c *Config) { c.Action = "segment" }, expectErr: true},
		{name: "empty provider", mutate: func(c *Config) { c.Provider = "" }, expectErr: true},
		{name: "missing manifest", mutate: func(c *Config) { c.InputFile = "" }, expectErr: true},
		{name: "zero forks", mutate: func(c *Config) { c.Forks = 0 }, expectErr: true},
		{
			name: "worker mode skips manifest checks",
			mutate: func(c *Config) {
				c.InputFile = ""
				c.Forks = 0
				c.WorkerShard = "out/validate.input.0"
				c.WorkerLog = "out/validate.log.0"
			},
		},
		{
			name: "worker shard without log",
			mutate: func(c *Config) {
				c.WorkerShard = "out/validate.input.0"
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			got, err := NewConfig(cfg)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, &cfg, got)
		})
	}
}

func TestWorkerMode(t *testing.T) {
	cfg := validConfig()
	assert.False(t, cfg.WorkerMode())
	cfg.WorkerShard = "shard"
	assert.True(t, cfg.WorkerMode())
}
