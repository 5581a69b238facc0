package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/vk/qualbench/internal/ctxlog"
	"github.com/vk/qualbench/internal/forks"
	"github.com/vk/qualbench/internal/manifest"
	"github.com/vk/qualbench/internal/provider"
)

// Run executes the harness and returns its process exit code alongside any
// diagnostic error. Worker processes take the shard-evaluation path; the
// parent takes the orchestration path.
func (a *App) Run(ctx context.Context) (int, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	if a.config.WorkerMode() {
		return a.runWorker(ctx)
	}
	return a.runParent(ctx)
}

// runParent performs the strict parent sequence: lookup, version gate, one
// Initialize call, partition, spawn, join. No shard work happens here.
func (a *App) runParent(ctx context.Context) (int, error) {
	cfg := a.config

	p, err := a.registry.Lookup(cfg.Provider)
	if err != nil {
		return forks.ExitFailure, err
	}

	// The interface is a binary contract across independently built
	// components; a silent mismatch would surface as garbage deep inside
	// scoring. Gate before any provider method is invoked.
	if err := provider.CheckVersions(p.Version()); err != nil {
		return forks.ExitFailure, err
	}
	a.logger.Debug("Version gate passed.", "provider", cfg.Provider)

	if st := p.Initialize(ctx, cfg.ConfigDir); !st.OK() {
		return forks.ExitFailure, fmt.Errorf("initialize() returned error: %s", st)
	}
	a.logger.Info("Provider initialized.", "provider", cfg.Provider, "configDir", cfg.ConfigDir)

	shards, err := manifest.Partition(cfg.InputFile, cfg.OutputDir, cfg.Stem, cfg.Forks)
	if err != nil {
		return forks.ExitFailure, fmt.Errorf("an error occurred with processing the input file: %w", err)
	}
	a.logger.Info("Input manifest partitioned.", "shards", len(shards))

	logs := make([]string, len(shards))
	for i := range shards {
		logs[i] = filepath.Join(cfg.OutputDir, cfg.Stem+".log."+strconv.Itoa(i))
	}

	orch, err := forks.New(forks.WorkerSpec{
		Action:    cfg.Action,
		Provider:  cfg.Provider,
		ConfigDir: cfg.ConfigDir,
		LogLevel:  cfg.LogLevel,
		LogFormat: cfg.LogFormat,
	})
	if err != nil {
		return forks.ExitFailure, err
	}

	status, err := orch.Run(ctx, shards, logs)
	if err != nil {
		return forks.ExitFailure, err
	}
	if status != forks.ExitSuccess {
		return status, errors.New("one or more workers did not complete successfully")
	}
	a.logger.Info("All workers finished.", "shards", len(shards))
	return forks.ExitSuccess, nil
}
