package app

import (
	"context"
	"fmt"

	"github.com/vk/qualbench/internal/evaluator"
	"github.com/vk/qualbench/internal/forks"
)

// runWorker is the child half of the run: it re-initializes the provider in
// this process (the Go runtime cannot inherit initialized state across a
// fork) and evaluates exactly one shard.
func (a *App) runWorker(ctx context.Context) (int, error) {
	cfg := a.config

	p, err := a.registry.Lookup(cfg.Provider)
	if err != nil {
		return forks.ExitFailure, err
	}
	if st := p.Initialize(ctx, cfg.ConfigDir); !st.OK() {
		return forks.ExitFailure, fmt.Errorf("initialize() returned error: %s", st)
	}

	outcome, err := evaluator.Run(ctx, p, cfg.WorkerShard, cfg.WorkerLog)
	if err != nil {
		return forks.ExitFailure, err
	}
	if outcome == evaluator.NotImplemented {
		return forks.ExitNotImplemented, nil
	}
	return forks.ExitSuccess, nil
}
