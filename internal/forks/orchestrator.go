package forks

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/vk/qualbench/internal/ctxlog"
)

// WorkerSpec carries the settings every worker needs to rebuild its half of
// the run: which action to perform, which provider to load, and where the
// provider's configuration lives. Logging settings are forwarded so worker
// diagnostics match the parent's.
type WorkerSpec struct {
	Action    string
	Provider  string
	ConfigDir string
	LogLevel  string
	LogFormat string
}

// Orchestrator spawns one worker process per shard and joins them.
//
// The original harness duplicated the initialized provider into children at
// fork time. The Go runtime cannot fork, so workers are re-executions of the
// harness binary that run Initialize themselves; the parent's single early
// Initialize still validates configuration before anything is spawned.
type Orchestrator struct {
	executable string
	spec       WorkerSpec
}

// New creates an Orchestrator that re-executes the current binary.
func New(spec WorkerSpec) (*Orchestrator, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve harness executable: %w", err)
	}
	return &Orchestrator{executable: exe, spec: spec}, nil
}

// workerArgs builds the hidden worker-mode command line for one shard.
func (o *Orchestrator) workerArgs(shardPath, logPath string) []string {
	return []string{
		o.spec.Action,
		"-worker-shard", shardPath,
		"-worker-log", logPath,
		"-p", o.spec.Provider,
		"-c", o.spec.ConfigDir,
		"-log-level", o.spec.LogLevel,
		"-log-format", o.spec.LogFormat,
	}
}

// Run spawns one worker per shard, blocks until every worker has terminated,
// and returns the aggregated harness exit status. shards and logs correspond
// index-wise; the paths are disjoint per worker, so the children share
// nothing but the filesystem.
func (o *Orchestrator) Run(ctx context.Context, shards, logs []string) (int, error) {
	logger := ctxlog.FromContext(ctx)
	if len(shards) != len(logs) {
		return ExitFailure, fmt.Errorf("shard/log count mismatch: %d vs %d", len(shards), len(logs))
	}

	cmds := make([]*exec.Cmd, len(shards))
	for i, shard := range shards {
		cmd := exec.Command(o.executable, o.workerArgs(shard, logs[i])...)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Start(); err != nil {
			// A spawn failure is fatal, but children already started must
			// still be joined before reporting it.
			for _, started := range cmds[:i] {
				started.Wait()
			}
			return ExitFailure, fmt.Errorf("failed to spawn worker for shard %s: %w", shard, err)
		}
		logger.Debug("Worker spawned.", "shard", shard, "pid", cmd.Process.Pid)
		cmds[i] = cmd
	}

	// Join loop: the parent does no shard work itself and blocks here until
	// every child is gone, whatever order they finish in.
	results := make([]Result, len(cmds))
	for i, cmd := range cmds {
		err := cmd.Wait()
		res := Result{Shard: shards[i], PID: cmd.Process.Pid}
		state := cmd.ProcessState
		if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			res.Signal = ws.Signal().String()
			logger.Error("Worker terminated by signal.", "pid", res.PID, "shard", res.Shard, "signal", res.Signal)
		} else {
			res.ExitCode = state.ExitCode()
			if err != nil && res.ExitCode == ExitSuccess {
				// Wait failed for a reason other than the child's status.
				res.ExitCode = ExitFailure
			}
			logger.Debug("Worker exited.", "pid", res.PID, "shard", res.Shard, "code", res.ExitCode)
		}
		results[i] = res
	}

	return Aggregate(results), nil
}
