package forks

import "fmt"

// Harness and worker exit codes. Workers report exactly one of Success,
// NotImplemented, or Failure; Usage is reserved for command-line errors in
// the parent.
const (
	ExitSuccess        = 0
	ExitFailure        = 1
	ExitUsage          = 2
	ExitNotImplemented = 3
)

// Result is the termination record of one worker process.
type Result struct {
	Shard    string
	PID      int
	ExitCode int
	// Signal is non-empty when the worker was terminated by a signal
	// rather than exiting; ExitCode is meaningless in that case.
	Signal string
}

func (r Result) String() string {
	if r.Signal != "" {
		return fmt.Sprintf("pid %d (shard %s) terminated by signal %s", r.PID, r.Shard, r.Signal)
	}
	return fmt.Sprintf("pid %d (shard %s) exited with code %d", r.PID, r.Shard, r.ExitCode)
}

// Aggregate reduces all worker termination records to one harness exit
// status. The run succeeds only when every worker exited normally with
// Success or NotImplemented; a signal-terminated worker or any other exit
// code degrades the aggregate to Failure.
//
// NotImplemented deliberately does not degrade the run: "this optional
// capability is absent" is a legitimate provider answer, not a crash.
func Aggregate(results []Result) int {
	status := ExitSuccess
	for _, r := range results {
		if r.Signal != "" {
			status = ExitFailure
			continue
		}
		switch r.ExitCode {
		case ExitSuccess, ExitNotImplemented:
		default:
			status = ExitFailure
		}
	}
	return status
}
