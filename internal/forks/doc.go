// Package forks is the process orchestrator: it spawns one worker process
// per shard, waits for every child to terminate, and reduces the individual
// exit outcomes to a single harness exit status.
//
// Process-per-shard is deliberate. Vendor providers are not guaranteed to be
// thread-safe, and process isolation means a fatal failure in one shard
// cannot corrupt any sibling's state or partial output.
package forks
