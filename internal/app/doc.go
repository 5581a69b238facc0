// Package app wires the harness together: configuration, logging, the
// provider registry, and the run sequence. The parent sequence is strict:
// version gate, one Initialize call, partition, spawn, join. Worker
// processes run the shard evaluation half of the same application.
package app
