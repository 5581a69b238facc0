// Package evaluator drives one shard of manifest records through a
// provider's VectorQuality entry point and serializes each result to the
// shard's log file. It runs inside a worker process; the parent never
// evaluates records itself.
package evaluator
