// Package manifest reads the flat input manifest consumed by a run and
// partitions it into the contiguous shard files handed to worker processes.
package manifest
