package evaluator

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/qualbench/internal/ctxlog"
	"github.com/vk/qualbench/internal/imgio"
	"github.com/vk/qualbench/internal/manifest"
	"github.com/vk/qualbench/internal/provider"
	"github.com/vk/qualbench/internal/quality"
)

// Outcome is what a completed shard run reports to its worker process.
type Outcome int

const (
	// Completed means the shard was exhausted; per-record failures may
	// still be present as data rows in the log.
	Completed Outcome = iota
	// NotImplemented means the provider declined the capability entirely.
	// The shard's partial log has been removed from disk.
	NotImplemented
)

// Run evaluates every record of the shard at shardPath against p, appending
// one log line per record to logPath.
//
// A record whose image cannot be decoded is an unrecoverable operator error
// and fails the whole worker; a non-success status from the provider is an
// expected per-record outcome and is logged as a data row. The shard input
// file is always deleted on completion. When the provider reports the
// capability absent the remaining records are skipped, the partial log is
// deleted, and the NotImplemented outcome is returned.
func Run(ctx context.Context, p provider.Provider, shardPath, logPath string) (Outcome, error) {
	logger := ctxlog.FromContext(ctx)

	records, err := manifest.ReadShard(shardPath)
	if err != nil {
		return Completed, err
	}

	log, err := newLogWriter(logPath)
	if err != nil {
		return Completed, err
	}
	if err := log.writeHeader(); err != nil {
		log.close()
		return Completed, err
	}

	notImplemented := false
	for _, rec := range records {
		img, err := imgio.ReadImage(rec.ImagePath)
		if err != nil {
			log.close()
			return Completed, fmt.Errorf("unrecoverable input error: %w", err)
		}
		img.Description = quality.ParseDescription(rec.Label)

		status, assessment := p.VectorQuality(ctx, img)
		if status.NotImplemented() {
			logger.Info("Provider reports capability absent, stopping shard.", "shard", shardPath, "id", rec.ID)
			notImplemented = true
			break
		}

		if err := log.writeRow(rec, status, assessment); err != nil {
			log.close()
			return Completed, err
		}
	}

	// The shard input is consumed regardless of how the loop ended.
	if err := os.Remove(shardPath); err != nil {
		logger.Error("Failed to delete consumed shard file.", "shard", shardPath, "error", err)
	}

	if notImplemented {
		if err := log.discard(); err != nil {
			return NotImplemented, err
		}
		return NotImplemented, nil
	}
	if err := log.close(); err != nil {
		return Completed, err
	}
	return Completed, nil
}
