package manifest

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Partition splits the manifest at inputFile into n contiguous shard files
// in outputDir, named <stem>.input.<i>, and returns their paths in shard
// order. Record order is preserved within and across shards: concatenating
// the shards reproduces the manifest exactly. Exactly n files are created;
// when the manifest has fewer than n records the trailing shards are empty.
//
// The source manifest is never deleted here; each shard file is consumed
// and removed by the worker that processes it.
func Partition(inputFile, outputDir, stem string, n int) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("shard count must be at least 1, got %d", n)
	}

	records, err := readAll(inputFile)
	if err != nil {
		return nil, err
	}

	// Ceil division keeps shards contiguous with imbalance of at most one
	// chunk size between the last shard and the rest.
	per := (len(records) + n - 1) / n
	if per == 0 {
		per = 1
	}

	paths := make([]string, 0, n)
	for i := 0; i < n; i++ {
		lo := i * per
		if lo > len(records) {
			lo = len(records)
		}
		hi := lo + per
		if hi > len(records) {
			hi = len(records)
		}

		path := filepath.Join(outputDir, stem+".input."+strconv.Itoa(i))
		if err := writeShard(path, records[lo:hi]); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// ReadShard reads every record of one shard file in order.
func ReadShard(path string) ([]Record, error) {
	return readAll(path)
}

func readAll(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest %s: %w", path, err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rec, err := ParseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	return records, nil
}

func writeShard(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create shard file %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	for _, rec := range records {
		fmt.Fprintln(w, rec.String())
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write shard file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close shard file %s: %w", path, err)
	}
	return nil
}
