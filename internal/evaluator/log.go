package evaluator

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vk/qualbench/internal/manifest"
	"github.com/vk/qualbench/internal/quality"
)

// naToken is written for every quality measure the provider did not report.
const naToken = "NA"

// logWriter appends result rows to a shard-local log file. One writer exists
// per worker process, so no locking is needed; path disjointness across
// workers is the concurrency-safety invariant.
type logWriter struct {
	path string
	f    *os.File
	w    *bufio.Writer
}

func newLogWriter(path string) (*logWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log %s: %w", path, err)
	}
	return &logWriter{path: path, f: f, w: bufio.NewWriter(f)}, nil
}

// writeHeader writes the single column-name line preceding all data rows.
func (l *logWriter) writeHeader() error {
	cols := []string{"id", "image", "returnCode", "bb_xleft", "bb_ytop", "bb_width", "bb_height"}
	for _, m := range quality.Measures() {
		cols = append(cols, m.String())
	}
	_, err := fmt.Fprintln(l.w, strings.Join(cols, " "))
	return err
}

// writeRow appends one record's result. Measures are emitted in the fixed
// enumeration order with absent values rendered as NA.
func (l *logWriter) writeRow(rec manifest.Record, status quality.ReturnStatus, a quality.Assessment) error {
	fields := []string{
		rec.ID,
		rec.ImagePath,
		strconv.Itoa(int(status.Code)),
		strconv.Itoa(int(a.BoundingBox.XLeft)),
		strconv.Itoa(int(a.BoundingBox.YTop)),
		strconv.Itoa(int(a.BoundingBox.Width)),
		strconv.Itoa(int(a.BoundingBox.Height)),
	}
	for _, m := range quality.Measures() {
		if v, ok := a.Scores[m]; ok {
			fields = append(fields, strconv.FormatFloat(v, 'f', 6, 64))
		} else {
			fields = append(fields, naToken)
		}
	}
	_, err := fmt.Fprintln(l.w, strings.Join(fields, " "))
	return err
}

func (l *logWriter) close() error {
	if err := l.w.Flush(); err != nil {
		l.f.Close()
		return fmt.Errorf("failed to flush log %s: %w", l.path, err)
	}
	return l.f.Close()
}

// discard closes the log and removes it from disk. Used when the provider
// reports the capability absent: a partial log is not a valid artifact.
func (l *logWriter) discard() error {
	if err := l.close(); err != nil {
		return err
	}
	if err := os.Remove(l.path); err != nil {
		return fmt.Errorf("failed to delete partial log %s: %w", l.path, err)
	}
	return nil
}
