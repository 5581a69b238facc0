package manifest

import (
	"fmt"
	"strings"
)

// Record is one manifest line: an identifier, the path of the image to
// evaluate, and the free-text label describing its collection conditions.
// The harness reads records once and never mutates or persists them.
type Record struct {
	ID        string
	ImagePath string
	Label     string
}

// ParseRecord parses one whitespace-delimited manifest line.
func ParseRecord(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Record{}, fmt.Errorf("manifest line has %d fields, want 3 (id imagePath label): %q", len(fields), line)
	}
	return Record{ID: fields[0], ImagePath: fields[1], Label: fields[2]}, nil
}

func (r Record) String() string {
	return r.ID + " " + r.ImagePath + " " + r.Label
}
