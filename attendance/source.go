package attendance

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Source produces raw attendance records. The production implementation is
// the website scraper, which lives outside this repository; everything here
// only depends on this contract.
type Source interface {
	Fetch(ctx context.Context) ([]RawRecord, error)
}

// FileSource reads records from a JSON file holding an array of RawRecords -
// the export format the scraper writes.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Fetch(ctx context.Context) ([]RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read attendance file: %w", err)
	}

	var records []RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse attendance file %s: %w", s.Path, err)
	}
	return records, nil
}

// StaticSource serves a fixed record set. Used in tests and demo wiring.
type StaticSource []RawRecord

func (s StaticSource) Fetch(ctx context.Context) ([]RawRecord, error) {
	return s, nil
}
