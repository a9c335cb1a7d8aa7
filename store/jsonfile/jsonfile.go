// Package jsonfile persists the latest salary report in a single JSON file,
// written atomically (temp file in the same directory, then rename) so a
// crash mid-write can never leave a corrupt report behind. Suits the
// single-user deployment: one user, one file, no database.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/shakedr2/salary-tracker/payroll"
	"github.com/shakedr2/salary-tracker/store"
)

// Store implements store.ReportStore on one file. Only the most recent
// report is kept; every save replaces the previous one.
type Store struct {
	path string
	mu   sync.Mutex
}

var _ store.ReportStore = (*Store)(nil)

type document struct {
	SavedAt time.Time             `json:"saved_at"`
	Report  *payroll.SalaryReport `json:"report"`
}

// New creates a store writing to path. The parent directory is created if
// missing; the file itself is only created on the first save.
func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{path: path}, nil
}

// SaveReport atomically replaces the stored report.
func (s *Store) SaveReport(ctx context.Context, report *payroll.SalaryReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(document{SavedAt: time.Now().UTC(), Report: report}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".salary-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace report file: %w", err)
	}
	return nil
}

// LatestReport reads the stored report back.
func (s *Store) LatestReport(ctx context.Context) (*payroll.SalaryReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, store.ErrNoReport
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read report file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse report file %s: %w", s.path, err)
	}
	if doc.Report == nil {
		return nil, store.ErrNoReport
	}
	return doc.Report, nil
}

// Close is a no-op; the file is only held open during writes.
func (s *Store) Close() error {
	return nil
}
