/*
Package sqlite provides a SQLite-backed report store.

PURPOSE:
  Keeps a history of computed salary reports, one row per Compute run. The
  latest row backs GET /api/salary; older rows remain for audit.

SCHEMA:
  salary_reports:
    id         TEXT  uuid, primary key
    year       INT   report year
    month      INT   report month (1-12)
    total      TEXT  month total, decimal string
    payload    TEXT  full report JSON (source of truth for reads)
    created_at TEXT  RFC3339Nano, ordering key for LatestReport

  year/month/total are denormalized for ad-hoc querying; reads always
  deserialize the payload so the stored report round-trips exactly.

WAL MODE:
  Opened with WAL so readers do not block the writer. A RWMutex guards the
  connection on top of that; the HTTP layer additionally serializes refreshes.

USAGE:
  st, err := sqlite.New("./data/salary.db")  // ":memory:" for tests
  defer st.Close()
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/shakedr2/salary-tracker/payroll"
	"github.com/shakedr2/salary-tracker/store"
)

// Store implements store.ReportStore on SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ store.ReportStore = (*Store)(nil)

// New opens (or creates) the database at dbPath and migrates the schema.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS salary_reports (
		id         TEXT PRIMARY KEY,
		year       INTEGER NOT NULL,
		month      INTEGER NOT NULL,
		total      TEXT NOT NULL,
		payload    TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_salary_reports_created_at
		ON salary_reports(created_at);
	CREATE INDEX IF NOT EXISTS idx_salary_reports_year_month
		ON salary_reports(year, month);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveReport appends the report to the history.
func (s *Store) SaveReport(ctx context.Context, report *payroll.SalaryReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO salary_reports (id, year, month, total, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(),
		report.Year,
		int(report.Month),
		report.Total.String(),
		string(payload),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// LatestReport returns the most recently saved report.
func (s *Store) LatestReport(ctx context.Context) (*payroll.SalaryReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var payload string
	err := s.db.QueryRowContext(ctx, `
		SELECT payload FROM salary_reports
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1`).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, store.ErrNoReport
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load report: %w", err)
	}

	var report payroll.SalaryReport
	if err := json.Unmarshal([]byte(payload), &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored report: %w", err)
	}
	return &report, nil
}

// ReportHistory returns up to limit reports, newest first. Zero means all.
func (s *Store) ReportHistory(ctx context.Context, limit int) ([]*payroll.SalaryReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = -1 // SQLite: negative LIMIT means no limit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT payload FROM salary_reports
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query report history: %w", err)
	}
	defer rows.Close()

	var reports []*payroll.SalaryReport
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var report payroll.SalaryReport
		if err := json.Unmarshal([]byte(payload), &report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stored report: %w", err)
		}
		reports = append(reports, &report)
	}
	return reports, rows.Err()
}
