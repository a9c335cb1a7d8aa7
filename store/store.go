// Package store defines the persistence contract for computed salary reports.
// Implementations live in subpackages: sqlite keeps a report history, jsonfile
// keeps the latest report in a single atomically-written file.
package store

import (
	"context"
	"errors"

	"github.com/shakedr2/salary-tracker/payroll"
)

// ErrNoReport is returned by LatestReport when nothing has been saved yet.
var ErrNoReport = errors.New("no salary report stored")

// ReportStore persists computed reports. The engine itself never writes
// storage; the service layer calls SaveReport after a successful computation
// and is responsible for serializing access to any shared backing file.
// Implementations are still safe for concurrent use on their own.
type ReportStore interface {
	// SaveReport persists a report. The report is treated as immutable.
	SaveReport(ctx context.Context, report *payroll.SalaryReport) error

	// LatestReport returns the most recently saved report, or ErrNoReport.
	LatestReport(ctx context.Context) (*payroll.SalaryReport, error)

	// Close releases any underlying resources.
	Close() error
}
