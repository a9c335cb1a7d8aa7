/*
Package payroll turns raw attendance records into a priced salary report.

PURPOSE:
  This is the computation core of the salary tracker. It owns:
  - Time-of-day parsing and cross-midnight duration arithmetic (clock.go)
  - Recurring weekend-premium window detection (window.go)
  - Tiered hour allocation and day pricing (allocate.go)
  - The record-to-report reduction (engine.go)

KEY CONCEPTS IN THIS FILE (types.go):
  - TimeOfDay:          An hour:minute value within a day
  - Period:             One work shift (start/end TimeOfDay, may cross midnight)
  - AttendanceRecord:   One day of raw punches as they arrive from the boundary
  - DaySalaryBreakdown: Priced hours for one day
  - SalaryReport:       The aggregated month report

DESIGN PRINCIPLES:
  1. Statelessness: every computation builds fresh values; nothing is mutated
     after a report is returned.
  2. Precision: currency uses decimal.Decimal; hours are float64 rounded to a
     fixed 4-decimal precision so sums stay stable.
  3. Local recovery: malformed periods and dates degrade to zero-valued days,
     they never abort a whole report.

SEE ALSO:
  - engine.go: Calculator.Compute, the single entry point
  - attendance/: boundary normalization into AttendanceRecord
*/
package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// TIME OF DAY
// =============================================================================

// TimeOfDay is an immutable hour:minute value. Hour is 0-23, Minute 0-59;
// values outside that range never leave ParseTimeOfDay.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// MinutesFromMidnight returns the offset of this time within its day.
func (t TimeOfDay) MinutesFromMidnight() int {
	return t.Hour*60 + t.Minute
}

// On anchors the time of day to a calendar date, in that date's location.
func (t TimeOfDay) On(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour, t.Minute, 0, 0, d.Location())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// =============================================================================
// PERIODS
// =============================================================================

// RawPeriod is one shift exactly as it arrived from the boundary: two time
// strings that may or may not parse. Kept on the breakdown for audit.
type RawPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Period is a parsed shift within a day. End at or before Start means the
// shift crosses midnight; the engine never sees shifts longer than 24 hours.
type Period struct {
	Start TimeOfDay
	End   TimeOfDay
}

// CrossesMidnight reports whether the shift ends on the following day.
func (p Period) CrossesMidnight() bool {
	return p.End.MinutesFromMidnight() <= p.Start.MinutesFromMidnight()
}

// Bounds anchors the period to a calendar date and returns absolute
// timestamps, with the end pushed to the next day when the shift crosses
// midnight.
func (p Period) Bounds(d time.Time) (start, end time.Time) {
	start = p.Start.On(d)
	end = p.End.On(d)
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end
}

// =============================================================================
// ATTENDANCE INPUT
// =============================================================================

// AttendanceRecord is one calendar day of punches, already normalized to the
// fixed shape the engine works on. Date is the raw date string (ISO
// YYYY-MM-DD or DD/MM/YYYY); parsing it is the engine's job so that an
// unparseable date can still produce a labeled zero-value day. Period order
// is insertion order and is preserved for display; it does not affect totals.
type AttendanceRecord struct {
	Date    string      `json:"date"`
	Periods []RawPeriod `json:"periods"`
}

// =============================================================================
// OUTPUT
// =============================================================================

// DaySalaryBreakdown is the priced result for a single input record.
//
// Invariant: RegularHours + Overtime125Hours + Overtime150Hours equals the
// day's total worked hours (within rounding). When WeekendPremiumApplied is
// true, all hours sit in Overtime150Hours and the other tiers are zero.
type DaySalaryBreakdown struct {
	// Date is the resolved date formatted as ISO YYYY-MM-DD, or the literal
	// input string when the date could not be parsed.
	Date                  string          `json:"date"`
	RegularHours          float64         `json:"regular_hours"`
	Overtime125Hours      float64         `json:"overtime_125_hours"`
	Overtime150Hours      float64         `json:"overtime_150_hours"`
	DayTotal              decimal.Decimal `json:"day_total"`
	WeekendPremiumApplied bool            `json:"weekend_premium_applied"`

	// RawPeriods lists the periods that survived parsing, verbatim, for audit.
	RawPeriods []RawPeriod `json:"raw_periods"`
}

// TotalHours returns the worked hours across all tiers.
func (d DaySalaryBreakdown) TotalHours() float64 {
	return roundHours(d.RegularHours + d.Overtime125Hours + d.Overtime150Hours)
}

// SalaryReport is the result of one Compute call: one breakdown per input
// record, in input order, plus the month total. Reports are never mutated
// once returned; every computation builds a fresh one.
type SalaryReport struct {
	Year  int                  `json:"year"`
	Month time.Month           `json:"month"`
	Days  []DaySalaryBreakdown `json:"days"`
	Total decimal.Decimal      `json:"total"`
}
