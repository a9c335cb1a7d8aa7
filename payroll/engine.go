/*
engine.go - The record-to-report reduction

PURPOSE:
  Calculator.Compute is the single call contract of this package: it takes an
  ordered sequence of AttendanceRecords and returns a SalaryReport with one
  DaySalaryBreakdown per record, in input order.

RECOVERY POLICY:
  Scraped punch data is messy, so the engine degrades per-item instead of
  failing the batch:
  - A period with an unparseable endpoint is dropped from that day's totals.
  - A record with an unparseable date keeps the literal string as its label
    and skips weekend detection (there is no date to anchor the window to).
  - A record with no valid periods still produces an all-zero breakdown.
  Only an empty input sequence is a hard error (ErrNoRecords).

CONCURRENCY:
  The Calculator is stateless apart from its immutable config; concurrent
  Compute calls are safe, including on the same receiver.

SEE ALSO:
  - window.go: weekend-premium detection
  - allocate.go: tier allocation and pricing
*/
package payroll

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Accepted date layouts, tried in order.
var dateLayouts = []string{"2006-01-02", "02/01/2006"}

// Calculator computes salary reports. Zero-value fields are filled by
// NewCalculator; construct through it unless a test needs to inject the clock.
type Calculator struct {
	Config Config
	Log    *logrus.Logger

	// Now supplies the processing date used when the first record's date
	// cannot be resolved. Injectable for deterministic tests.
	Now func() time.Time
}

// NewCalculator builds a Calculator with the config normalized (derived rates,
// default limits and window filled in).
func NewCalculator(cfg Config) *Calculator {
	return &Calculator{
		Config: cfg.Normalized(),
		Log:    logrus.StandardLogger(),
		Now:    time.Now,
	}
}

// Compute turns attendance records into a salary report. The report's
// year/month come from the first record's resolved date; when that date is
// unresolvable they fall back to the current processing date. The fallback is
// a usability convenience, not a correctness guarantee - callers that need a
// specific month should ensure the first record carries a parseable date.
//
// Identical input always yields an identical report (the clock is consulted
// only for the documented fallback).
func (c *Calculator) Compute(records []AttendanceRecord) (*SalaryReport, error) {
	if len(records) == 0 {
		c.log().Warn("no records provided for calculation")
		return nil, ErrNoRecords
	}

	year, month := c.targetMonth(records[0])

	report := &SalaryReport{
		Year:  year,
		Month: month,
		Days:  make([]DaySalaryBreakdown, 0, len(records)),
		Total: decimal.Zero,
	}

	for _, rec := range records {
		day := c.computeDay(rec)
		report.Days = append(report.Days, day)
		report.Total = report.Total.Add(day.DayTotal)
	}
	report.Total = report.Total.Round(currencyPrecision)

	c.log().WithFields(logrus.Fields{
		"year":  report.Year,
		"month": int(report.Month),
		"days":  len(report.Days),
		"total": report.Total.String(),
	}).Info("salary calculation completed")

	return report, nil
}

// computeDay reduces one record to its breakdown, independent of all others.
func (c *Calculator) computeDay(rec AttendanceRecord) DaySalaryBreakdown {
	date, dateOK := resolveDate(rec.Date)

	label := rec.Date
	if dateOK {
		label = date.Format("2006-01-02")
	}

	var (
		kept       []RawPeriod
		totalHours float64
		weekend    bool
	)
	for _, raw := range rec.Periods {
		start, errStart := ParseTimeOfDay(raw.Start)
		end, errEnd := ParseTimeOfDay(raw.End)
		if errStart != nil || errEnd != nil {
			c.log().WithFields(logrus.Fields{
				"date": rec.Date, "start": raw.Start, "end": raw.End,
			}).Debug("skipping invalid period")
			continue
		}

		p := Period{Start: start, End: end}
		kept = append(kept, raw)
		totalHours = roundHours(totalHours + DurationHours(start, end))
		if dateOK && c.Config.Window.Overlaps(date, p) {
			weekend = true
		}
	}

	if totalHours < 0 {
		c.log().WithFields(logrus.Fields{
			"date": rec.Date, "total_hours": totalHours,
		}).Warn("negative total hours clamped to zero")
		totalHours = 0
	}

	day := DaySalaryBreakdown{
		Date:                  label,
		DayTotal:              decimal.Zero,
		WeekendPremiumApplied: weekend,
		RawPeriods:            kept,
	}
	if totalHours == 0 {
		return day
	}

	if weekend {
		day.Overtime150Hours = roundHours(totalHours)
		day.DayTotal = priceWeekend(totalHours, c.Config)
		return day
	}

	day.RegularHours, day.Overtime125Hours, day.Overtime150Hours = allocateHours(totalHours, c.Config)
	day.DayTotal = priceTiers(day.RegularHours, day.Overtime125Hours, day.Overtime150Hours, c.Config)
	return day
}

// targetMonth resolves the report month from the first record, falling back
// to the processing date.
func (c *Calculator) targetMonth(first AttendanceRecord) (int, time.Month) {
	if d, ok := resolveDate(first.Date); ok {
		return d.Year(), d.Month()
	}
	c.log().WithField("date", first.Date).Warn("could not determine month from records, using current date")
	now := c.Now()
	return now.Year(), now.Month()
}

func (c *Calculator) log() *logrus.Logger {
	if c.Log != nil {
		return c.Log
	}
	return logrus.StandardLogger()
}

// resolveDate parses ISO YYYY-MM-DD first, then DD/MM/YYYY.
func resolveDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}
