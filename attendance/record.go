/*
Package attendance normalizes loose punch data into the fixed shape the
payroll engine consumes.

PURPOSE:
  Upstream producers (the attendance-site scraper, manual JSON exports, API
  clients) emit records in two shapes: an explicit period list, or a single
  clock-in/clock-out pair. This package collapses that variability into
  payroll.AttendanceRecord in exactly one place, so the engine never branches
  on input representation.

SOURCES:
  The Source interface stands in for the scraping component, which is an
  external collaborator of this repository. FileSource reads the JSON export
  the scraper writes; StaticSource serves fixed records for tests and demos.
*/
package attendance

import "github.com/shakedr2/salary-tracker/payroll"

// RawRecord is one day of attendance as it arrives from a producer. Either
// Periods carries explicit (start, end) pairs, or ClockIn/ClockOut carry a
// single pair; when both are present the period list wins.
type RawRecord struct {
	Date     string      `json:"date"`
	Periods  [][2]string `json:"periods,omitempty"`
	ClockIn  string      `json:"clock_in,omitempty"`
	ClockOut string      `json:"clock_out,omitempty"`
}

// Normalize converts raw records into the engine's fixed record shape,
// preserving order. It does not validate time strings - dropping unparseable
// periods is the engine's recovery policy, and doing it here too would hide
// them from the audit trail.
func Normalize(raws []RawRecord) []payroll.AttendanceRecord {
	records := make([]payroll.AttendanceRecord, 0, len(raws))
	for _, raw := range raws {
		records = append(records, normalizeOne(raw))
	}
	return records
}

func normalizeOne(raw RawRecord) payroll.AttendanceRecord {
	rec := payroll.AttendanceRecord{Date: raw.Date}

	if len(raw.Periods) > 0 {
		for _, p := range raw.Periods {
			rec.Periods = append(rec.Periods, payroll.RawPeriod{Start: p[0], End: p[1]})
		}
		return rec
	}

	if raw.ClockIn != "" || raw.ClockOut != "" {
		rec.Periods = append(rec.Periods, payroll.RawPeriod{Start: raw.ClockIn, End: raw.ClockOut})
	}
	return rec
}
