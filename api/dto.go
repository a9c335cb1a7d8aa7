/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON contract of the service, decoupled from the domain types.
  Money crosses the wire as plain JSON numbers (float64 views of the decimal
  amounts), matching what the frontend consumes.

NAMING CONVENTION:
  - *Request:  request body types from clients
  - *Response: response wrappers
  - *DTO:      embedded response fragments

SEE ALSO:
  - handlers.go: uses these types
  - payroll/types.go: the domain shapes these mirror
*/
package api

import (
	"github.com/shakedr2/salary-tracker/attendance"
	"github.com/shakedr2/salary-tracker/payroll"
)

// ComputeRequest carries attendance records for an ad-hoc computation.
// Records accept both boundary shapes (period list or clock pair).
type ComputeRequest struct {
	Records []attendance.RawRecord `json:"records"`
}

// ReportDTO is a salary report on the wire.
type ReportDTO struct {
	Year  int      `json:"year"`
	Month int      `json:"month"`
	Total float64  `json:"total"`
	Days  []DayDTO `json:"days"`
}

// DayDTO is one day's breakdown on the wire.
type DayDTO struct {
	Date                  string      `json:"date"`
	RegularHours          float64     `json:"regular_hours"`
	Overtime125Hours      float64     `json:"overtime_125_hours"`
	Overtime150Hours      float64     `json:"overtime_150_hours"`
	DayTotal              float64     `json:"day_total"`
	WeekendPremiumApplied bool        `json:"weekend_premium_applied"`
	RawPeriods            [][2]string `json:"raw_periods"`
}

// RefreshResponse is returned by POST /api/refresh after a successful
// fetch-compute-persist cycle.
type RefreshResponse struct {
	Success   bool      `json:"success"`
	Timestamp string    `json:"timestamp"`
	Report    ReportDTO `json:"report"`
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the standard error shape.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toReportDTO(report *payroll.SalaryReport) ReportDTO {
	dto := ReportDTO{
		Year:  report.Year,
		Month: int(report.Month),
		Total: report.Total.InexactFloat64(),
		Days:  make([]DayDTO, len(report.Days)),
	}
	for i, day := range report.Days {
		dto.Days[i] = toDayDTO(day)
	}
	return dto
}

func toDayDTO(day payroll.DaySalaryBreakdown) DayDTO {
	periods := make([][2]string, len(day.RawPeriods))
	for i, p := range day.RawPeriods {
		periods[i] = [2]string{p.Start, p.End}
	}
	return DayDTO{
		Date:                  day.Date,
		RegularHours:          day.RegularHours,
		Overtime125Hours:      day.Overtime125Hours,
		Overtime150Hours:      day.Overtime150Hours,
		DayTotal:              day.DayTotal.InexactFloat64(),
		WeekendPremiumApplied: day.WeekendPremiumApplied,
		RawPeriods:            periods,
	}
}
