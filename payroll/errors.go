package payroll

import "errors"

// Sentinel errors, used with errors.Is().
var (
	// ErrNoRecords is the only hard failure Compute can return: the caller
	// supplied an empty record sequence. Everything else recovers locally.
	ErrNoRecords = errors.New("no attendance records provided")

	// ErrInvalidTime is wrapped by ParseTimeOfDay for blank, non-numeric, or
	// out-of-range input. Out-of-range values fail, they are never wrapped
	// into range.
	ErrInvalidTime = errors.New("invalid time of day")
)
