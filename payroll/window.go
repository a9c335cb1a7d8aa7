package payroll

import "time"

// =============================================================================
// WEEKEND PREMIUM WINDOW
// =============================================================================

// WeekendWindow describes one contiguous window that recurs every week, such
// as Friday 17:00 through the following Sunday 05:00. Weekdays use Go's
// time.Weekday convention (Sunday = 0).
//
// The window is [start, end): a period touching a boundary with zero overlap
// does not count as inside it.
type WeekendWindow struct {
	StartWeekday time.Weekday
	Start        TimeOfDay
	EndWeekday   time.Weekday
	End          TimeOfDay
}

// DefaultWeekendWindow is Friday 17:00 through Sunday 05:00, the whole of
// Saturday included. The end convention is Sunday 05:00; the older Saturday
// 05:00 behavior is expressible by configuring EndWeekday to Saturday.
func DefaultWeekendWindow() WeekendWindow {
	return WeekendWindow{
		StartWeekday: time.Friday,
		Start:        TimeOfDay{Hour: 17},
		EndWeekday:   time.Sunday,
		End:          TimeOfDay{Hour: 5},
	}
}

func (w WeekendWindow) isZero() bool {
	return w == WeekendWindow{}
}

// WindowFor resolves the absolute window instance that the given date belongs
// to. The anchor day is the most recent occurrence of StartWeekday at or
// before d; the window runs from the anchor at the start time to the anchor
// plus the weekday span at the end time. Every date from the anchor through
// the following StartWeekday-minus-one maps to the same single window, no
// matter which of them triggered the lookup.
func (w WeekendWindow) WindowFor(d time.Time) (start, end time.Time) {
	daysBack := (int(d.Weekday()) - int(w.StartWeekday) + 7) % 7
	anchor := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location()).AddDate(0, 0, -daysBack)

	daysSpan := (int(w.EndWeekday) - int(w.StartWeekday) + 7) % 7

	start = w.Start.On(anchor)
	end = w.End.On(anchor.AddDate(0, 0, daysSpan))
	return start, end
}

// Overlaps reports whether the period, anchored to date d, overlaps this
// week's window. The period end is pushed past midnight under the same rule
// as DurationHours. Half-open interval test: a period ending exactly at the
// window start, or starting exactly at the window end, does not overlap.
func (w WeekendWindow) Overlaps(d time.Time, p Period) bool {
	winStart, winEnd := w.WindowFor(d)
	periodStart, periodEnd := p.Bounds(d)
	return periodStart.Before(winEnd) && periodEnd.After(winStart)
}
