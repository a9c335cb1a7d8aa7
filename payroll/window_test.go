package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-01-03 is a Friday; the default window for that week runs
// Friday 2025-01-03 17:00 through Sunday 2025-01-05 05:00.
func day(yyyy int, mm time.Month, dd int) time.Time {
	return time.Date(yyyy, mm, dd, 0, 0, 0, 0, time.UTC)
}

func TestWindowFor_SingleWindowPerWeek(t *testing.T) {
	// GIVEN: the default Friday 17:00 -> Sunday 05:00 window
	// THEN: every date from the anchor Friday through the following Thursday
	//       resolves to the same absolute interval.
	w := DefaultWeekendWindow()

	wantStart := time.Date(2025, time.January, 3, 17, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, time.January, 5, 5, 0, 0, 0, time.UTC)

	for dd := 3; dd <= 9; dd++ {
		start, end := w.WindowFor(day(2025, time.January, dd))
		assert.Equal(t, wantStart, start, "start for Jan %d", dd)
		assert.Equal(t, wantEnd, end, "end for Jan %d", dd)
	}
}

func TestWindowFor_BeforeAnchorUsesPreviousWeek(t *testing.T) {
	// Thursday Jan 2 belongs to the window anchored on Friday Dec 27.
	w := DefaultWeekendWindow()
	start, end := w.WindowFor(day(2025, time.January, 2))
	assert.Equal(t, time.Date(2024, time.December, 27, 17, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.December, 29, 5, 0, 0, 0, time.UTC), end)
}

func TestWindowFor_SaturdayEndConvention(t *testing.T) {
	// The Saturday 05:00 end variant stays reachable through configuration.
	w := WeekendWindow{
		StartWeekday: time.Friday,
		Start:        TimeOfDay{Hour: 17},
		EndWeekday:   time.Saturday,
		End:          TimeOfDay{Hour: 5},
	}
	_, end := w.WindowFor(day(2025, time.January, 3))
	assert.Equal(t, time.Date(2025, time.January, 4, 5, 0, 0, 0, time.UTC), end)
}

func TestOverlaps(t *testing.T) {
	w := DefaultWeekendWindow()

	period := func(sh, sm, eh, em int) Period {
		return Period{Start: TimeOfDay{sh, sm}, End: TimeOfDay{eh, em}}
	}

	cases := []struct {
		name string
		d    time.Time
		p    Period
		want bool
	}{
		{"friday evening inside", day(2025, time.January, 3), period(18, 0, 20, 0), true},
		{"friday starting at window start", day(2025, time.January, 3), period(17, 0, 18, 0), true},
		{"friday straddling window start", day(2025, time.January, 3), period(16, 0, 18, 0), true},
		{"friday ending exactly at window start", day(2025, time.January, 3), period(15, 0, 17, 0), false},
		{"saturday fully inside", day(2025, time.January, 4), period(10, 0, 18, 0), true},
		{"saturday into sunday cross-midnight", day(2025, time.January, 4), period(21, 0, 5, 0), true},
		{"sunday early morning", day(2025, time.January, 5), period(2, 0, 4, 0), true},
		{"sunday straddling window end", day(2025, time.January, 5), period(4, 0, 9, 0), true},
		{"sunday starting exactly at window end", day(2025, time.January, 5), period(5, 0, 9, 0), false},
		{"sunday daytime", day(2025, time.January, 5), period(10, 0, 18, 0), false},
		{"monday regular day", day(2025, time.January, 6), period(9, 0, 17, 0), false},
		{"thursday overnight ends before window", day(2025, time.January, 2), period(23, 0, 1, 0), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, w.Overlaps(tc.d, tc.p))
		})
	}
}
