package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shakedr2/salary-tracker/payroll"
	"github.com/shakedr2/salary-tracker/store"
)

func testReport(total float64) *payroll.SalaryReport {
	return &payroll.SalaryReport{
		Year:  2025,
		Month: time.January,
		Days: []payroll.DaySalaryBreakdown{
			{
				Date:         "2025-01-15",
				RegularHours: 8,
				DayTotal:     decimal.NewFromFloat(total),
				RawPeriods:   []payroll.RawPeriod{{Start: "09:00", End: "17:00"}},
			},
		},
		Total: decimal.NewFromFloat(total),
	}
}

func TestStore_SaveAndLatest(t *testing.T) {
	st, err := New(":memory:")
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	require.NoError(t, st.SaveReport(ctx, testReport(600)))

	got, err := st.LatestReport(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2025, got.Year)
	assert.Equal(t, time.January, got.Month)
	require.Len(t, got.Days, 1)
	assert.Equal(t, "2025-01-15", got.Days[0].Date)
	assert.Equal(t, 8.0, got.Days[0].RegularHours)
	assert.Equal(t, []payroll.RawPeriod{{Start: "09:00", End: "17:00"}}, got.Days[0].RawPeriods)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(600)), "total %s", got.Total)
}

func TestStore_LatestReturnsNewest(t *testing.T) {
	st, err := New(":memory:")
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	require.NoError(t, st.SaveReport(ctx, testReport(600)))
	require.NoError(t, st.SaveReport(ctx, testReport(900)))

	got, err := st.LatestReport(ctx)
	require.NoError(t, err)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(900)), "total %s", got.Total)
}

func TestStore_EmptyHistory(t *testing.T) {
	st, err := New(":memory:")
	require.NoError(t, err)
	defer st.Close()

	_, err = st.LatestReport(context.Background())
	require.ErrorIs(t, err, store.ErrNoReport)
}

func TestStore_ReportHistory(t *testing.T) {
	st, err := New(":memory:")
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	for _, total := range []float64{100, 200, 300} {
		require.NoError(t, st.SaveReport(ctx, testReport(total)))
	}

	history, err := st.ReportHistory(ctx, 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].Total.Equal(decimal.NewFromInt(300)))
	assert.True(t, history[1].Total.Equal(decimal.NewFromInt(200)))

	all, err := st.ReportHistory(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
