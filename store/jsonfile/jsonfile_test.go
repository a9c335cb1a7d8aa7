package jsonfile

import (
	"context"
	"os"
	"path/filepath"
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
			{Date: "2025-01-15", RegularHours: 8, DayTotal: decimal.NewFromFloat(total)},
		},
		Total: decimal.NewFromFloat(total),
	}
}

func TestStore_RoundTrip(t *testing.T) {
	st, err := New(filepath.Join(t.TempDir(), "data", "salary.json"))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, st.SaveReport(ctx, testReport(600)))

	got, err := st.LatestReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2025, got.Year)
	require.Len(t, got.Days, 1)
	assert.Equal(t, 8.0, got.Days[0].RegularHours)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(600)), "total %s", got.Total)
}

func TestStore_NoReportYet(t *testing.T) {
	st, err := New(filepath.Join(t.TempDir(), "salary.json"))
	require.NoError(t, err)

	_, err = st.LatestReport(context.Background())
	require.ErrorIs(t, err, store.ErrNoReport)
}

func TestStore_SaveReplacesPrevious(t *testing.T) {
	dir := t.TempDir()
	st, err := New(filepath.Join(dir, "salary.json"))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, st.SaveReport(ctx, testReport(600)))
	require.NoError(t, st.SaveReport(ctx, testReport(900)))

	got, err := st.LatestReport(ctx)
	require.NoError(t, err)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(900)), "total %s", got.Total)

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "salary.json", entries[0].Name())
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salary.json")
	st, err := New(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	_, err = st.LatestReport(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrNoReport)
}
