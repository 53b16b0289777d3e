package report_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ticktock-project/ticktock/internal/report"
	"github.com/ticktock-project/ticktock/pkg/errclass"
	"github.com/ticktock-project/ticktock/pkg/model"
)

func reportLedger(t *testing.T) *model.Ledger {
	t.Helper()
	l := model.NewLedger()
	p, err := l.AddProject("acme", "ACME", "DZ-1")
	require.NoError(t, err)
	sub, err := p.AddSub("review", "Code Review", "")
	require.NoError(t, err)

	p.TimeRecords.AddSeconds("2026-08-03", 3600)
	p.TimeRecords.AddSeconds("2026-08-15", 1800)
	p.TimeRecords.AddSeconds("2026-09-01", 60) // outside August
	sub.TimeRecords.AddSeconds("2026-08-03", 900)

	idle, err := l.AddProject("idle", "Idle Project", "")
	require.NoError(t, err)
	_ = idle
	return l
}

func TestBuildMonth(t *testing.T) {
	m := report.BuildMonth(reportLedger(t), 2026, time.August)

	assert.Equal(t, 31, m.Days)
	require.Len(t, m.Rows, 2, "targets without August time are omitted")

	acme := m.Rows[0]
	assert.Equal(t, "acme", acme.Target)
	assert.Equal(t, int64(3600), acme.Daily[3])
	assert.Equal(t, int64(1800), acme.Daily[15])
	assert.Equal(t, int64(5400), acme.Total)

	sub := m.Rows[1]
	assert.Equal(t, "acme/review", sub.Target)
	assert.Equal(t, int64(900), sub.Total)

	assert.Equal(t, int64(6300), m.GrandTotal)
}

func TestBuildMonth_RowSumsMatchRangeTotals(t *testing.T) {
	l := reportLedger(t)
	m := report.BuildMonth(l, 2026, time.August)

	for _, row := range m.Rows {
		got, err := report.RangeTotal(l, row.Target, "2026-08-01", "2026-08-31")
		require.NoError(t, err)
		assert.Equal(t, row.Total, got, "row %s", row.Target)
	}
}

func TestRangeTotal_UnknownTarget(t *testing.T) {
	_, err := report.RangeTotal(reportLedger(t), "ghost", "2026-08-01", "2026-08-31")
	assert.True(t, errors.Is(err, errclass.ErrTargetNotFound))
}

func TestProjectRangeTotal_IncludesSubs(t *testing.T) {
	got, err := report.ProjectRangeTotal(reportLedger(t), "acme", "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, int64(6300), got)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00:00", report.FormatDuration(0))
	assert.Equal(t, "00:01:05", report.FormatDuration(65))
	assert.Equal(t, "27:46:40", report.FormatDuration(100000))
}

func TestExportText(t *testing.T) {
	m := report.BuildMonth(reportLedger(t), 2026, time.August)
	out := report.ExportText(m)

	assert.Contains(t, out, "Time Report 2026-08")
	assert.Contains(t, out, "ACME (acme): 01:30:00")
	assert.Contains(t, out, "2026-08-03  01:00:00")
	assert.Contains(t, out, "Total: 01:45:00")
	assert.False(t, strings.Contains(out, "2026-09"), "other months excluded")
}

func TestExportText_EmptyMonth(t *testing.T) {
	m := report.BuildMonth(model.NewLedger(), 2026, time.January)
	assert.Contains(t, report.ExportText(m), "No time recorded")
}
