// Package report builds per-day and aggregated-range totals from a ledger,
// feeding the monthly reporting surface.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/ticktock-project/ticktock/pkg/model"
)

// Row is one target's totals within a month: seconds per day-of-month plus
// the row total.
type Row struct {
	Target string
	Name   string
	Daily  map[int]int64
	Total  int64
}

// Month is the per-target, per-day matrix for one calendar month. Rows
// follow ledger order, each project followed by its sub-activities.
type Month struct {
	Year       int
	Month      time.Month
	Days       int
	Rows       []Row
	GrandTotal int64
}

// BuildMonth assembles the monthly matrix for all targets with recorded
// time. Targets without any time in the month are omitted.
func BuildMonth(l *model.Ledger, year int, month time.Month) *Month {
	m := &Month{
		Year:  year,
		Month: month,
		Days:  daysIn(year, month),
	}

	for _, p := range l.Projects {
		m.addRow(p.Alias, p.Name, p.TimeRecords)
		for _, s := range p.SubActivities {
			m.addRow(p.Alias+"/"+s.Alias, s.Name, s.TimeRecords)
		}
	}
	return m
}

func (m *Month) addRow(target, name string, records model.TimeRecords) {
	prefix := fmt.Sprintf("%04d-%02d-", m.Year, int(m.Month))
	daily := map[int]int64{}
	var total int64
	for date, secs := range records {
		if !strings.HasPrefix(date, prefix) || secs == 0 {
			continue
		}
		var day int
		if _, err := fmt.Sscanf(date[len(prefix):], "%d", &day); err != nil {
			continue
		}
		daily[day] += secs
		total += secs
	}
	if total == 0 {
		return
	}
	m.Rows = append(m.Rows, Row{Target: target, Name: name, Daily: daily, Total: total})
	m.GrandTotal += total
}

// RangeTotal sums a target's own records over [from, to] inclusive, dates
// in YYYY-MM-DD form.
func RangeTotal(l *model.Ledger, targetName, from, to string) (int64, error) {
	target, err := l.ResolveTarget(targetName)
	if err != nil {
		return 0, err
	}
	return target.Records().TotalRange(from, to), nil
}

// ProjectRangeTotal sums a project and all of its sub-activities over
// [from, to] inclusive.
func ProjectRangeTotal(l *model.Ledger, alias, from, to string) (int64, error) {
	target, err := l.ResolveTarget(alias)
	if err != nil {
		return 0, err
	}
	total := target.Project.TimeRecords.TotalRange(from, to)
	for _, s := range target.Project.SubActivities {
		total += s.TimeRecords.TotalRange(from, to)
	}
	return total, nil
}

// FormatDuration renders whole seconds as HH:MM:SS.
func FormatDuration(seconds int64) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

// ExportText renders the month as a plain-text report.
func ExportText(m *Month) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Time Report %04d-%02d\n", m.Year, int(m.Month))
	b.WriteString(strings.Repeat("=", 30) + "\n\n")

	if len(m.Rows) == 0 {
		b.WriteString("No time recorded this month.\n")
		return b.String()
	}

	for _, row := range m.Rows {
		fmt.Fprintf(&b, "%s (%s): %s\n", row.Name, row.Target, FormatDuration(row.Total))
		for day := 1; day <= m.Days; day++ {
			if secs, ok := row.Daily[day]; ok {
				fmt.Fprintf(&b, "  %04d-%02d-%02d  %s\n", m.Year, int(m.Month), day, FormatDuration(secs))
			}
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Total: %s\n", FormatDuration(m.GrandTotal))
	return b.String()
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
