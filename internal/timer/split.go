package timer

import (
	"time"

	"github.com/ticktock-project/ticktock/pkg/model"
)

// distribute spreads total whole seconds across the calendar dates the
// interval covers, starting at the wall-clock instant start. Each day
// receives exactly the seconds that fall before its midnight boundary, so
// the per-day buckets always sum to total.
func distribute(records model.TimeRecords, start time.Time, total int64) {
	cursor := start
	remaining := total
	for remaining > 0 {
		midnight := startOfNextDay(cursor)
		span := int64(midnight.Sub(cursor) / time.Second)
		if span <= 0 {
			span = 1
		}
		share := remaining
		if share > span {
			share = span
		}
		records.AddSeconds(cursor.Format(model.DateLayout), share)
		remaining -= share
		if share == span {
			cursor = midnight
		} else {
			cursor = cursor.Add(time.Duration(share) * time.Second)
		}
	}
}

func startOfNextDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}
