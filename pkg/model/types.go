// Package model defines the persisted ledger aggregate: projects,
// sub-activities, and their accumulated per-day working time.
package model

import "time"

// DateLayout is the calendar-date key format used in time record maps.
const DateLayout = "2006-01-02"

// TimeRecords maps an ISO calendar date (YYYY-MM-DD) to accumulated whole
// seconds. Values are always non-negative.
type TimeRecords map[string]int64

// SubActivity is a child of a Project. Its alias is unique within the parent
// project only. Sub-activities cannot own further children.
type SubActivity struct {
	Alias       string      `json:"alias"`
	Name        string      `json:"name"`
	DZNumber    string      `json:"dz_number,omitempty"`
	TimeRecords TimeRecords `json:"time_records"`
}

// Project is a top-level tracking target. Its alias is unique across the
// whole ledger.
type Project struct {
	Alias         string         `json:"alias"`
	Name          string         `json:"name"`
	DZNumber      string         `json:"dz_number"`
	SubActivities []*SubActivity `json:"sub_activities"`
	TimeRecords   TimeRecords    `json:"time_records"`
}

// Ledger is the root aggregate and the unit of atomic persistence. Project
// order is user-meaningful and preserved across save/load.
type Ledger struct {
	Projects                []*Project `json:"projects"`
	CurrentProjectAlias     string     `json:"current_project_alias,omitempty"`
	CurrentSubActivityAlias string     `json:"current_sub_activity_alias,omitempty"`
	// ActiveSince is the wall-clock instant tracking last started, persisted
	// only so a crashed session can be recovered best-effort on next load.
	ActiveSince *time.Time `json:"active_since,omitempty"`
	Environment string     `json:"environment,omitempty"`
	LastSaved   time.Time  `json:"last_saved"`
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{Projects: []*Project{}}
}

// AddSeconds accumulates seconds onto the given calendar date.
func (r TimeRecords) AddSeconds(date string, seconds int64) {
	if seconds == 0 {
		return
	}
	r[date] += seconds
}

// Total returns the sum of all recorded seconds.
func (r TimeRecords) Total() int64 {
	var total int64
	for _, secs := range r {
		total += secs
	}
	return total
}

// TotalRange returns the sum of seconds for dates in [from, to] inclusive.
// ISO date keys compare lexicographically in calendar order.
func (r TimeRecords) TotalRange(from, to string) int64 {
	var total int64
	for date, secs := range r {
		if date >= from && date <= to {
			total += secs
		}
	}
	return total
}
