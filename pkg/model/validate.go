package model

import (
	"time"

	"github.com/ticktock-project/ticktock/pkg/aliasutil"
	"github.com/ticktock-project/ticktock/pkg/errclass"
)

// Validate checks the structural invariants of a ledger: aliases non-empty
// and unique within their scope, durations non-negative, date keys
// well-formed. A dangling current-target reference is not an error; it is
// cleared by Normalize.
func (l *Ledger) Validate() error {
	seen := make(map[string]bool, len(l.Projects))
	for _, p := range l.Projects {
		if err := aliasutil.ValidateAlias(p.Alias); err != nil {
			return err
		}
		if seen[p.Alias] {
			return errclass.ErrDuplicateAlias.WithMessagef("project alias %s appears twice", p.Alias)
		}
		seen[p.Alias] = true

		if err := validateRecords(p.Alias, p.TimeRecords); err != nil {
			return err
		}

		subSeen := make(map[string]bool, len(p.SubActivities))
		for _, s := range p.SubActivities {
			if err := aliasutil.ValidateAlias(s.Alias); err != nil {
				return err
			}
			if subSeen[s.Alias] {
				return errclass.ErrDuplicateAlias.WithMessagef("sub-activity alias %s appears twice under %s", s.Alias, p.Alias)
			}
			subSeen[s.Alias] = true

			if err := validateRecords(aliasutil.JoinTarget(p.Alias, s.Alias), s.TimeRecords); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateRecords(owner string, records TimeRecords) error {
	for date, secs := range records {
		if secs < 0 {
			return errclass.ErrLedgerCorrupt.WithMessagef("%s has negative duration %d on %s", owner, secs, date)
		}
		if _, err := time.Parse(DateLayout, date); err != nil {
			return errclass.ErrLedgerCorrupt.WithMessagef("%s has malformed date key %q", owner, date)
		}
	}
	return nil
}

// Normalize repairs the recoverable oddities of a freshly decoded ledger:
// nil collections become empty ones and a dangling current-target reference
// is treated as no target at all.
func (l *Ledger) Normalize() {
	if l.Projects == nil {
		l.Projects = []*Project{}
	}
	for _, p := range l.Projects {
		if p.TimeRecords == nil {
			p.TimeRecords = TimeRecords{}
		}
		if p.SubActivities == nil {
			p.SubActivities = []*SubActivity{}
		}
		for _, s := range p.SubActivities {
			if s.TimeRecords == nil {
				s.TimeRecords = TimeRecords{}
			}
		}
	}

	if l.CurrentProjectAlias != "" && l.CurrentTarget() == nil {
		l.ClearCurrentTarget()
	}
	if l.CurrentProjectAlias == "" {
		l.ActiveSince = nil
	}
}
