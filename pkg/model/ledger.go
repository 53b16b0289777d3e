package model

import (
	"github.com/ticktock-project/ticktock/pkg/aliasutil"
	"github.com/ticktock-project/ticktock/pkg/errclass"
)

// Project returns the project with the given alias, or nil.
func (l *Ledger) Project(alias string) *Project {
	alias = aliasutil.Normalize(alias)
	for _, p := range l.Projects {
		if p.Alias == alias {
			return p
		}
	}
	return nil
}

// AddProject appends a new project. The alias must be valid and unique
// across the ledger; nothing is mutated on rejection.
func (l *Ledger) AddProject(alias, name, dzNumber string) (*Project, error) {
	alias = aliasutil.Normalize(alias)
	if alias == "" {
		alias = aliasutil.Normalize(name)
	}
	if err := aliasutil.ValidateAlias(alias); err != nil {
		return nil, err
	}
	if l.Project(alias) != nil {
		return nil, errclass.ErrDuplicateAlias.WithMessagef("project alias %s already in use", alias)
	}

	p := &Project{
		Alias:         alias,
		Name:          name,
		DZNumber:      dzNumber,
		SubActivities: []*SubActivity{},
		TimeRecords:   TimeRecords{},
	}
	l.Projects = append(l.Projects, p)
	return p, nil
}

// RemoveProject deletes a project and all of its sub-activities. A current
// target pointing at the removed project is cleared.
func (l *Ledger) RemoveProject(alias string) bool {
	alias = aliasutil.Normalize(alias)
	for i, p := range l.Projects {
		if p.Alias != alias {
			continue
		}
		l.Projects = append(l.Projects[:i], l.Projects[i+1:]...)
		if l.CurrentProjectAlias == alias {
			l.CurrentProjectAlias = ""
			l.CurrentSubActivityAlias = ""
			l.ActiveSince = nil
		}
		return true
	}
	return false
}

// RenameProject updates the display name and external code. The alias key is
// untouched, so existing time records and the current-target reference stay
// valid.
func (l *Ledger) RenameProject(alias, newName, newDZNumber string) error {
	p := l.Project(alias)
	if p == nil {
		return errclass.ErrTargetNotFound.WithMessagef("no project %q", alias)
	}
	p.Name = newName
	p.DZNumber = newDZNumber
	return nil
}

// ReAliasProject changes a project's alias key. Refused once the project or
// any of its sub-activities has accumulated time, because the alias is the
// stable key time records are attributed to.
func (l *Ledger) ReAliasProject(alias, newAlias string) error {
	p := l.Project(alias)
	if p == nil {
		return errclass.ErrTargetNotFound.WithMessagef("no project %q", alias)
	}
	newAlias = aliasutil.Normalize(newAlias)
	if err := aliasutil.ValidateAlias(newAlias); err != nil {
		return err
	}
	if newAlias == p.Alias {
		return nil
	}
	if l.Project(newAlias) != nil {
		return errclass.ErrDuplicateAlias.WithMessagef("project alias %s already in use", newAlias)
	}
	if p.hasRecordedTime() {
		return errclass.ErrAliasInvalid.WithMessagef("project %s has recorded time; its alias is frozen", p.Alias)
	}

	if l.CurrentProjectAlias == p.Alias {
		l.CurrentProjectAlias = newAlias
	}
	p.Alias = newAlias
	return nil
}

// Sub returns the sub-activity with the given alias, or nil.
func (p *Project) Sub(alias string) *SubActivity {
	alias = aliasutil.Normalize(alias)
	for _, s := range p.SubActivities {
		if s.Alias == alias {
			return s
		}
	}
	return nil
}

// AddSub appends a new sub-activity. The alias must be unique within this
// project only.
func (p *Project) AddSub(alias, name, dzNumber string) (*SubActivity, error) {
	alias = aliasutil.Normalize(alias)
	if alias == "" {
		alias = aliasutil.Normalize(name)
	}
	if err := aliasutil.ValidateAlias(alias); err != nil {
		return nil, err
	}
	if p.Sub(alias) != nil {
		return nil, errclass.ErrDuplicateAlias.WithMessagef("sub-activity alias %s already in use under %s", alias, p.Alias)
	}

	s := &SubActivity{
		Alias:       alias,
		Name:        name,
		DZNumber:    dzNumber,
		TimeRecords: TimeRecords{},
	}
	p.SubActivities = append(p.SubActivities, s)
	return s, nil
}

// RemoveSub deletes a sub-activity by alias.
func (p *Project) RemoveSub(alias string) bool {
	alias = aliasutil.Normalize(alias)
	for i, s := range p.SubActivities {
		if s.Alias == alias {
			p.SubActivities = append(p.SubActivities[:i], p.SubActivities[i+1:]...)
			return true
		}
	}
	return false
}

func (p *Project) hasRecordedTime() bool {
	if len(p.TimeRecords) > 0 {
		return true
	}
	for _, s := range p.SubActivities {
		if len(s.TimeRecords) > 0 {
			return true
		}
	}
	return false
}

// Aliases returns all project aliases in ledger order.
func (l *Ledger) Aliases() []string {
	aliases := make([]string, 0, len(l.Projects))
	for _, p := range l.Projects {
		aliases = append(aliases, p.Alias)
	}
	return aliases
}
