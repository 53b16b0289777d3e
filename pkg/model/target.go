package model

import (
	"github.com/ticktock-project/ticktock/pkg/aliasutil"
	"github.com/ticktock-project/ticktock/pkg/errclass"
)

// Target is a resolved tracking subject: a project, or one of its
// sub-activities. Sub is nil for a bare project target.
type Target struct {
	Project *Project
	Sub     *SubActivity
}

// ResolveTarget resolves a qualified target name ("project" or
// "project/sub") against the ledger.
func (l *Ledger) ResolveTarget(name string) (*Target, error) {
	projectAlias, subAlias := aliasutil.SplitTarget(name)

	p := l.Project(projectAlias)
	if p == nil {
		return nil, errclass.ErrTargetNotFound.WithMessagef("no project %q", projectAlias)
	}
	if subAlias == "" {
		return &Target{Project: p}, nil
	}

	s := p.Sub(subAlias)
	if s == nil {
		return nil, errclass.ErrTargetNotFound.WithMessagef("no sub-activity %q under project %s", subAlias, p.Alias)
	}
	return &Target{Project: p, Sub: s}, nil
}

// Alias returns the qualified target name.
func (t *Target) Alias() string {
	if t.Sub != nil {
		return aliasutil.JoinTarget(t.Project.Alias, t.Sub.Alias)
	}
	return t.Project.Alias
}

// DisplayName returns the human-readable name of the target.
func (t *Target) DisplayName() string {
	if t.Sub != nil {
		return t.Sub.Name
	}
	return t.Project.Name
}

// Records returns the time record map the target accumulates into.
func (t *Target) Records() TimeRecords {
	if t.Sub != nil {
		return t.Sub.TimeRecords
	}
	return t.Project.TimeRecords
}

// CurrentTarget resolves the persisted current-target aliases. A dangling
// reference yields nil rather than an error.
func (l *Ledger) CurrentTarget() *Target {
	if l.CurrentProjectAlias == "" {
		return nil
	}
	t, err := l.ResolveTarget(aliasutil.JoinTarget(l.CurrentProjectAlias, l.CurrentSubActivityAlias))
	if err != nil {
		return nil
	}
	return t
}

// SetCurrentTarget records the given target as the tracked one.
func (l *Ledger) SetCurrentTarget(t *Target) {
	l.CurrentProjectAlias = t.Project.Alias
	if t.Sub != nil {
		l.CurrentSubActivityAlias = t.Sub.Alias
	} else {
		l.CurrentSubActivityAlias = ""
	}
}

// ClearCurrentTarget clears the tracked target and the recovery timestamp.
func (l *Ledger) ClearCurrentTarget() {
	l.CurrentProjectAlias = ""
	l.CurrentSubActivityAlias = ""
	l.ActiveSince = nil
}
