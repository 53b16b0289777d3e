package model

import (
	"errors"
	"testing"
	"time"

	"github.com/ticktock-project/ticktock/pkg/errclass"
)

func TestValidate_Empty(t *testing.T) {
	if err := NewLedger().Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_DuplicateProjectAlias(t *testing.T) {
	l := NewLedger()
	l.Projects = []*Project{
		{Alias: "acme", TimeRecords: TimeRecords{}},
		{Alias: "acme", TimeRecords: TimeRecords{}},
	}
	err := l.Validate()
	if !errors.Is(err, errclass.ErrDuplicateAlias) {
		t.Errorf("expected E_DUPLICATE_ALIAS, got %v", err)
	}
}

func TestValidate_DuplicateSubAlias(t *testing.T) {
	l := NewLedger()
	l.Projects = []*Project{{
		Alias:       "acme",
		TimeRecords: TimeRecords{},
		SubActivities: []*SubActivity{
			{Alias: "review", TimeRecords: TimeRecords{}},
			{Alias: "review", TimeRecords: TimeRecords{}},
		},
	}}
	if err := l.Validate(); !errors.Is(err, errclass.ErrDuplicateAlias) {
		t.Errorf("expected E_DUPLICATE_ALIAS, got %v", err)
	}
}

func TestValidate_NegativeDuration(t *testing.T) {
	l := NewLedger()
	l.Projects = []*Project{{
		Alias:       "acme",
		TimeRecords: TimeRecords{"2026-08-30": -5},
	}}
	if err := l.Validate(); !errors.Is(err, errclass.ErrLedgerCorrupt) {
		t.Errorf("expected E_LEDGER_CORRUPT, got %v", err)
	}
}

func TestValidate_MalformedDateKey(t *testing.T) {
	l := NewLedger()
	l.Projects = []*Project{{
		Alias:       "acme",
		TimeRecords: TimeRecords{"30/08/2026": 10},
	}}
	if err := l.Validate(); !errors.Is(err, errclass.ErrLedgerCorrupt) {
		t.Errorf("expected E_LEDGER_CORRUPT, got %v", err)
	}
}

func TestValidate_EmptyAlias(t *testing.T) {
	l := NewLedger()
	l.Projects = []*Project{{Alias: "", TimeRecords: TimeRecords{}}}
	if err := l.Validate(); !errors.Is(err, errclass.ErrAliasInvalid) {
		t.Errorf("expected E_ALIAS_INVALID, got %v", err)
	}
}

func TestNormalize_RepairsNilCollections(t *testing.T) {
	l := &Ledger{Projects: []*Project{{Alias: "acme", SubActivities: []*SubActivity{{Alias: "review"}}}}}
	l.Normalize()
	if l.Projects[0].TimeRecords == nil {
		t.Error("project records not initialized")
	}
	if l.Projects[0].SubActivities[0].TimeRecords == nil {
		t.Error("sub records not initialized")
	}
}

func TestNormalize_ClearsDanglingTarget(t *testing.T) {
	now := time.Now()
	l := NewLedger()
	l.CurrentProjectAlias = "ghost"
	l.ActiveSince = &now
	l.Normalize()
	if l.CurrentProjectAlias != "" {
		t.Error("dangling current target should be cleared")
	}
	if l.ActiveSince != nil {
		t.Error("recovery timestamp should be cleared with the target")
	}
}
