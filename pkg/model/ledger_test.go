package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ticktock-project/ticktock/pkg/errclass"
	"github.com/ticktock-project/ticktock/pkg/model"
)

func TestAddProject(t *testing.T) {
	l := model.NewLedger()
	p, err := l.AddProject("acme", "ACME Website", "DZ-1042")
	require.NoError(t, err)
	assert.Equal(t, "acme", p.Alias)
	assert.Equal(t, "DZ-1042", p.DZNumber)
	assert.NotNil(t, p.TimeRecords)
	assert.Same(t, p, l.Project("acme"))
}

func TestAddProject_DuplicateAlias(t *testing.T) {
	l := model.NewLedger()
	_, err := l.AddProject("acme", "ACME", "DZ-1")
	require.NoError(t, err)

	_, err = l.AddProject("acme", "Other", "DZ-2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errclass.ErrDuplicateAlias))
	assert.Len(t, l.Projects, 1, "rejected add must not mutate")
}

func TestAddProject_AliasDefaultsToName(t *testing.T) {
	l := model.NewLedger()
	p, err := l.AddProject("", "Maintenance", "")
	require.NoError(t, err)
	assert.Equal(t, "Maintenance", p.Alias)
}

func TestAddProject_InvalidAlias(t *testing.T) {
	l := model.NewLedger()
	_, err := l.AddProject("a/b", "Bad", "")
	assert.True(t, errors.Is(err, errclass.ErrAliasInvalid))
}

func TestRemoveProject_Cascades(t *testing.T) {
	l := model.NewLedger()
	p, _ := l.AddProject("acme", "ACME", "")
	p.AddSub("review", "Code Review", "")
	l.CurrentProjectAlias = "acme"
	l.CurrentSubActivityAlias = "review"

	require.True(t, l.RemoveProject("acme"))
	assert.Empty(t, l.Projects)
	assert.Empty(t, l.CurrentProjectAlias, "current target cleared when its project goes")
	assert.Empty(t, l.CurrentSubActivityAlias)
	assert.False(t, l.RemoveProject("acme"))
}

func TestProjectOrderPreserved(t *testing.T) {
	l := model.NewLedger()
	l.AddProject("zulu", "Z", "")
	l.AddProject("alpha", "A", "")
	l.AddProject("mike", "M", "")
	assert.Equal(t, []string{"zulu", "alpha", "mike"}, l.Aliases())
}

func TestSubAliasUniquePerProjectOnly(t *testing.T) {
	l := model.NewLedger()
	p1, _ := l.AddProject("acme", "ACME", "")
	p2, _ := l.AddProject("globex", "Globex", "")

	_, err := p1.AddSub("review", "Review", "")
	require.NoError(t, err)
	_, err = p2.AddSub("review", "Review", "")
	require.NoError(t, err, "same sub alias under a different project is fine")

	_, err = p1.AddSub("review", "Again", "")
	assert.True(t, errors.Is(err, errclass.ErrDuplicateAlias))
}

func TestRenameProject_KeepsRecords(t *testing.T) {
	l := model.NewLedger()
	p, _ := l.AddProject("acme", "ACME", "DZ-1")
	p.TimeRecords.AddSeconds("2026-08-30", 600)

	require.NoError(t, l.RenameProject("acme", "ACME Corp", "DZ-9"))
	assert.Equal(t, "ACME Corp", p.Name)
	assert.Equal(t, "DZ-9", p.DZNumber)
	assert.Equal(t, int64(600), p.TimeRecords["2026-08-30"])
}

func TestReAliasProject(t *testing.T) {
	l := model.NewLedger()
	l.AddProject("acme", "ACME", "")
	l.CurrentProjectAlias = "acme"

	require.NoError(t, l.ReAliasProject("acme", "acme2"))
	assert.Nil(t, l.Project("acme"))
	assert.NotNil(t, l.Project("acme2"))
	assert.Equal(t, "acme2", l.CurrentProjectAlias, "current reference follows the re-alias")
}

func TestReAliasProject_FrozenOnceTimeRecorded(t *testing.T) {
	l := model.NewLedger()
	p, _ := l.AddProject("acme", "ACME", "")
	p.TimeRecords.AddSeconds("2026-08-30", 1)

	err := l.ReAliasProject("acme", "acme2")
	assert.True(t, errors.Is(err, errclass.ErrAliasInvalid))
	assert.NotNil(t, l.Project("acme"))
}

func TestReAliasProject_Duplicate(t *testing.T) {
	l := model.NewLedger()
	l.AddProject("acme", "ACME", "")
	l.AddProject("globex", "Globex", "")

	err := l.ReAliasProject("acme", "globex")
	assert.True(t, errors.Is(err, errclass.ErrDuplicateAlias))
}

func TestTimeRecords_Totals(t *testing.T) {
	r := model.TimeRecords{}
	r.AddSeconds("2026-08-01", 100)
	r.AddSeconds("2026-08-15", 200)
	r.AddSeconds("2026-09-01", 400)

	assert.Equal(t, int64(700), r.Total())
	assert.Equal(t, int64(300), r.TotalRange("2026-08-01", "2026-08-31"))
	assert.Equal(t, int64(400), r.TotalRange("2026-09-01", "2026-09-30"))
}

func TestNormalizedAliasLookup(t *testing.T) {
	l := model.NewLedger()
	l.AddProject("  acme  ", "ACME", "")
	require.NotNil(t, l.Project("acme"))
}
