package errclass_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ticktock-project/ticktock/pkg/errclass"
)

func TestTickTockError_Error(t *testing.T) {
	err := errclass.ErrDuplicateAlias.WithMessage("alias acme already in use")
	assert.Equal(t, "E_DUPLICATE_ALIAS: alias acme already in use", err.Error())
}

func TestTickTockError_ErrorCodeOnly(t *testing.T) {
	assert.Equal(t, "E_LEDGER_CORRUPT", errclass.ErrLedgerCorrupt.Error())
}

func TestTickTockError_Is(t *testing.T) {
	err := errclass.ErrSettingLocked.WithMessage("environment is locked in distributed builds")
	require.True(t, errors.Is(err, errclass.ErrSettingLocked))
	require.False(t, errors.Is(err, errclass.ErrSettingUnknown))
}

func TestTickTockError_WithMessagef(t *testing.T) {
	err := errclass.ErrTargetNotFound.WithMessagef("no project or sub-activity %q", "acme/review")
	assert.Equal(t, `E_TARGET_NOT_FOUND: no project or sub-activity "acme/review"`, err.Error())
	require.True(t, errors.Is(err, errclass.ErrTargetNotFound))
}

func TestTickTockError_AllErrorsDefined(t *testing.T) {
	all := []error{
		errclass.ErrTargetNotFound,
		errclass.ErrLedgerCorrupt,
		errclass.ErrSettingLocked,
		errclass.ErrSettingUnknown,
		errclass.ErrDuplicateAlias,
		errclass.ErrAliasInvalid,
		errclass.ErrIOFailure,
		errclass.ErrEnvUnknown,
	}
	assert.Len(t, all, 8)
}
