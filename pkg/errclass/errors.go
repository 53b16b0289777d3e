package errclass

import "fmt"

// TickTockError is a stable, machine-readable error class.
type TickTockError struct {
	Code    string
	Message string
}

func (e *TickTockError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *TickTockError) Is(target error) bool {
	t, ok := target.(*TickTockError)
	return ok && e.Code == t.Code
}

// WithMessage returns a new TickTockError with the same Code but a specific message.
func (e *TickTockError) WithMessage(msg string) *TickTockError {
	return &TickTockError{Code: e.Code, Message: msg}
}

// WithMessagef returns a new TickTockError with a formatted message.
func (e *TickTockError) WithMessagef(format string, args ...any) *TickTockError {
	return &TickTockError{Code: e.Code, Message: fmt.Sprintf(format, args...)}
}

// All stable error classes.
var (
	ErrTargetNotFound = &TickTockError{Code: "E_TARGET_NOT_FOUND"}
	ErrLedgerCorrupt  = &TickTockError{Code: "E_LEDGER_CORRUPT"}
	ErrSettingLocked  = &TickTockError{Code: "E_SETTING_LOCKED"}
	ErrSettingUnknown = &TickTockError{Code: "E_SETTING_UNKNOWN"}
	ErrDuplicateAlias = &TickTockError{Code: "E_DUPLICATE_ALIAS"}
	ErrAliasInvalid   = &TickTockError{Code: "E_ALIAS_INVALID"}
	ErrIOFailure      = &TickTockError{Code: "E_IO_FAILURE"}
	ErrEnvUnknown     = &TickTockError{Code: "E_ENV_UNKNOWN"}
)
