// Package aliasutil provides validation for project and sub-activity aliases.
package aliasutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/ticktock-project/ticktock/pkg/errclass"
)

// TargetSeparator joins a project alias and a sub-activity alias into one
// qualified target name, e.g. "acme/review".
const TargetSeparator = "/"

// Normalize returns the NFC-normalized, whitespace-trimmed form of an alias.
// All alias comparisons go through this so visually identical aliases collide.
func Normalize(alias string) string {
	return norm.NFC.String(strings.TrimSpace(alias))
}

// ValidateAlias checks that an alias is usable as a stable ledger key.
func ValidateAlias(alias string) error {
	alias = Normalize(alias)

	if alias == "" {
		return errclass.ErrAliasInvalid.WithMessage("alias must not be empty")
	}
	if strings.ContainsAny(alias, "/\\") {
		return errclass.ErrAliasInvalid.WithMessagef("alias must not contain separators: %s", alias)
	}
	for _, r := range alias {
		if unicode.IsControl(r) {
			return errclass.ErrAliasInvalid.WithMessagef("alias must not contain control characters: %q", alias)
		}
	}
	return nil
}

// SplitTarget splits a qualified target name into project and sub-activity
// aliases. The sub-activity part is empty when the target is a bare project.
func SplitTarget(target string) (project, sub string) {
	project, sub, _ = strings.Cut(Normalize(target), TargetSeparator)
	return strings.TrimSpace(project), strings.TrimSpace(sub)
}

// JoinTarget builds a qualified target name. An empty sub yields the bare
// project alias.
func JoinTarget(project, sub string) string {
	if sub == "" {
		return project
	}
	return project + TargetSeparator + sub
}
