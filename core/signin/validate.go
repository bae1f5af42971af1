// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.

package signin

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"unicode/utf8"

	"github.com/toeirei/signin/internal/i18n"
)

// DefaultMinPasswordLength is the shortest password accepted by the
// zero-value Validator.
const DefaultMinPasswordLength = 8

// local@domain.tld: no whitespace, a single "@", a dot in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationErrors maps a field to a human-readable validation failure.
// An empty message means the field has no error.
type ValidationErrors map[Field]string

// Passed reports whether no field carries an error.
func (e ValidationErrors) Passed() bool {
	for _, msg := range e {
		if msg != "" {
			return false
		}
	}
	return true
}

// Get returns the message for field, or "" when it is valid.
func (e ValidationErrors) Get(field Field) string {
	return e[field]
}

// Without returns a copy of e with field cleared.
func (e ValidationErrors) Without(field Field) ValidationErrors {
	if e.Get(field) == "" {
		return e
	}
	out := maps.Clone(e)
	delete(out, field)
	return out
}

// Err joins the field messages into a single error in field order, or
// returns nil when validation passed.
func (e ValidationErrors) Err() error {
	var errs []error
	for _, field := range Fields {
		if msg := e.Get(field); msg != "" {
			errs = append(errs, fmt.Errorf("%s: %s", field, msg))
		}
	}
	return errors.Join(errs...)
}

// Validator checks a FormState against the sign-in rules.
type Validator struct {
	// MinPasswordLength is counted in runes. Zero means DefaultMinPasswordLength.
	MinPasswordLength int
}

func (v Validator) minPasswordLength() int {
	if v.MinPasswordLength > 0 {
		return v.MinPasswordLength
	}
	return DefaultMinPasswordLength
}

// Validate returns the errors found in f. The result passes iff it is empty.
func (v Validator) Validate(f FormState) ValidationErrors {
	errs := ValidationErrors{}

	if f.Email == "" {
		errs[FieldEmail] = i18n.T("signin.error.email_required")
	} else if !emailPattern.MatchString(f.Email) {
		errs[FieldEmail] = i18n.T("signin.error.email_invalid")
	}

	minLen := v.minPasswordLength()
	if f.Password == "" {
		errs[FieldPassword] = i18n.T("signin.error.password_required")
	} else if utf8.RuneCountInString(f.Password) < minLen {
		errs[FieldPassword] = i18n.T("signin.error.password_too_short", map[string]any{"Min": minLen})
	}

	return errs
}
