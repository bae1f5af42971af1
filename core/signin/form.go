// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.

package signin

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownField = errors.New("unknown form field")
	ErrInvalidValue = errors.New("invalid field value")
)

// Field names a single editable input of the form.
type Field string

const (
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
	FieldRemember Field = "remember"
)

// Fields lists the form fields in display order.
var Fields = []Field{FieldEmail, FieldPassword, FieldRemember}

// FormState is the in-memory representation of the editable fields.
type FormState struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
	Remember bool   `mapstructure:"remember"`
}

// With returns a copy of f with field set to value. f itself is untouched.
func (f FormState) With(field Field, value any) (FormState, error) {
	switch field {
	case FieldEmail, FieldPassword:
		s, ok := value.(string)
		if !ok {
			return f, fmt.Errorf("%w: %s expects a string, got %T", ErrInvalidValue, field, value)
		}
		if field == FieldEmail {
			f.Email = s
		} else {
			f.Password = s
		}
	case FieldRemember:
		b, ok := value.(bool)
		if !ok {
			return f, fmt.Errorf("%w: %s expects a bool, got %T", ErrInvalidValue, field, value)
		}
		f.Remember = b
	default:
		return f, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return f, nil
}

// Value returns the current value of field, or nil for unknown fields.
func (f FormState) Value(field Field) any {
	switch field {
	case FieldEmail:
		return f.Email
	case FieldPassword:
		return f.Password
	case FieldRemember:
		return f.Remember
	}
	return nil
}
