// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.

package signin

import (
	"strings"
	"testing"

	"github.com/toeirei/signin/internal/i18n"
)

func TestValidate_EmailRequired(t *testing.T) {
	i18n.Init("en")

	errs := Validator{}.Validate(FormState{Password: "longenough"})
	if errs.Passed() {
		t.Fatalf("expected validation to fail for empty email")
	}
	if got := errs.Get(FieldEmail); !strings.Contains(got, "enter the email") {
		t.Fatalf("expected required message for email, got %q", got)
	}
	if got := errs.Get(FieldPassword); got != "" {
		t.Fatalf("expected no password error, got %q", got)
	}
}

func TestValidate_EmailFormat(t *testing.T) {
	i18n.Init("en")

	for _, email := range []string{"foo", "a@b", "a b@example.com", "a@@example.com", "@example.com", "user@example."} {
		errs := Validator{}.Validate(FormState{Email: email, Password: "longenough"})
		if got := errs.Get(FieldEmail); !strings.Contains(got, "valid email address") {
			t.Fatalf("email %q: expected format error, got %q", email, got)
		}
	}

	for _, email := range []string{"user@example.com", "a.b+c@sub.example.org"} {
		errs := Validator{}.Validate(FormState{Email: email, Password: "longenough"})
		if !errs.Passed() {
			t.Fatalf("email %q: expected to pass, got %v", email, errs)
		}
	}
}

func TestValidate_PasswordRules(t *testing.T) {
	i18n.Init("en")

	errs := Validator{}.Validate(FormState{Email: "user@example.com"})
	if got := errs.Get(FieldPassword); !strings.Contains(got, "required") {
		t.Fatalf("expected required password error, got %q", got)
	}

	for _, pw := range []string{"a", "1234567", "äöüßéè!"} {
		errs := Validator{}.Validate(FormState{Email: "user@example.com", Password: pw})
		if got := errs.Get(FieldPassword); !strings.Contains(got, "at least 8 characters") {
			t.Fatalf("password %q: expected length error, got %q", pw, got)
		}
	}

	// exactly eight characters passes, also when they are multi-byte
	for _, pw := range []string{"12345678", "äöüßéè!?"} {
		errs := Validator{}.Validate(FormState{Email: "user@example.com", Password: pw})
		if !errs.Passed() {
			t.Fatalf("password %q: expected to pass, got %v", pw, errs)
		}
	}
}

func TestValidate_CustomMinLength(t *testing.T) {
	i18n.Init("en")

	v := Validator{MinPasswordLength: 12}
	errs := v.Validate(FormState{Email: "user@example.com", Password: "longenough"})
	if got := errs.Get(FieldPassword); !strings.Contains(got, "at least 12 characters") {
		t.Fatalf("expected length error mentioning 12, got %q", got)
	}
}

func TestValidationErrors_WithoutAndErr(t *testing.T) {
	errs := ValidationErrors{FieldEmail: "bad email", FieldPassword: "bad password"}

	cleared := errs.Without(FieldEmail)
	if cleared.Get(FieldEmail) != "" {
		t.Fatalf("expected email error to be cleared")
	}
	if errs.Get(FieldEmail) != "bad email" {
		t.Fatalf("Without must not modify the receiver")
	}

	err := errs.Err()
	if err == nil {
		t.Fatalf("expected joined error")
	}
	if got := err.Error(); got != "email: bad email\npassword: bad password" {
		t.Fatalf("unexpected joined error: %q", got)
	}

	if (ValidationErrors{FieldEmail: ""}).Err() != nil {
		t.Fatalf("expected nil error for empty messages")
	}
}
