// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.

package signin

import (
	"errors"
	"strings"
	"testing"

	"github.com/toeirei/signin/internal/i18n"
)

func fill(t *testing.T, m *Machine, email, password string, remember bool) {
	t.Helper()
	if err := m.Change(FieldEmail, email); err != nil {
		t.Fatalf("change email: %v", err)
	}
	if err := m.Change(FieldPassword, password); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if err := m.Change(FieldRemember, remember); err != nil {
		t.Fatalf("change remember: %v", err)
	}
}

func TestMachine_SubmitRememberTrue(t *testing.T) {
	i18n.Init("en")
	m := NewMachine(Options{})
	fill(t, m, "user@example.com", "longenough", true)

	ticket, ok := m.Submit()
	if !ok {
		t.Fatalf("expected a pending ticket")
	}
	if ticket.Delay != DefaultDelay {
		t.Fatalf("expected delay %s, got %s", DefaultDelay, ticket.Delay)
	}
	if m.Status() != StatusLoading {
		t.Fatalf("expected loading, got %s", m.Status())
	}

	if !m.Complete(ticket) {
		t.Fatalf("expected ticket to complete")
	}
	if m.Status() != StatusSuccess {
		t.Fatalf("expected success, got %s", m.Status())
	}
	if msg := m.Message(); !strings.Contains(msg, "stay signed in") || !strings.Contains(msg, "user@example.com") {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestMachine_SubmitRememberFalse(t *testing.T) {
	i18n.Init("en")
	m := NewMachine(Options{})
	fill(t, m, "user@example.com", "longenough", false)

	ticket, _ := m.Submit()
	m.Complete(ticket)
	if msg := m.Message(); !strings.Contains(msg, "sign you out automatically") {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestMachine_InvalidSubmitStaysIdle(t *testing.T) {
	i18n.Init("en")
	m := NewMachine(Options{})
	fill(t, m, "", "short", false)

	if _, ok := m.Submit(); ok {
		t.Fatalf("expected no ticket for invalid form")
	}
	if m.Status() != StatusIdle {
		t.Fatalf("expected idle, got %s", m.Status())
	}
	if m.Errors().Get(FieldEmail) == "" || m.Errors().Get(FieldPassword) == "" {
		t.Fatalf("expected errors on both fields, got %v", m.Errors())
	}
}

func TestMachine_DoubleSubmitOnlyLatestResolves(t *testing.T) {
	i18n.Init("en")
	m := NewMachine(Options{})
	fill(t, m, "user@example.com", "longenough", true)

	first, _ := m.Submit()
	second, _ := m.Submit()
	if first.ID == second.ID {
		t.Fatalf("expected distinct tickets")
	}

	if m.Complete(first) {
		t.Fatalf("superseded ticket must not resolve")
	}
	if m.Status() != StatusLoading {
		t.Fatalf("expected still loading, got %s", m.Status())
	}
	if !m.Complete(second) {
		t.Fatalf("latest ticket must resolve")
	}
	// a duplicate delivery of the same ticket is ignored as well
	if m.Complete(second) {
		t.Fatalf("ticket must resolve only once")
	}
}

func TestMachine_InvalidSubmitCancelsPending(t *testing.T) {
	i18n.Init("en")
	m := NewMachine(Options{})
	fill(t, m, "user@example.com", "longenough", true)

	ticket, _ := m.Submit()
	if err := m.Change(FieldEmail, "nope"); err != nil {
		t.Fatal(err)
	}
	if _, ok := m.Submit(); ok {
		t.Fatalf("expected invalid submit")
	}
	if m.Complete(ticket) {
		t.Fatalf("pending ticket should have been cancelled")
	}
	if m.Status() != StatusIdle {
		t.Fatalf("expected idle, got %s", m.Status())
	}
}

func TestMachine_EditClearsFieldErrorAndResetsStatus(t *testing.T) {
	i18n.Init("en")
	m := NewMachine(Options{})
	m.Submit()

	if err := m.Change(FieldEmail, "u"); err != nil {
		t.Fatal(err)
	}
	if m.Errors().Get(FieldEmail) != "" {
		t.Fatalf("expected email error cleared")
	}
	if m.Errors().Get(FieldPassword) == "" {
		t.Fatalf("expected password error kept")
	}

	fill(t, m, "user@example.com", "longenough", false)
	ticket, _ := m.Submit()
	m.Complete(ticket)
	if m.Status() != StatusSuccess {
		t.Fatalf("expected success, got %s", m.Status())
	}
	if err := m.Change(FieldRemember, true); err != nil {
		t.Fatal(err)
	}
	if m.Status() != StatusIdle || m.Message() != "" {
		t.Fatalf("expected edit to reset to idle, got %s %q", m.Status(), m.Message())
	}
}

func TestMachine_EditWhileLoadingKeepsLoadingAndSnapshot(t *testing.T) {
	i18n.Init("en")
	m := NewMachine(Options{})
	fill(t, m, "user@example.com", "longenough", true)

	ticket, _ := m.Submit()
	if err := m.Change(FieldEmail, "other@example.com"); err != nil {
		t.Fatal(err)
	}
	if m.Status() != StatusLoading {
		t.Fatalf("expected loading to survive an edit, got %s", m.Status())
	}
	m.Complete(ticket)
	if msg := m.Message(); !strings.Contains(msg, "user@example.com") {
		t.Fatalf("expected message for the submitted email, got %q", msg)
	}
}

func TestMachine_CloseDuringLoading(t *testing.T) {
	i18n.Init("en")
	m := NewMachine(Options{})
	fill(t, m, "user@example.com", "longenough", true)

	ticket, _ := m.Submit()
	m.Close()
	m.Close()

	if m.Complete(ticket) {
		t.Fatalf("ticket must not resolve after close")
	}
	if m.Status() != StatusLoading || m.Message() != "" {
		t.Fatalf("state changed after close: %s %q", m.Status(), m.Message())
	}
	if err := m.Change(FieldEmail, "x"); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if _, ok := m.Submit(); ok {
		t.Fatalf("submit after close must be ignored")
	}
}

func TestMachine_TogglePasswordVisibility(t *testing.T) {
	i18n.Init("en")
	m := NewMachine(Options{})

	if !m.TogglePasswordVisibility() || !m.PasswordVisible() {
		t.Fatalf("expected password to become visible")
	}
	fill(t, m, "user@example.com", "longenough", false)
	m.Submit()
	if m.TogglePasswordVisibility() {
		t.Fatalf("toggle must be refused while loading")
	}
	if !m.PasswordVisible() {
		t.Fatalf("visibility changed while loading")
	}
}

func TestMachine_BasicVariant(t *testing.T) {
	i18n.Init("en")
	m := NewMachine(Options{Variant: VariantBasic, Delay: DefaultDelay})

	m.Submit()
	if err := m.Change(FieldEmail, "user@example.com"); err != nil {
		t.Fatal(err)
	}
	if m.Errors().Get(FieldEmail) == "" {
		t.Fatalf("basic variant only re-validates on submit")
	}

	if err := m.Change(FieldPassword, "longenough"); err != nil {
		t.Fatal(err)
	}
	if _, ok := m.Submit(); ok {
		t.Fatalf("basic variant must complete synchronously")
	}
	if m.Status() != StatusSuccess || !m.Errors().Passed() {
		t.Fatalf("expected success without errors, got %s %v", m.Status(), m.Errors())
	}
	if m.TogglePasswordVisibility() {
		t.Fatalf("basic variant has no password toggle")
	}
}

func TestMachine_ChangeRejectsBadInput(t *testing.T) {
	m := NewMachine(Options{})
	if err := m.Change("username", "x"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	if err := m.Change(FieldRemember, "yes"); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
	if err := m.Change(FieldEmail, 1); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}

func TestParseVariant(t *testing.T) {
	cases := map[string]Variant{"": VariantFull, "full": VariantFull, " Basic ": VariantBasic}
	for in, want := range cases {
		got, err := ParseVariant(in)
		if err != nil || got != want {
			t.Fatalf("ParseVariant(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseVariant("fancy"); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
}
