// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.
package windowtitle

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTitleHandler(t *testing.T) {
	h := NewHandler("Signin v1", " | ")
	if h.Title() != "Signin v1" {
		t.Fatalf("unexpected base title %q", h.Title())
	}

	if _, ok := h.Handle(tea.KeyMsg{}); ok {
		t.Fatalf("key messages must not be consumed")
	}

	cmd, ok := h.Handle(Set("Sign in")())
	if !ok || cmd == nil {
		t.Fatalf("expected title update command")
	}
	if h.Title() != "Sign in | Signin v1" {
		t.Fatalf("unexpected title %q", h.Title())
	}

	if cmd, ok := h.Handle(Set("Sign in")()); !ok || cmd != nil {
		t.Fatalf("unchanged title must be consumed without a command")
	}
}
