// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type probe struct {
	size    tea.WindowSizeMsg
	focused bool
	msgs    int
}

func (p *probe) Init() tea.Cmd { return nil }

func (p *probe) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		p.size = msg
		return nil
	}
	p.msgs++
	return nil
}

func (p *probe) View() string                   { return "x" }
func (p *probe) Focus() (tea.Cmd, help.KeyMap) { p.focused = true; return nil, nil }
func (p *probe) Blur()                          { p.focused = false }

func TestStack_VerticalSizes(t *testing.T) {
	header, body, footer := &probe{}, &probe{}, &probe{}
	s := New(
		WithOrientation(Vertical),
		WithItem(header, StaticSize(3)),
		WithItem(body, VariableSize(1)),
		WithItem(footer, StaticSize(2)),
	)

	s.Update(tea.WindowSizeMsg{Width: 40, Height: 20})

	if header.size.Height != 3 || footer.size.Height != 2 {
		t.Fatalf("static items got %d and %d rows", header.size.Height, footer.size.Height)
	}
	if body.size.Height != 15 || body.size.Width != 40 {
		t.Fatalf("variable item got %dx%d, want 40x15", body.size.Width, body.size.Height)
	}
	if h := lipgloss.Height(s.View()); h != 20 {
		t.Fatalf("view height %d, want 20", h)
	}
}

func TestStack_HorizontalWeightsAndGap(t *testing.T) {
	left, right := &probe{}, &probe{}
	s := New(
		WithGap(2),
		WithItem(left, VariableSize(1)),
		WithItem(right, VariableSize(3)),
	)

	s.Update(tea.WindowSizeMsg{Width: 42, Height: 5})

	if left.size.Width != 10 || right.size.Width != 30 {
		t.Fatalf("got widths %d and %d, want 10 and 30", left.size.Width, right.size.Width)
	}
	if w := lipgloss.Width(s.View()); w != 42 {
		t.Fatalf("view width %d, want 42", w)
	}
}

func TestStack_SmallTerminalDropsItems(t *testing.T) {
	a, b := &probe{}, &probe{}
	s := New(
		WithOrientation(Vertical),
		WithItem(a, StaticSize(4)),
		WithItem(b, StaticSize(4)),
	)

	s.Update(tea.WindowSizeMsg{Width: 10, Height: 5})

	if a.size.Height != 4 || b.size.Height != 1 {
		t.Fatalf("got heights %d and %d, want 4 and 1", a.size.Height, b.size.Height)
	}
}

func TestStack_FocusForwarding(t *testing.T) {
	a, b := &probe{}, &probe{}
	s := New(WithItem(a, VariableSize(1)), WithItem(b, VariableSize(1)), WithFocus(FocusIndex(1)))

	s.Focus()
	if a.focused || !b.focused {
		t.Fatalf("expected only the second item focused")
	}

	s.SetFocus(FocusAll())
	if !a.focused || !b.focused {
		t.Fatalf("expected all items focused")
	}

	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if a.msgs != 1 || b.msgs != 1 {
		t.Fatalf("messages must reach every item, got %d and %d", a.msgs, b.msgs)
	}
}
