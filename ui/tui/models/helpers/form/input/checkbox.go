// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/signin/internal/i18n"
	"github.com/toeirei/signin/ui/tui/models/helpers/form"
)

type Checkbox struct {
	Label  string
	KeyMap CheckboxKeyMap

	checked  bool
	focused  bool
	disabled bool
}

type CheckboxKeyMap struct {
	Toggle key.Binding
	Next   key.Binding
}

func (k CheckboxKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Toggle, k.Next} }

func (k CheckboxKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Toggle, k.Next}} }

func NewCheckbox(label string) *Checkbox {
	return &Checkbox{
		Label: label,
		KeyMap: CheckboxKeyMap{
			Toggle: key.NewBinding(
				key.WithKeys(" ", "x"),
				key.WithHelp("space", i18n.T("help.toggle")),
			),
			Next: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", i18n.T("help.next")),
			),
		},
	}
}

func (c *Checkbox) Focus() (tea.Cmd, help.KeyMap) {
	c.focused = true
	return nil, c.KeyMap
}

func (c *Checkbox) Blur() {
	c.focused = false
}

func (c *Checkbox) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, form.ActionNone
	}
	switch {
	case key.Matches(kmsg, c.KeyMap.Next):
		return nil, form.ActionNext
	case key.Matches(kmsg, c.KeyMap.Toggle) && !c.disabled:
		c.checked = !c.checked
	}
	return nil, form.ActionNone
}

func (c *Checkbox) View(width int) string {
	box := "[ ] "
	if c.checked {
		box = "[x] "
	}

	style := labelStyle
	if c.focused && !c.disabled {
		style = labelFocusedStyle
	}
	if width > 0 {
		style = style.MaxWidth(width)
	}
	return style.Render(box + c.Label)
}

func (c *Checkbox) Get() any      { return c.checked }
func (c *Checkbox) Init() tea.Cmd { return nil }

func (c *Checkbox) Set(value any) {
	if value, ok := value.(bool); ok {
		c.checked = value
	}
}

func (c *Checkbox) SetDisabled(disabled bool) {
	c.disabled = disabled
	c.KeyMap.Toggle.SetEnabled(!disabled)
}

var (
	_ form.FormInput    = (*Checkbox)(nil)
	_ form.DisableInput = (*Checkbox)(nil)
)
