// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/signin/internal/i18n"
	"github.com/toeirei/signin/ui/tui/models/helpers/form"
)

type Button struct {
	Label    string
	Disabled bool
	KeyMap   ButtonKeyMap
	// OnPress runs instead of submitting the form when set.
	OnPress func() tea.Cmd

	DisabledStyle lipgloss.Style
	BlurredStyle  lipgloss.Style
	FocusedStyle  lipgloss.Style

	focused bool
}

type ButtonKeyMap struct {
	Click key.Binding
}

func (k ButtonKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Click} }

func (k ButtonKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Click}} }

func NewButton(label string) *Button {
	base := lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder())

	return &Button{
		Label: label,
		KeyMap: ButtonKeyMap{
			Click: key.NewBinding(
				key.WithKeys("enter", " "),
				key.WithHelp("enter", i18n.T("help.submit")),
			),
		},
		DisabledStyle: base.
			BorderForeground(colorSubtle).
			Foreground(colorSubtle).
			Faint(true),
		BlurredStyle: base.
			BorderForeground(colorSubtle),
		FocusedStyle: base.
			BorderForeground(colorFocused).
			Foreground(colorFocused).
			Bold(true),
	}
}

func (b *Button) Focus() (tea.Cmd, help.KeyMap) {
	b.focused = true
	b.KeyMap.Click.SetEnabled(!b.Disabled)
	return nil, b.KeyMap
}

func (b *Button) Blur() {
	b.focused = false
}

func (b *Button) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && !b.Disabled && key.Matches(msg, b.KeyMap.Click) {
		if b.OnPress != nil {
			return b.OnPress(), form.ActionNone
		}
		return nil, form.ActionSubmit
	}
	return nil, form.ActionNone
}

func (b *Button) View(width int) string {
	style := b.BlurredStyle
	if b.Disabled {
		style = b.DisabledStyle
	} else if b.focused {
		style = b.FocusedStyle
	}
	if width > 2 {
		style = style.MaxWidth(width)
	}
	return style.Render(b.Label)
}

func (b *Button) SetDisabled(disabled bool) {
	b.Disabled = disabled
	b.KeyMap.Click.SetEnabled(!disabled)
}

// not needed
func (b *Button) Get() any      { return nil }
func (b *Button) Init() tea.Cmd { return nil }
func (b *Button) Set(any)       {}

var (
	_ form.FormInput    = (*Button)(nil)
	_ form.DisableInput = (*Button)(nil)
)
