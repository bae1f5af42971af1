// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/signin/internal/i18n"
	"github.com/toeirei/signin/ui/tui/models/helpers/form"
)

type Text struct {
	Label       string
	Placeholder string
	// Hint is rendered next to the label, e.g. to document a shortcut.
	Hint   string
	KeyMap TextKeyMap

	input   textinput.Model
	focused bool
	err     string
}

type TextKeyMap struct {
	Next key.Binding
}

func (k TextKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Next} }

func (k TextKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Next}} }

func NewText(label, placeholder string) *Text {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 254

	return &Text{
		Label:       label,
		Placeholder: placeholder,
		KeyMap: TextKeyMap{
			Next: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", i18n.T("help.next")),
			),
		},
		input: input,
	}
}

// NewPassword returns a Text whose value is masked until SetMasked(false).
func NewPassword(label, placeholder string) *Text {
	t := NewText(label, placeholder)
	t.input.CharLimit = 0
	t.input.EchoCharacter = '•'
	t.SetMasked(true)
	return t
}

func (t *Text) Blur() {
	t.input.Blur()
	t.focused = false
}

func (t *Text) Focus() (tea.Cmd, help.KeyMap) {
	t.focused = true
	return t.input.Focus(), t.KeyMap
}

func (t *Text) Get() any {
	return t.input.Value()
}

func (t *Text) Init() tea.Cmd {
	return textinput.Blink
}

func (t *Text) Set(value any) {
	if value, ok := value.(string); ok {
		t.input.SetValue(value)
	}
}

func (t *Text) SetError(msg string) { t.err = msg }

func (t *Text) Error() string { return t.err }

func (t *Text) SetMasked(masked bool) {
	if masked {
		t.input.EchoMode = textinput.EchoPassword
	} else {
		t.input.EchoMode = textinput.EchoNormal
	}
}

func (t *Text) Masked() bool {
	return t.input.EchoMode == textinput.EchoPassword
}

func (t *Text) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, t.KeyMap.Next) {
		return nil, form.ActionNext
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd, form.ActionNone
}

func (t *Text) View(width int) string {
	label := labelStyle.Render(t.Label)
	if t.focused {
		label = labelFocusedStyle.Render(t.Label)
	}
	if t.Hint != "" {
		label = lipgloss.JoinHorizontal(lipgloss.Top, label, "  ", hintStyle.Render(t.Hint))
	}

	if width > 0 {
		t.input.Width = max(1, width-lipgloss.Width(t.input.Prompt)-1)
	}
	t.input.Placeholder = t.Placeholder

	lines := []string{label, t.input.View()}
	if t.err != "" {
		// errors wrap instead of being cut off
		style := errorStyle
		if width > 0 {
			style = style.Width(width)
		}
		lines = append(lines, style.Render("✗ "+t.err))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

var (
	_ form.FormInput  = (*Text)(nil)
	_ form.ErrorInput = (*Text)(nil)
)
