// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/signin/ui/tui/util"
)

const logo string = "" +
	"╔═╗┬┌─┐┌┐┌┬┌┐┌\n" +
	"╚═╗││ ┬│││││││\n" +
	"╚═╝┴└─┘┘└┘┴┘└┘"

const logoCompact string = "🔐 Signin"

var logoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))

type Model struct {
	// Version is shown below the logo when set.
	Version string

	size util.Size
}

func New(version string) *Model {
	return &Model{Version: version}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

func (m Model) content() string {
	if m.size.Width < lipgloss.Width(logo) {
		return logoCompact
	}
	if m.Version == "" {
		return logoStyle.Render(logo)
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		logoStyle.Render(logo),
		lipgloss.NewStyle().Faint(true).Render(m.Version),
	)
}

func (m Model) View() string {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false).
		BorderBottom(true).
		Render(lipgloss.PlaceHorizontal(m.size.Width, lipgloss.Center, m.content()))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
