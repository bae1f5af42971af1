// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/signin/buildvars"
	"github.com/toeirei/signin/core/signin"
	"github.com/toeirei/signin/internal/logging"
	"github.com/toeirei/signin/ui/tui/models/components/header"
	"github.com/toeirei/signin/ui/tui/models/components/stack"
	windowtitle "github.com/toeirei/signin/ui/tui/models/helpers/title"
	"github.com/toeirei/signin/ui/tui/models/views/footer"
	"github.com/toeirei/signin/ui/tui/models/views/login"
	"github.com/toeirei/signin/ui/tui/util"
)

const title string = "Signin"

type Model struct {
	stack        *stack.Model
	login        *login.Model
	footer       *footer.Model
	keyMap       KeyMap
	titleHandler *windowtitle.TitleHandler
}

func New(opts signin.Options) *Model {
	version := buildvars.VersionOrDefault("unknown version")

	keyMap := newBaseKeyMap()
	_login := login.New(opts)
	_footer := footer.New(keyMap)

	return &Model{
		stack: stack.New(
			stack.WithOrientation(stack.Vertical),
			stack.WithFocus(stack.FocusIndex(1)),
			stack.WithItem(header.New(version), header.SizeConfig),
			stack.WithItem(_login, stack.VariableSize(1)),
			stack.WithItem(_footer, footer.SizeConfig),
		),
		login:        _login,
		footer:       _footer,
		keyMap:       keyMap,
		titleHandler: windowtitle.NewHandler(fmt.Sprintf("%s %s", title, version), " | "),
	}
}

func (m Model) Init() tea.Cmd {
	titleCmd := m.titleHandler.Init()
	initCmd := m.stack.Init()
	focusCmd, keyMap := m.stack.Focus()
	keyMapCmd := util.AnnounceKeyMapCmd(keyMap)

	return tea.Sequence(titleCmd, initCmd, focusCmd, keyMapCmd)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keyMap.Exit):
			logging.Debugf("exit requested")
			m.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Help):
			m.footer.ToggleExpanded()
		}

		return m, m.stack.Update(msg)
	}

	if cmd, ok := m.titleHandler.Handle(msg); ok {
		return m, cmd
	}

	return m, m.stack.Update(msg)
}

func (m Model) View() string {
	return m.stack.View()
}

// Close tears down the sign-in view. Completions that arrive afterwards are
// ignored.
func (m Model) Close() {
	m.login.Close()
}

// Machine exposes the sign-in state machine of the embedded view.
func (m Model) Machine() *signin.Machine {
	return m.login.Machine()
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)
