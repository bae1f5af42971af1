// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/signin/core/signin"
	"github.com/toeirei/signin/ui/tui/models/views/root"
)

// Run shows the sign-in form until the user quits. The form is torn down
// before Run returns, so a login still in flight is dropped.
func Run(opts signin.Options) error {
	m := root.New(opts)
	defer m.Close()

	_, err := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	).Run()
	return err
}
