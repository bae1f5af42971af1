// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.
package login

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/signin/internal/i18n"
)

type KeyMap struct {
	TogglePassword key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.TogglePassword}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.TogglePassword}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

func newKeyMap(passwordToggle bool) KeyMap {
	km := KeyMap{
		TogglePassword: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", i18n.T("help.toggle_password")),
		),
	}
	km.TogglePassword.SetEnabled(passwordToggle)
	return km
}
