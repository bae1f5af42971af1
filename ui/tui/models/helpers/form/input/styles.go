// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import "github.com/charmbracelet/lipgloss"

const (
	colorSubtle  = lipgloss.Color("240")
	colorFocused = lipgloss.Color("205")
	colorError   = lipgloss.Color("196")
)

var (
	labelStyle        = lipgloss.NewStyle().Foreground(colorSubtle)
	labelFocusedStyle = lipgloss.NewStyle().Foreground(colorFocused).Bold(true)
	hintStyle         = lipgloss.NewStyle().Foreground(colorSubtle).Italic(true)
	errorStyle        = lipgloss.NewStyle().Foreground(colorError)
)
