// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.
package login

import "github.com/charmbracelet/lipgloss"

const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // Teal
	colorSuccess   = lipgloss.Color("40")  // Green
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorHighlight).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)

	subtleStyle  = lipgloss.NewStyle().Foreground(colorSubtle)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	linkStyle    = lipgloss.NewStyle().Foreground(colorHighlight).Underline(true)
)
