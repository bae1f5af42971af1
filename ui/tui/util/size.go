// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	"cmp"

	tea "github.com/charmbracelet/bubbletea"
)

func Clamp[T cmp.Ordered](_min, _wanted, _max T) T {
	return min(max(_min, _wanted), _max)
}

type Size struct {
	Width  int
	Height int
}

// Update records the size carried by a tea.WindowSizeMsg and reports whether
// msg was one.
func (s *Size) Update(msg tea.Msg) bool {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		s.Width, s.Height = msg.Width, msg.Height
		return true
	}
	return false
}

func (s Size) ToMsg() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  s.Width,
		Height: s.Height,
	}
}

// Shrink returns the size left after taking width and height away, never
// going below zero.
func (s Size) Shrink(width, height int) Size {
	return Size{
		Width:  max(0, s.Width-width),
		Height: max(0, s.Height-height),
	}
}

// Fit clamps a wanted width into [lo, Width]. A zero Size does not limit.
func (s Size) Fit(lo, wanted int) int {
	if s.Width == 0 {
		return max(lo, wanted)
	}
	return Clamp(min(lo, s.Width), wanted, s.Width)
}
