// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.

// Package stack lays out child models in a row or a column and splits the
// available space between them according to their SizeConfig.
package stack

import (
	"github.com/bobg/go-generics/v4/slices"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/signin/ui/tui/util"
	"github.com/toeirei/signin/util/slicest"
)

const (
	Vertical   Orientation = true
	Horizontal Orientation = false
)

type Orientation bool

type Model struct {
	Orientation Orientation
	Align       lipgloss.Position
	Gap         int

	items        []Item
	size         util.Size
	focusedIndex Focus
}

type Item struct {
	Model      util.Model
	SizeConfig SizeConfig
	size       int
	oldSize    int
}

func (s Model) Init() tea.Cmd {
	return tea.Batch(slices.Map(s.items, func(item Item) tea.Cmd {
		return item.Model.Init()
	})...)
}

func (s *Model) Update(msg tea.Msg) tea.Cmd {
	if s.size.Update(msg) {
		s.calculateItemSizes()
		return tea.Batch(s.resizeItems(true)...)
	}

	cmds := slices.Map(s.items, func(item Item) tea.Cmd {
		return item.Model.Update(msg)
	})

	// items may change their wanted size on any message
	s.calculateItemSizes()
	cmds = append(cmds, s.resizeItems(false)...)

	return tea.Batch(cmds...)
}

func (s Model) View() string {
	joiner := lipgloss.JoinHorizontal
	styler := func(size, margin int) lipgloss.Style {
		return lipgloss.NewStyle().
			Width(size).
			Height(s.size.Height).
			MaxWidth(size + margin).
			MaxHeight(s.size.Height).
			MarginLeft(margin)
	}
	if s.Orientation == Vertical {
		joiner = lipgloss.JoinVertical
		styler = func(size, margin int) lipgloss.Style {
			return lipgloss.NewStyle().
				Width(s.size.Width).
				Height(size).
				MaxWidth(s.size.Width).
				MaxHeight(size + margin).
				MarginTop(margin)
		}
	}

	views := slicest.MapI(s.items, func(i int, item Item) string {
		if item.size == 0 {
			return ""
		}
		// no gap before the first item
		margin := s.Gap * min(i, 1)
		return styler(item.size, margin).Render(item.Model.View())
	})

	return joiner(s.Align, slicest.Filter(views, func(v string) bool { return v != "" })...)
}

func (s *Model) Focus() (tea.Cmd, help.KeyMap) {
	if len(s.items) == 0 {
		return nil, nil
	}
	if s.focusedIndex != FocusAll() {
		return s.items[s.focusedIndex].Model.Focus()
	}

	cmds := make([]tea.Cmd, len(s.items))
	keyMaps := make([]help.KeyMap, len(s.items))
	for i, item := range s.items {
		cmds[i], keyMaps[i] = item.Model.Focus()
	}
	return tea.Batch(cmds...), util.MergeKeyMaps(keyMaps...)
}

func (s *Model) Blur() {
	if len(s.items) == 0 {
		return
	}
	if s.focusedIndex != FocusAll() {
		s.items[s.focusedIndex].Model.Blur()
		return
	}
	for _, item := range s.items {
		item.Model.Blur()
	}
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

type Focus int

func FocusAll() Focus        { return -1 }
func FocusIndex(i int) Focus { return Focus(i) }

func (s *Model) SetFocus(focus Focus) (tea.Cmd, help.KeyMap) {
	s.Blur()
	s.focusedIndex = util.Clamp(FocusAll(), focus, Focus(len(s.items)-1))
	return s.Focus()
}
