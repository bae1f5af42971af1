// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	"github.com/bobg/go-generics/v4/slices"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-viper/mapstructure/v2"
	"github.com/toeirei/signin/ui/tui/util"
)

type FormInput interface {
	util.Focusable
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, Action)
	Set(any)
	Get() any
	View(width int) string
}

// ErrorInput is implemented by inputs that render an inline error.
type ErrorInput interface {
	SetError(msg string)
}

// DisableInput is implemented by inputs that can be switched off.
type DisableInput interface {
	SetDisabled(disabled bool)
}

type formItem struct {
	id    string
	input FormInput
}

type formRow struct {
	items []int
	text  func(width int) string
}

type Form[T any] struct {
	OnSubmit func(result T, err error) tea.Cmd

	items       []formItem
	rows        []formRow
	activeIndex int
	focused     bool
	keyMap      KeyMap
	ownerKeyMap help.KeyMap
	size        util.Size
}

func (f Form[T]) Init() tea.Cmd {
	return tea.Batch(slices.Map(f.items, func(item formItem) tea.Cmd {
		return item.input.Init()
	})...)
}

func (f Form[T]) Update(msg tea.Msg) (Form[T], tea.Cmd) {
	// handle size updates
	if f.size.Update(msg) {
		return f, nil
	}

	if !f.focused || len(f.items) == 0 {
		return f, nil
	}

	// handle key updates for form
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, f.keyMap.Next):
			return f, f.changeActiveIndex(1)
		case key.Matches(kmsg, f.keyMap.Prev):
			return f, f.changeActiveIndex(-1)
		}
	}

	// pass msg to active input
	return f, f.updateActiveInput(msg)
}

func (f Form[T]) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		slices.Map(f.rows, func(row formRow) string {
			if row.text != nil {
				return row.text(f.size.Width)
			}
			return lipgloss.JoinHorizontal(
				lipgloss.Top,
				slices.Map(row.items, func(itemIndex int) string {
					return f.items[itemIndex].input.View(f.size.Width / len(row.items))
				})...,
			)
		})...,
	)
}

func (f *Form[T]) Focus() (tea.Cmd, help.KeyMap) {
	if len(f.items) == 0 {
		return nil, util.MergeKeyMaps(f.keyMap, f.ownerKeyMap)
	}
	f.focused = true
	cmd, keyMap := f.items[f.activeIndex].input.Focus()
	return cmd, util.MergeKeyMaps(keyMap, f.keyMap, f.ownerKeyMap)
}

func (f *Form[T]) Blur() {
	f.focused = false
	if len(f.items) > 0 {
		f.items[f.activeIndex].input.Blur()
	}
}

// *Form implements util.Focusable
var _ util.Focusable = (*Form[any])(nil)

func (f *Form[T]) Focused() bool { return f.focused }

// ActiveID returns the id of the focused input.
func (f *Form[T]) ActiveID() string {
	if len(f.items) == 0 {
		return ""
	}
	return f.items[f.activeIndex].id
}

// Input returns the input registered under id.
func (f *Form[T]) Input(id string) (FormInput, bool) {
	for _, item := range f.items {
		if item.id == id {
			return item.input, true
		}
	}
	return nil, false
}

// SetError shows msg below the input registered under id. An empty msg
// clears it. Inputs that cannot show errors are ignored.
func (f *Form[T]) SetError(id, msg string) {
	if input, ok := f.Input(id); ok {
		if e, ok := input.(ErrorInput); ok {
			e.SetError(msg)
		}
	}
}

// SetDisabled switches the input registered under id on or off.
func (f *Form[T]) SetDisabled(id string, disabled bool) {
	if input, ok := f.Input(id); ok {
		if d, ok := input.(DisableInput); ok {
			d.SetDisabled(disabled)
		}
	}
}

func (f *Form[T]) Submit() tea.Cmd {
	if f.OnSubmit == nil {
		return nil
	}
	data, err := f.Get()
	return f.OnSubmit(data, err)
}

func (f *Form[T]) updateActiveInput(msg tea.Msg) tea.Cmd {
	var actionCmd tea.Cmd

	updateCmd, action := f.items[f.activeIndex].input.Update(msg)

	switch action {
	case ActionNone:
	case ActionNext:
		actionCmd = f.changeActiveIndex(1)
	case ActionSubmit:
		actionCmd = f.Submit()
	}

	return tea.Batch(updateCmd, actionCmd)
}

// changeActiveIndex moves focus by delta, wrapping around, and announces
// the key map of the newly focused input.
func (f *Form[T]) changeActiveIndex(delta int) tea.Cmd {
	if len(f.items) == 0 {
		return nil
	}

	next := (f.activeIndex + delta) % len(f.items)
	if next < 0 {
		next += len(f.items)
	}

	if next != f.activeIndex {
		f.items[f.activeIndex].input.Blur()
		f.activeIndex = next
	}

	if !f.focused {
		return nil
	}
	return util.FocusCmd(f)
}

// Get decodes the current input values into a T.
func (f *Form[T]) Get() (T, error) {
	var data T
	values := make(map[string]any, len(f.items))

	for _, item := range f.items {
		if value := item.input.Get(); value != nil {
			values[item.id] = value
		}
	}

	err := mapstructure.Decode(values, &data)
	return data, err
}

// Set pushes the fields of data into the inputs with matching ids.
func (f *Form[T]) Set(data T) error {
	values := make(map[string]any, len(f.items))
	if err := mapstructure.Decode(data, &values); err != nil {
		return err
	}

	for i := range f.items {
		if value, ok := values[f.items[i].id]; ok {
			f.items[i].input.Set(value)
		}
	}

	return nil
}
