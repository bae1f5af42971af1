// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

type NewOpt[T any] = func(form *Form[T])

func New[T any](opts ...NewOpt[T]) Form[T] {
	form := Form[T]{keyMap: DefaultKeyMap()}
	for _, opt := range opts {
		opt(&form)
	}
	return form
}

func WithOnSubmit[T any](fn func(result T, err error) tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnSubmit = fn
	}
}

// WithHelp adds bindings handled by the form's owner. They are announced
// with the focused input's key map on every focus change, so keyMap should
// be a pointer if its bindings are toggled later.
func WithHelp[T any](keyMap help.KeyMap) NewOpt[T] {
	return func(form *Form[T]) {
		form.ownerKeyMap = keyMap
	}
}

// WithInput adds input on its own row. id is the mapstructure key the
// input's value is decoded under.
func WithInput[T any](id string, input FormInput) NewOpt[T] {
	return func(form *Form[T]) {
		form.items = append(form.items, formItem{
			id:    id,
			input: input,
		})
		form.rows = append(form.rows, formRow{items: []int{len(form.items) - 1}})
	}
}

// WithText adds a static, unfocusable row. render is called on every View so
// the text can follow the active language or model state.
func WithText[T any](render func(width int) string) NewOpt[T] {
	return func(form *Form[T]) {
		form.rows = append(form.rows, formRow{text: render})
	}
}
