// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.
package form

// Action is what an input asks its form to do after handling a message.
type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionSubmit
)
