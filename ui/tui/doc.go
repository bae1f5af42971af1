// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui implements the terminal sign-in form. Presentation and input
// handling live here; validation and submission state belong to
// core/signin.
package tui
