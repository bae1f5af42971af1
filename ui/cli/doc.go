// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Signin using Cobra.
// It loads configuration, sets up logging and i18n, and either starts the
// TUI or drives core/signin headlessly. CLI code should remain thin and
// delegate the sign-in logic to core/signin.
package cli
