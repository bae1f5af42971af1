// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Signin.
//
// Usage:
//
//	go run . [flags]
//	./signin [flags]
//
// Without a subcommand this opens the sign-in form. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/signin/internal/logging"
	"github.com/toeirei/signin/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
