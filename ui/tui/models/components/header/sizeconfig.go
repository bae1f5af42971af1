// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/signin/ui/tui/models/components/stack"
	"github.com/toeirei/signin/ui/tui/util"
)

// minBodyHeight is kept free for the view below the header.
const minBodyHeight = 24

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 10 }

// Calculate hides the header when the terminal is too short to show it
// next to the form.
func (s *sizeConfig) Calculate(model util.Model, remaining int, _ int) int {
	header, ok := model.(*Model)
	if !ok {
		return 0
	}
	height := lipgloss.Height(header.content()) + 1
	if remaining < minBodyHeight+height {
		return 0
	}
	return height
}
