// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/signin/ui/tui/models/components/stack"
	"github.com/toeirei/signin/ui/tui/util"
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 20 }

// Calculate reserves the help text plus the top border, but never more than
// is left. Expanded help on a short terminal gets cut at the bottom.
func (s *sizeConfig) Calculate(model util.Model, remaining, _ int) int {
	height := 2
	if footer, ok := model.(*Model); ok {
		height = lipgloss.Height(footer.view()) + 1
	}
	return min(height, max(0, remaining))
}
