// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/signin/internal/config"
	"github.com/toeirei/signin/internal/i18n"
)

func newConfigCmd(s *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: i18n.T("cli.config_short"),
		Args:  cobra.NoArgs,
	}

	var system bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: i18n.T("cli.config_init_short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.WriteConfigFile(&s.appConfig, system)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.config_written", path))
			return nil
		},
	}
	initCmd.Flags().BoolVar(&system, "system", false, "write the system-wide config file instead of the user one")

	cmd.AddCommand(initCmd)
	return cmd
}
