// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/signin/core/signin"
	"github.com/toeirei/signin/internal/i18n"
	"github.com/toeirei/signin/internal/logging"
	"golang.org/x/term"
)

// newLoginCmd runs one sign-in without the TUI. Validation errors are
// printed per field and make the command fail.
func newLoginCmd(s *cliState) *cobra.Command {
	var form signin.FormState

	cmd := &cobra.Command{
		Use:   "login",
		Short: i18n.T("cli.login_short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("password") {
				password, err := readPassword(cmd)
				if err != nil {
					return errors.New(i18n.T("cli.error_read_password", err))
				}
				form.Password = password
			}

			opts, err := s.signinOptions()
			if err != nil {
				return err
			}
			m := signin.NewMachine(opts)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			if err := signin.Run(ctx, m, form); err != nil {
				if errs := m.Errors(); !errs.Passed() {
					printValidationErrors(cmd.ErrOrStderr(), errs)
					return errors.New(i18n.T("cli.validation_failed"))
				}
				return err
			}

			logging.Debugf("headless sign-in finished with status %s", m.Status())
			fmt.Fprintln(cmd.OutOrStdout(), m.Message())
			return nil
		},
	}

	cmd.Flags().StringVarP(&form.Email, "email", "e", "", "email address")
	cmd.Flags().StringVarP(&form.Password, "password", "p", "", "password (prompted when omitted)")
	cmd.Flags().BoolVarP(&form.Remember, "remember", "r", false, "keep me signed in")

	return cmd
}

// readPassword prompts without echo when stdin is a terminal and otherwise
// reads the first line of the command's input.
func readPassword(cmd *cobra.Command) (string, error) {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), i18n.T("cli.password_prompt"))
		password, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", err
		}
		return string(password), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func printValidationErrors(w io.Writer, errs signin.ValidationErrors) {
	for _, field := range signin.Fields {
		if msg := errs.Get(field); msg != "" {
			fmt.Fprintf(w, "%s: %s\n", field, msg)
		}
	}
}
