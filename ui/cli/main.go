// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, the persistent flags shared by every
// subcommand and the entry point for execution.

package cli

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/signin/core/signin"
	"github.com/toeirei/signin/internal/config"
	"github.com/toeirei/signin/internal/i18n"
	"github.com/toeirei/signin/internal/logging"
	"github.com/toeirei/signin/ui/tui"
)

// cliState is shared by the commands of one root command. NewRootCmd creates
// a fresh one so tests do not leak configuration into each other.
type cliState struct {
	cfgFile   string
	appConfig config.Config
}

// setup loads the configuration and applies the language and log level. It
// runs before every command.
func (s *cliState) setup(cmd *cobra.Command, _ []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	s.appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optionalConfigPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if err := checkLanguage(s.appConfig.Language); err != nil {
		return err
	}
	i18n.SetLang(s.appConfig.Language)

	if err := logging.SetLevel(s.appConfig.Log.Level); err != nil {
		return err
	}
	logging.Debugf("configuration loaded (language=%s variant=%s delay=%s)",
		s.appConfig.Language, s.appConfig.Signin.Variant, s.appConfig.Signin.Delay)

	return nil
}

// checkLanguage rejects languages without an embedded locale. Empty falls
// back to English.
func checkLanguage(lang string) error {
	locales := i18n.GetAvailableLocales()
	if _, ok := locales[lang]; ok || lang == "" {
		return nil
	}
	available := slices.Sorted(maps.Keys(locales))
	return errors.New(i18n.T("cli.unknown_language", lang, strings.Join(available, ", ")))
}

// signinOptions turns the loaded configuration into machine options. A
// configured delay of zero means an instant login.
func (s *cliState) signinOptions() (signin.Options, error) {
	variant, err := signin.ParseVariant(s.appConfig.Signin.Variant)
	if err != nil {
		return signin.Options{}, err
	}
	delay := s.appConfig.Signin.Delay
	if delay <= 0 {
		delay = signin.NoDelay
	}
	return signin.Options{
		Variant: variant,
		Delay:   delay,
		Validator: signin.Validator{
			MinPasswordLength: s.appConfig.Signin.MinPasswordLength,
		},
	}, nil
}

// runTUI starts the interactive form. Log lines would corrupt the alt
// screen, so they go to log.file or nowhere.
func (s *cliState) runTUI(cmd *cobra.Command, _ []string) error {
	opts, err := s.signinOptions()
	if err != nil {
		return err
	}

	if path := s.appConfig.Log.File; path != "" {
		closer, err := logging.OpenFile(path)
		if err != nil {
			return err
		}
		defer func() { _ = closer.Close() }()
	} else {
		logging.SetOutput(io.Discard)
	}
	defer logging.SetOutput(os.Stderr)

	return tui.Run(opts)
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}

	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}

	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	s := &cliState{}

	cmd := &cobra.Command{
		Use:               "signin",
		Short:             i18n.T("cli.short"),
		Long:              i18n.T("cli.long"),
		Version:           compositeVersion(),
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: s.setup,
		RunE:              s.runTUI,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&s.cfgFile, "config", "", "config file")
	flags.String("lang", "en", `UI language ("en", "de")`)
	flags.String("variant", signin.VariantFull.String(), `form variant ("full", "basic")`)
	flags.Duration("delay", signin.DefaultDelay, "duration of the simulated login, 0 signs in immediately")
	flags.Int("min-password-length", signin.DefaultMinPasswordLength, "minimum password length in characters")
	flags.String("log-level", "info", `log level ("debug", "info", "warn", "error")`)
	flags.String("log-file", "", "write logs to this file while the TUI runs")

	config.AnnotateFlag(flags, "lang", "language")
	config.AnnotateFlag(flags, "variant", "signin.variant")
	config.AnnotateFlag(flags, "delay", "signin.delay")
	config.AnnotateFlag(flags, "min-password-length", "signin.min_password_length")
	config.AnnotateFlag(flags, "log-level", "log.level")
	config.AnnotateFlag(flags, "log-file", "log.file")

	cmd.AddCommand(
		newLoginCmd(s),
		newConfigCmd(s),
		newVersionCmd(),
	)

	return cmd
}

