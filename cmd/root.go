// Package cmd provides the root command and CLI setup for ammo.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"ammo.dev/pkg/ammo/internal/domain"
	m "ammo.dev/pkg/ammo/internal/model"
)

var (
	verboseFlag bool
	projectFlag string
	nameFlag    string
	targetFlag  string
)

const rootLongDescription = `Ammo builds a project's release binary with its toolchain and installs it
into a system binary directory, asking for elevated privileges only for the
copy and removal steps.

Settings are read from flags, AMMO_* environment variables and an optional
ammo.yaml in the working directory, in that order.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func init() {
	configureRootFlags(rootCmd)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ammo <command>",
		Short:         "Build and install a project's release binary",
		Long:          rootLongDescription,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          rejectUnknownOperation,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Usage()
			return &m.ConfigError{Kind: m.MissingOperation}
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &m.ConfigError{Kind: m.InvalidSetting, Detail: err.Error()}
	})

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVarP(&projectFlag, projectFlagName, "p", viper.GetString(projectRootKey), "directory to search for the project manifest (default: working directory)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(projectFlagName), projectRootKey)

	cmd.PersistentFlags().StringVar(&nameFlag, nameFlagName, viper.GetString(projectNameKey), "binary name, overriding the manifest")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(nameFlagName), projectNameKey)

	cmd.PersistentFlags().StringVarP(&targetFlag, targetFlagName, "t", viper.GetString(installDirKey), "absolute directory the binary is installed into")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(targetFlagName), installDirKey)
}

// rejectUnknownOperation fails any positional argument that did not resolve to
// a subcommand.
func rejectUnknownOperation(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}

	detail := fmt.Sprintf("%q", args[0])
	if suggestions := cmd.SuggestionsFor(args[0]); len(suggestions) > 0 {
		detail += fmt.Sprintf(" (did you mean %s?)", strings.Join(suggestions, ", "))
	}

	return &m.ConfigError{Kind: m.UnknownOperation, Detail: detail}
}

// noArgs rejects positional arguments as a configuration error.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return &m.ConfigError{Kind: m.InvalidSetting, Detail: fmt.Sprintf("%s takes no arguments, got %q", cmd.Name(), args)}
	}

	return nil
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// exitError carries the process exit status decided by a command.
type exitError struct {
	code int
	err  error
	// quiet suppresses the error line on stderr.
	quiet bool
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// exitCode maps an error returned by a command to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return domain.ExitSuccess
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	return domain.ExitCode("", err)
}

// reportError prints err to the command's stderr unless the command asked for silence.
func reportError(cmd *cobra.Command, err error) {
	var exitErr *exitError
	if errors.As(err, &exitErr) && exitErr.quiet {
		return
	}

	cmd.PrintErrln("Error:", err)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		reportError(rootCmd, err)
		os.Exit(exitCode(err))
	}
}
