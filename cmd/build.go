package cmd

import (
	"github.com/spf13/cobra"

	m "ammo.dev/pkg/ammo/internal/model"
)

// buildCmd represents the build command.
var buildCmd = newBuildCmd()

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the project's release binary",
		Long: `Run the configured toolchain (default: cargo build --release) in the project
root and check that the release binary exists.

On a toolchain failure ammo exits with the toolchain's own exit status.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOperation(cmd, m.OperationBuild)
		},
	}
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
