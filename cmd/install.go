package cmd

import (
	"github.com/spf13/cobra"

	m "ammo.dev/pkg/ammo/internal/model"
)

// installCmd represents the install command.
var installCmd = newInstallCmd()

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Build the project and install its binary",
		Long: `Build the release binary, then copy it into the install directory
(default: /usr/local/bin), replacing any previous version atomically.

Only the copy runs with elevated privileges, and only when the install
directory is not writable (see install.elevate).`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOperation(cmd, m.OperationInstall)
		},
	}
}

func init() {
	rootCmd.AddCommand(installCmd)
}
