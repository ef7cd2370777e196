package cmd

import (
	"github.com/spf13/cobra"

	m "ammo.dev/pkg/ammo/internal/model"
)

// uninstallCmd represents the uninstall command.
var uninstallCmd = newUninstallCmd()

func newUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the installed binary",
		Long: `Remove the project's binary from the install directory. Removing a binary
that is not installed succeeds without asking for elevated privileges.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOperation(cmd, m.OperationUninstall)
		},
	}
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}
