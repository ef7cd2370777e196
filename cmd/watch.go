package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "ammo.dev/pkg/ammo/internal/model"
)

var watchInstallFlag bool

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the project whenever its files change",
		Long: `Build the project, then rebuild it after every burst of changes under the
project root. A change arriving during a build cancels that build.

Runs until interrupted. Build failures are reported and watching continues.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOperation(cmd, m.OperationWatch)
		},
	}

	configureWatchFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func configureWatchFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&watchInstallFlag, installFlagName, "i", viper.GetBool(watchInstallKey), "install after every successful build")
	bindFlagToConfig(cmd.Flags().Lookup(installFlagName), watchInstallKey)
}
