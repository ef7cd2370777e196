package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// configCmd represents the config command.
var configCmd = newConfigCmd()

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the settings ammo would use, after merging flags, AMMO_* environment
variables, ammo.yaml and the built-in defaults, as YAML.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := loadSettings(); err != nil {
				return err
			}

			out, err := yaml.Marshal(viper.AllSettings())
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}

			cmd.Print(string(out))

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
}
