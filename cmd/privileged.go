package cmd

import (
	"github.com/spf13/cobra"

	"ammo.dev/pkg/ammo/internal/adapter"
	m "ammo.dev/pkg/ammo/internal/model"
)

// privilegedCmd is the helper ElevatedFileOp starts through the elevator. It
// reports the outcome only through its exit status.
var privilegedCmd = newPrivilegedCmd(adapter.NewLocalFileOp())

func newPrivilegedCmd(fileOp adapter.PrivilegedFileOp) *cobra.Command {
	cmd := &cobra.Command{
		Use:    adapter.PrivilegedCommand,
		Short:  "Copy or remove an installed binary with the current privileges",
		Hidden: true,
		// Running as root, so no log file is written.
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			discardLogger()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:  "copy <src> <dst>",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return privilegedResult(fileOp.Copy(cmd.Context(), m.Path(args[0]), m.Path(args[1])))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:  "remove <path>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return privilegedResult(fileOp.Remove(cmd.Context(), m.Path(args[0])))
		},
	})

	return cmd
}

func privilegedResult(err error) error {
	if err == nil {
		return nil
	}

	return &exitError{code: adapter.PrivilegedExitCode(err), err: err, quiet: true}
}

func init() {
	rootCmd.AddCommand(privilegedCmd)
}
