package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	m "ammo.dev/pkg/ammo/internal/model"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long: `Prints the ammo module version, the VCS revision it was built from when
known, the Go version and the default binary name baked in with -ldflags.`,
		Args: noArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, _ := debug.ReadBuildInfo()

			for _, line := range versionLines(info) {
				cmd.Println(line)
			}
		},
	}
}

// versionLines renders build metadata, tolerating binaries built without it.
func versionLines(info *debug.BuildInfo) []string {
	version, goVersion := "unknown", "unknown"
	var revision, built string
	modified := false

	if info != nil {
		if info.Main.Version != "" {
			version = info.Main.Version
		}

		if info.GoVersion != "" {
			goVersion = info.GoVersion
		}

		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.time":
				built = setting.Value
			case "vcs.modified":
				modified = setting.Value == "true"
			}
		}
	}

	lines := []string{fmt.Sprintf("ammo version\t %s", version)}

	if revision != "" {
		if modified {
			revision += " (modified)"
		}

		lines = append(lines, fmt.Sprintf("revision\t %s", revision))
	}

	if built != "" {
		lines = append(lines, fmt.Sprintf("built\t\t %s", built))
	}

	return append(lines,
		fmt.Sprintf("go version\t %s", goVersion),
		fmt.Sprintf("default name\t %s", m.DefaultProjectName),
	)
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
