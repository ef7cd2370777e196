package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

const demoManifest = `[package]
name = "demo"
version = "0.1.0"
`

// newTestRootCmd builds a fresh command tree writing into buffers.
func newTestRootCmd(t *testing.T, subcommands ...*cobra.Command) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	cmd := newRootCmd()
	configureRootFlags(cmd)
	cmd.AddCommand(subcommands...)

	t.Cleanup(func() { rebindGlobalFlags(t) })
	t.Setenv("AMMO_LOG_FILENAME", filepath.Join(t.TempDir(), "ammo.log"))

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return cmd, stdout, stderr
}

// rebindGlobalFlags points the config keys back at the flags of rootCmd.
func rebindGlobalFlags(t *testing.T) {
	t.Helper()

	for key, flag := range map[string]string{
		logVerboseKey:  verboseFlagName,
		projectRootKey: projectFlagName,
		projectNameKey: nameFlagName,
		installDirKey:  targetFlagName,
	} {
		require.NoError(t, viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)))
	}

	require.NoError(t, viper.BindPFlag(watchInstallKey, watchCmd.Flags().Lookup(installFlagName)))
}

func stubScript(t *testing.T) string {
	t.Helper()

	script, err := filepath.Abs(filepath.Join("..", "examples", "demo", "stub-toolchain.sh"))
	require.NoError(t, err)

	return script
}

type stubProject struct {
	root   string
	target string
}

// setupStubProject creates a demo project and an empty install directory and
// points the configuration at them through AMMO_* variables. stubArgs are
// passed to the stub toolchain.
func setupStubProject(t *testing.T, stubArgs ...string) stubProject {
	t.Helper()

	p := stubProject{root: t.TempDir(), target: t.TempDir()}
	require.NoError(t, os.WriteFile(filepath.Join(p.root, "Cargo.toml"), []byte(demoManifest), 0o644))

	command := append([]string{"sh", stubScript(t)}, stubArgs...)

	t.Setenv("AMMO_PROJECT_ROOT", p.root)
	t.Setenv("AMMO_INSTALL_DIR", p.target)
	t.Setenv("AMMO_INSTALL_ELEVATE", "never")
	t.Setenv("AMMO_BUILD_COMMAND", strings.Join(command, " "))
	t.Setenv("AMMO_LOG_FILENAME", filepath.Join(t.TempDir(), "ammo.log"))

	return p
}

func (p stubProject) installed() string {
	return filepath.Join(p.target, "demo")
}
