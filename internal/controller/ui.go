// Package controller provides the output adapters that report build, install
// and uninstall progress to the user.
package controller

import (
	"context"
	"io"
	"os"

	m "ammo.dev/pkg/ammo/internal/model"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	// ModeOneShot runs a single operation and returns.
	ModeOneShot StartMode = iota
	// ModeWatch keeps the UI open until the user or a signal stops it.
	ModeWatch
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode    StartMode
	project m.Project
}

// WithWatchMode keeps the UI running between rebuilds.
func WithWatchMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeWatch
	}
}

// WithProject sets the project shown in headers.
func WithProject(project m.Project) StartOption {
	return func(c *StartConfig) {
		c.project = project
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeOneShot}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI reports lifecycle progress. Implementations can use plain text output or
// an interactive terminal UI.
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	// Wait blocks until the user closes the UI or ctx is done.
	Wait(ctx context.Context)

	// BuildOutput returns the writers the toolchain streams into.
	BuildOutput() (stdout, stderr io.Writer)

	DisplayStage(ctx context.Context, stage m.Stage, project m.ProjectIdentity)
	DisplayChange(ctx context.Context, path m.Path)
	DisplayBuildResult(ctx context.Context, artifact m.BuildArtifact, err error)
	DisplayInstallResult(ctx context.Context, binary m.InstalledBinary, err error)
	DisplayUninstallResult(ctx context.Context, report m.UninstallReport, err error)
}

// NewUI picks the interactive TUI for watch sessions on a terminal and the
// plain SimpleUI otherwise.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive && IsTTY(cmd.OutOrStdout()) {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
