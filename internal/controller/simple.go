package controller

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "ammo.dev/pkg/ammo/internal/model"
)

// SimpleUI implements UI with line oriented output on the command's streams.
// Errors are left to the caller in one-shot mode and printed in watch mode,
// where they do not end the process.
type SimpleUI struct {
	cmd    *cobra.Command
	mu     sync.Mutex
	mode   StartMode
	styles simpleStyles
}

type simpleStyles struct {
	stage   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	renderer := lipgloss.NewRenderer(cmd.OutOrStdout())

	return &SimpleUI{
		cmd: cmd,
		styles: simpleStyles{
			stage:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
			success: renderer.NewStyle().Foreground(lipgloss.Color("10")),
			failure: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
			muted:   renderer.NewStyle().Faint(true),
		},
	}
}

// Start records the mode and prints the watch banner.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)

	s.mu.Lock()
	s.mode = cfg.mode
	s.mu.Unlock()

	if cfg.mode == ModeWatch {
		s.printf("%s\n", s.styles.muted.Render(fmt.Sprintf("Watching %s for changes (Ctrl+C to stop)", cfg.project.Root)))
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait blocks until ctx is done in watch mode and returns immediately otherwise.
func (s *SimpleUI) Wait(ctx context.Context) {
	if s.watching() {
		<-ctx.Done()
	}
}

// BuildOutput streams toolchain output straight to the command's streams.
func (s *SimpleUI) BuildOutput() (io.Writer, io.Writer) {
	return s.cmd.OutOrStdout(), s.cmd.ErrOrStderr()
}

// DisplayStage announces the step that is about to run.
func (s *SimpleUI) DisplayStage(ctx context.Context, stage m.Stage, project m.ProjectIdentity) {
	if ctx.Err() != nil {
		return
	}

	if stage == m.StageWatching {
		s.printf("%s\n", s.styles.muted.Render("Waiting for changes..."))
		return
	}

	s.printf("%s\n", s.styles.stage.Render(fmt.Sprintf("==> %s %s", stageTitle(stage), project.Name)))
}

// DisplayChange reports a modified path in watch mode.
func (s *SimpleUI) DisplayChange(ctx context.Context, path m.Path) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s\n", s.styles.muted.Render("Changed: "+path.String()))
}

// DisplayBuildResult reports where the artifact was written.
func (s *SimpleUI) DisplayBuildResult(_ context.Context, artifact m.BuildArtifact, err error) {
	if err != nil {
		s.displayError("build", err)
		return
	}

	s.printf("%s %s\n", s.styles.success.Render("Built"), artifact.SourcePath)
}

// DisplayInstallResult prints a summary table of the installed binary.
func (s *SimpleUI) DisplayInstallResult(_ context.Context, binary m.InstalledBinary, err error) {
	if err != nil {
		s.displayError("install", err)
		return
	}

	s.printf("%s %s\n%s", s.styles.success.Render("Installed"), binary.Path, renderInstallTable(binary))
}

// DisplayUninstallResult reports the removal. An absent binary is reported
// as information, not as a failure.
func (s *SimpleUI) DisplayUninstallResult(_ context.Context, report m.UninstallReport, err error) {
	if err != nil {
		s.displayError("uninstall", err)
		return
	}

	if !report.Removed {
		s.printf("%s\n", s.styles.muted.Render(fmt.Sprintf("Nothing to uninstall: %s is not installed", report.Path)))
		return
	}

	s.printf("%s %s\n", s.styles.success.Render("Removed"), report.Path)
}

func (s *SimpleUI) displayError(stage string, err error) {
	if errors.Is(err, context.Canceled) {
		s.printf("%s\n", s.styles.muted.Render(stage+" cancelled"))
		return
	}

	if !s.watching() {
		return
	}

	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "%s %v\n", s.styles.failure.Render(stage+" failed:"), err)
}

func (s *SimpleUI) watching() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mode == ModeWatch
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderInstallTable(binary m.InstalledBinary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Size", "Mode", "SHA-256"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT,
	})

	table.Append([]string{
		binary.Path.String(),
		formatSize(binary.Size),
		binary.Mode.String(),
		shortHash(binary.SHA256),
	})

	table.Render()

	return tableBuffer.String()
}

func stageTitle(stage m.Stage) string {
	switch stage {
	case m.StageBuilding:
		return "Building"
	case m.StageInstalling:
		return "Installing"
	case m.StageUninstalling:
		return "Uninstalling"
	case m.StageWatching:
		return "Watching"
	default:
		return stage.String()
	}
}

func formatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}

func shortHash(hash string) string {
	if len(hash) > 16 {
		return hash[:16]
	}

	if hash == "" {
		return "-"
	}

	return hash
}
