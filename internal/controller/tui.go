package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "ammo.dev/pkg/ammo/internal/model"
)

// maxLogLines bounds the build log kept in memory by the watch TUI.
const maxLogLines = 5000

// TUI implements UI with a Bubble Tea program showing the current stage, the
// last result and a scrollable build log.
type TUI struct {
	output  io.Writer
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the program in the background.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)

	program := tea.NewProgram(newWatchModel(cfg.project), tea.WithOutput(p.output), tea.WithAltScreen())
	done := make(chan struct{})

	p.mu.Lock()
	p.program = program
	p.done = done
	p.mu.Unlock()

	go func() {
		defer close(done)

		_, _ = program.Run()
	}()

	return nil
}

// Close stops the program and restores the terminal.
func (p *TUI) Close(_ context.Context) {
	program, done := p.current()
	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// Wait blocks until the user quits or ctx is done.
func (p *TUI) Wait(ctx context.Context) {
	_, done := p.current()
	if done == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// BuildOutput returns writers feeding the log pane.
func (p *TUI) BuildOutput() (io.Writer, io.Writer) {
	w := &logWriter{send: p.send}
	return w, w
}

// DisplayStage updates the header.
func (p *TUI) DisplayStage(_ context.Context, stage m.Stage, _ m.ProjectIdentity) {
	p.send(stageMsg{stage: stage})
}

// DisplayChange logs a changed path.
func (p *TUI) DisplayChange(_ context.Context, path m.Path) {
	p.send(logMsg("changed: " + path.String() + "\n"))
}

// DisplayBuildResult updates the status line.
func (p *TUI) DisplayBuildResult(_ context.Context, artifact m.BuildArtifact, err error) {
	if err != nil {
		p.send(resultMsg{failed: true, text: describeFailure("build", err)})
		return
	}

	p.send(resultMsg{text: "built " + artifact.SourcePath.String()})
}

// DisplayInstallResult updates the status line.
func (p *TUI) DisplayInstallResult(_ context.Context, binary m.InstalledBinary, err error) {
	if err != nil {
		p.send(resultMsg{failed: true, text: describeFailure("install", err)})
		return
	}

	p.send(resultMsg{text: fmt.Sprintf("installed %s (%s, sha256 %s)", binary.Path, formatSize(binary.Size), shortHash(binary.SHA256))})
}

// DisplayUninstallResult updates the status line.
func (p *TUI) DisplayUninstallResult(_ context.Context, report m.UninstallReport, err error) {
	switch {
	case err != nil:
		p.send(resultMsg{failed: true, text: describeFailure("uninstall", err)})
	case !report.Removed:
		p.send(resultMsg{text: report.Path.String() + " is not installed"})
	default:
		p.send(resultMsg{text: "removed " + report.Path.String()})
	}
}

func (p *TUI) current() (*tea.Program, chan struct{}) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.program, p.done
}

func (p *TUI) send(msg tea.Msg) {
	program, _ := p.current()
	if program == nil {
		return
	}

	program.Send(msg)
}

func describeFailure(stage string, err error) string {
	if errors.Is(err, context.Canceled) {
		return stage + " cancelled"
	}

	return fmt.Sprintf("%s failed: %v", stage, err)
}

// logWriter forwards toolchain output to the program.
type logWriter struct {
	send func(tea.Msg)
}

func (w *logWriter) Write(b []byte) (int, error) {
	w.send(logMsg(string(b)))
	return len(b), nil
}

type (
	stageMsg struct {
		stage m.Stage
	}
	resultMsg struct {
		failed bool
		text   string
	}
	logMsg string
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	stageStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
)

// watchModel is the Bubble Tea model of the watch screen.
type watchModel struct {
	project  m.Project
	stage    m.Stage
	result   resultMsg
	lines    []string
	partial  string
	viewport viewport.Model
	ready    bool
	quitting bool
}

func newWatchModel(project m.Project) watchModel {
	return watchModel{
		project: project,
		stage:   m.StageWatching,
	}
}

func (wm watchModel) Init() tea.Cmd {
	return nil
}

func (wm watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return wm.resize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			wm.quitting = true
			return wm, tea.Quit
		}
	case stageMsg:
		wm.stage = msg.stage
		if msg.stage == m.StageBuilding {
			wm.lines = nil
			wm.partial = ""
			wm = wm.refresh()
		}

		return wm, nil
	case resultMsg:
		wm.result = msg
		return wm, nil
	case logMsg:
		wm = wm.appendLog(string(msg))
		return wm, nil
	}

	var cmd tea.Cmd
	wm.viewport, cmd = wm.viewport.Update(msg)

	return wm, cmd
}

func (wm watchModel) resize(width, height int) watchModel {
	logHeight := height - headerHeight - footerHeight
	if logHeight < 1 {
		logHeight = 1
	}

	if !wm.ready {
		wm.viewport = viewport.New(width, logHeight)
		wm.ready = true
	} else {
		wm.viewport.Width = width
		wm.viewport.Height = logHeight
	}

	return wm.refresh()
}

// appendLog splits chunk into lines, keeping an unterminated tail for the
// next chunk.
func (wm watchModel) appendLog(chunk string) watchModel {
	text := wm.partial + chunk
	parts := strings.Split(text, "\n")

	wm.partial = parts[len(parts)-1]
	wm.lines = append(wm.lines, parts[:len(parts)-1]...)

	if overflow := len(wm.lines) - maxLogLines; overflow > 0 {
		wm.lines = append([]string(nil), wm.lines[overflow:]...)
	}

	return wm.refresh()
}

func (wm watchModel) refresh() watchModel {
	if !wm.ready {
		return wm
	}

	follow := wm.viewport.AtBottom()

	lines := wm.lines
	if wm.partial != "" {
		lines = append(lines[:len(lines):len(lines)], wm.partial)
	}

	wm.viewport.SetContent(strings.Join(lines, "\n"))

	if follow {
		wm.viewport.GotoBottom()
	}

	return wm
}

const (
	headerHeight = 3
	footerHeight = 1
)

func (wm watchModel) View() string {
	if wm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("ammo watch"))
	b.WriteString("  ")
	b.WriteString(wm.project.Identity.Name)
	b.WriteString("  ")
	b.WriteString(helpStyle.Render(wm.project.Root.String()))
	b.WriteString("\n")

	b.WriteString(stageStyle.Render(wm.stage.String()))
	b.WriteString("\n")

	switch {
	case wm.result.text == "":
		b.WriteString(helpStyle.Render("waiting for the first build"))
	case wm.result.failed:
		b.WriteString(failureStyle.Render(wm.result.text))
	default:
		b.WriteString(successStyle.Render(wm.result.text))
	}

	b.WriteString("\n")

	if wm.ready {
		b.WriteString(wm.viewport.View())
		b.WriteString("\n")
	} else {
		b.WriteString(strings.Join(wm.lines, "\n"))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("j/k scroll • q quit"))

	return b.String()
}
