package controller

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "ammo.dev/pkg/ammo/internal/model"
)

func sized(t *testing.T, model tea.Model, width, height int) watchModel {
	t.Helper()

	updated, _ := model.Update(tea.WindowSizeMsg{Width: width, Height: height})

	wm, ok := updated.(watchModel)
	require.True(t, ok)

	return wm
}

func update(t *testing.T, wm watchModel, msg tea.Msg) (watchModel, tea.Cmd) {
	t.Helper()

	updated, cmd := wm.Update(msg)

	next, ok := updated.(watchModel)
	require.True(t, ok)

	return next, cmd
}

func TestWatchModel_View(t *testing.T) {
	wm := sized(t, newWatchModel(m.Project{Root: "/home/dev/demo", Identity: m.ProjectIdentity{Name: "demo"}}), 80, 20)

	view := wm.View()
	assert.Contains(t, view, "ammo watch")
	assert.Contains(t, view, "demo")
	assert.Contains(t, view, "/home/dev/demo")
	assert.Contains(t, view, "watching")
	assert.Contains(t, view, "waiting for the first build")
	assert.Contains(t, view, "q quit")
}

func TestWatchModel_StageAndResult(t *testing.T) {
	wm := sized(t, newWatchModel(m.Project{}), 80, 20)

	wm, _ = update(t, wm, stageMsg{stage: m.StageBuilding})
	assert.Contains(t, wm.View(), "building")

	wm, _ = update(t, wm, resultMsg{failed: true, text: "build failed with exit status 101"})
	assert.Contains(t, wm.View(), "build failed with exit status 101")

	wm, _ = update(t, wm, resultMsg{text: "built /p/target/release/demo"})
	assert.Contains(t, wm.View(), "built /p/target/release/demo")
	assert.NotContains(t, wm.View(), "exit status 101")
}

func TestWatchModel_LogLines(t *testing.T) {
	wm := sized(t, newWatchModel(m.Project{}), 80, 20)

	wm, _ = update(t, wm, logMsg("   Compiling demo v0.1.0\n    Fini"))
	assert.Equal(t, []string{"   Compiling demo v0.1.0"}, wm.lines)
	assert.Equal(t, "    Fini", wm.partial)

	wm, _ = update(t, wm, logMsg("shed release\n"))
	assert.Equal(t, []string{"   Compiling demo v0.1.0", "    Finished release"}, wm.lines)
	assert.Empty(t, wm.partial)
	assert.Contains(t, wm.View(), "Finished release")

	wm, _ = update(t, wm, stageMsg{stage: m.StageBuilding})
	assert.Empty(t, wm.lines, "a new build starts with an empty log")
}

func TestWatchModel_LogIsBounded(t *testing.T) {
	wm := sized(t, newWatchModel(m.Project{}), 80, 20)

	var chunk bytes.Buffer
	for i := 0; i < maxLogLines+10; i++ {
		fmt.Fprintf(&chunk, "line %d\n", i)
	}

	wm, _ = update(t, wm, logMsg(chunk.String()))

	require.Len(t, wm.lines, maxLogLines)
	assert.Equal(t, "line 10", wm.lines[0])
}

func TestWatchModel_Quit(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		t.Run(key.String(), func(t *testing.T) {
			wm, cmd := update(t, newWatchModel(m.Project{}), key)

			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.Empty(t, wm.View())
		})
	}
}

func TestWatchModel_LogBeforeResize(t *testing.T) {
	wm, _ := update(t, newWatchModel(m.Project{}), logMsg("early output\n"))

	assert.Contains(t, wm.View(), "early output")
}

func TestTUI_NotStarted(t *testing.T) {
	var out bytes.Buffer

	ui := NewTUI(&out)
	ctx := context.Background()

	// Every call is a no-op before Start.
	ui.DisplayStage(ctx, m.StageBuilding, m.ProjectIdentity{Name: "demo"})
	ui.DisplayBuildResult(ctx, m.BuildArtifact{}, errors.New("boom"))
	ui.Wait(ctx)
	ui.Close(ctx)

	stdout, stderr := ui.BuildOutput()
	n, err := stdout.Write([]byte("ignored"))
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	_, err = stderr.Write([]byte("ignored"))
	require.NoError(t, err)

	assert.Empty(t, out.String())
}

func TestDescribeFailure(t *testing.T) {
	assert.Equal(t, "build cancelled", describeFailure("build", fmt.Errorf("wrapped: %w", context.Canceled)))
	assert.Equal(t, "install failed: boom", describeFailure("install", errors.New("boom")))
}
