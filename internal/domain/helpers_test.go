package domain_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"ammo.dev/pkg/ammo/internal/adapter"
	controllermocks "ammo.dev/pkg/ammo/internal/controller/mocks"
	"ammo.dev/pkg/ammo/internal/domain"
	m "ammo.dev/pkg/ammo/internal/model"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubCommand returns a build command running the shell stub toolchain,
// which writes a size byte artifact named name, or fails with status.
func stubCommand(t *testing.T, args ...string) []string {
	t.Helper()

	script, err := filepath.Abs(filepath.Join("..", "..", "examples", "demo", "stub-toolchain.sh"))
	require.NoError(t, err)

	return append([]string{"sh", script}, args...)
}

// newQuietUI returns a UI mock accepting any display call.
func newQuietUI(t *testing.T) *controllermocks.MockUI {
	t.Helper()

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Maybe()
	ui.EXPECT().Close(mock.Anything).Return().Maybe()
	ui.EXPECT().Wait(mock.Anything).Return().Maybe()
	ui.EXPECT().BuildOutput().Return(io.Discard, io.Discard).Maybe()
	ui.EXPECT().DisplayStage(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	ui.EXPECT().DisplayChange(mock.Anything, mock.Anything).Return().Maybe()
	ui.EXPECT().DisplayBuildResult(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	ui.EXPECT().DisplayInstallResult(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	ui.EXPECT().DisplayUninstallResult(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	return ui
}

// stubProject is a fresh project directory named demo.
func stubProject(t *testing.T) m.Project {
	t.Helper()

	return m.Project{Root: m.Path(t.TempDir()), Identity: m.ProjectIdentity{Name: "demo"}}
}

// newStubOrchestrator wires the real adapters with a stub toolchain command
// and an install target inside a temporary directory.
func newStubOrchestrator(t *testing.T, project m.Project, target m.InstallTarget, command []string) domain.Orchestrator {
	t.Helper()

	fs := adapter.NewLocalProjectFSAdapter()
	fileOp := adapter.NewLocalFileOp()

	builder := domain.NewBuilder(
		adapter.NewLocalToolchainAdapter(),
		fs,
		domain.NewArtifactLocator(""),
		project,
		domain.WithBuildCommand(command),
		domain.WithBuildOutput(io.Discard, io.Discard),
	)

	return domain.NewOrchestrator(
		newQuietUI(t),
		builder,
		domain.NewInstaller(fileOp, fs, project.Identity),
		domain.NewUninstaller(fileOp, fs),
		nil,
		domain.OrchestratorSettings{Project: project, Target: target},
	)
}

func writeFile(t *testing.T, path string, content []byte, perm os.FileMode) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, perm))
}

// snapshotDir maps every entry name in dir to its content.
func snapshotDir(t *testing.T, dir string) map[string]string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	snapshot := make(map[string]string, len(entries))

	for _, entry := range entries {
		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		require.NoError(t, err)

		snapshot[entry.Name()] = string(content)
	}

	return snapshot
}
