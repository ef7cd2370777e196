package domain_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	controllermocks "ammo.dev/pkg/ammo/internal/controller/mocks"
	"ammo.dev/pkg/ammo/internal/domain"
	domainmocks "ammo.dev/pkg/ammo/internal/domain/mocks"
	m "ammo.dev/pkg/ammo/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrchestrator_Install_FreshTarget(t *testing.T) {
	project := stubProject(t)
	target := m.InstallTarget{Directory: m.Path(t.TempDir())}

	orch := newStubOrchestrator(t, project, target, stubCommand(t, "demo", "10"))

	err := orch.Run(context.Background(), m.OperationInstall)
	require.NoError(t, err)
	assert.Equal(t, domain.ExitSuccess, domain.ExitCode(m.OperationInstall, err))

	info, err := os.Stat(filepath.Join(string(target.Directory), "demo"))
	require.NoError(t, err)
	assert.Equal(t, int64(10), info.Size())
	assert.NotZero(t, info.Mode().Perm()&0o111, "installed binary must be executable")
}

func TestOrchestrator_Install_ReplacesPreviousBinary(t *testing.T) {
	project := stubProject(t)
	targetDir := t.TempDir()
	writeFile(t, filepath.Join(targetDir, "demo"), []byte("old demo"), 0o755)

	orch := newStubOrchestrator(t, project, m.InstallTarget{Directory: m.Path(targetDir)}, stubCommand(t, "demo", "20", "0", "b"))

	err := orch.Run(context.Background(), m.OperationInstall)
	require.NoError(t, err)

	artifact, err := os.ReadFile(filepath.Join(string(project.Root), "target", "release", "demo"))
	require.NoError(t, err)
	require.Len(t, artifact, 20)

	assert.Equal(t, map[string]string{"demo": string(artifact)}, snapshotDir(t, targetDir))
}

func TestOrchestrator_Uninstall_NothingInstalled(t *testing.T) {
	project := stubProject(t)
	targetDir := t.TempDir()

	orch := newStubOrchestrator(t, project, m.InstallTarget{Directory: m.Path(targetDir)}, nil)

	report, err := orch.Uninstall(context.Background())
	require.NoError(t, err)
	assert.False(t, report.Removed)
	assert.Equal(t, domain.ExitSuccess, domain.ExitCode(m.OperationUninstall, err))
}

func TestOrchestrator_Install_FailedBuildLeavesTargetUntouched(t *testing.T) {
	project := stubProject(t)
	targetDir := t.TempDir()
	writeFile(t, filepath.Join(targetDir, "demo"), []byte("installed"), 0o755)
	writeFile(t, filepath.Join(targetDir, "other"), []byte("unrelated"), 0o644)

	before := snapshotDir(t, targetDir)

	orch := newStubOrchestrator(t, project, m.InstallTarget{Directory: m.Path(targetDir)}, stubCommand(t, "demo", "10", "1"))

	err := orch.Run(context.Background(), m.OperationInstall)
	require.Error(t, err)

	assert.Equal(t, domain.ExitBuildFailed, domain.ExitCode(m.OperationInstall, err))
	assert.Equal(t, before, snapshotDir(t, targetDir))
}

func TestOrchestrator_Install_NeverCopiesAfterFailedBuild(t *testing.T) {
	builder := domainmocks.NewMockBuilder(t)
	builder.EXPECT().Build(mock.Anything).Return(m.BuildArtifact{}, &m.BuildError{ExitCode: 101}).Once()

	installer := domainmocks.NewMockInstaller(t)

	orch := domain.NewOrchestrator(newQuietUI(t), builder, installer, domainmocks.NewMockUninstaller(t), nil, domain.OrchestratorSettings{
		Project: stubProject(t),
		Target:  m.InstallTarget{Directory: "/usr/local/bin"},
	})

	_, err := orch.Install(context.Background())

	var buildErr *m.BuildError
	require.ErrorAs(t, err, &buildErr)
	installer.AssertNotCalled(t, "Install", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrchestrator_Install_ReportsStages(t *testing.T) {
	project := stubProject(t)
	target := m.InstallTarget{Directory: "/usr/local/bin"}
	artifact := m.BuildArtifact{SourcePath: project.Root.Join("target", "release", "demo"), Exists: true}
	binary := m.InstalledBinary{Path: "/usr/local/bin/demo", Size: 10}

	builder := domainmocks.NewMockBuilder(t)
	builder.EXPECT().Build(mock.Anything).Return(artifact, nil).Once()

	installer := domainmocks.NewMockInstaller(t)
	installer.EXPECT().Install(mock.Anything, artifact, target).Return(binary, nil).Once()

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	ui.EXPECT().DisplayStage(mock.Anything, m.StageBuilding, project.Identity).Return().Once()
	ui.EXPECT().DisplayBuildResult(mock.Anything, artifact, nil).Return().Once()
	ui.EXPECT().DisplayStage(mock.Anything, m.StageInstalling, project.Identity).Return().Once()
	ui.EXPECT().DisplayInstallResult(mock.Anything, binary, nil).Return().Once()
	ui.EXPECT().Close(mock.Anything).Return().Once()

	orch := domain.NewOrchestrator(ui, builder, installer, domainmocks.NewMockUninstaller(t), nil, domain.OrchestratorSettings{
		Project: project,
		Target:  target,
	})

	require.NoError(t, orch.Run(context.Background(), m.OperationInstall))
}

func TestOrchestrator_Uninstall_PassesTargetAndName(t *testing.T) {
	project := stubProject(t)
	target := m.InstallTarget{Directory: "/usr/local/bin"}
	report := m.UninstallReport{Path: "/usr/local/bin/demo", Removed: true}

	uninstaller := domainmocks.NewMockUninstaller(t)
	uninstaller.EXPECT().Uninstall(mock.Anything, target, "demo").Return(report, nil).Once()

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().DisplayStage(mock.Anything, m.StageUninstalling, project.Identity).Return().Once()
	ui.EXPECT().DisplayUninstallResult(mock.Anything, report, nil).Return().Once()

	orch := domain.NewOrchestrator(ui, domainmocks.NewMockBuilder(t), domainmocks.NewMockInstaller(t), uninstaller, nil, domain.OrchestratorSettings{
		Project: project,
		Target:  target,
	})

	got, err := orch.Uninstall(context.Background())
	require.NoError(t, err)
	assert.Equal(t, report, got)
}

func TestOrchestrator_Run_StartFailure(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(errors.New("no terminal")).Once()

	orch := domain.NewOrchestrator(ui, domainmocks.NewMockBuilder(t), domainmocks.NewMockInstaller(t), domainmocks.NewMockUninstaller(t), nil, domain.OrchestratorSettings{
		Project: stubProject(t),
	})

	err := orch.Run(context.Background(), m.OperationBuild)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no terminal")
}

func TestOrchestrator_Run_UnknownOperation(t *testing.T) {
	orch := domain.NewOrchestrator(newQuietUI(t), domainmocks.NewMockBuilder(t), domainmocks.NewMockInstaller(t), domainmocks.NewMockUninstaller(t), nil, domain.OrchestratorSettings{
		Project: stubProject(t),
	})

	err := orch.Run(context.Background(), m.Operation("deploy"))

	var cfgErr *m.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, m.UnknownOperation, cfgErr.Kind)
}

func TestOrchestrator_Watch_NotConfigured(t *testing.T) {
	orch := domain.NewOrchestrator(newQuietUI(t), domainmocks.NewMockBuilder(t), domainmocks.NewMockInstaller(t), domainmocks.NewMockUninstaller(t), nil, domain.OrchestratorSettings{})

	require.Error(t, orch.Watch(context.Background()))
}

func TestOrchestrator_Watch_CycleOperation(t *testing.T) {
	tests := []struct {
		name         string
		watchInstall bool
	}{
		{name: "build only", watchInstall: false},
		{name: "build and install", watchInstall: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			artifact := m.BuildArtifact{SourcePath: "/p/target/release/demo", Exists: true}

			builder := domainmocks.NewMockBuilder(t)
			builder.EXPECT().Build(mock.Anything).Return(artifact, nil).Once()

			installer := domainmocks.NewMockInstaller(t)
			if tt.watchInstall {
				installer.EXPECT().Install(mock.Anything, artifact, mock.Anything).Return(m.InstalledBinary{}, nil).Once()
			}

			watcher := domainmocks.NewMockWatcher(t)
			watcher.EXPECT().
				Watch(mock.Anything, mock.Anything).
				RunAndReturn(func(ctx context.Context, cycle domain.Cycle) error {
					return cycle(ctx)
				}).Once()

			ui := newQuietUI(t)

			orch := domain.NewOrchestrator(ui, builder, installer, domainmocks.NewMockUninstaller(t), watcher, domain.OrchestratorSettings{
				Project:      stubProject(t),
				Target:       m.InstallTarget{Directory: "/usr/local/bin"},
				WatchInstall: tt.watchInstall,
			})

			require.NoError(t, orch.Run(context.Background(), m.OperationWatch))
			ui.AssertCalled(t, "Start", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestOrchestrator_Watch_StopsWhenUIQuits(t *testing.T) {
	watcher := domainmocks.NewMockWatcher(t)
	watcher.EXPECT().
		Watch(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ domain.Cycle) error {
			<-ctx.Done()
			return nil
		}).Once()

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	// The user quits the interface straight away.
	ui.EXPECT().Wait(mock.Anything).Return().Once()
	ui.EXPECT().Close(mock.Anything).Return().Once()

	orch := domain.NewOrchestrator(ui, domainmocks.NewMockBuilder(t), domainmocks.NewMockInstaller(t), domainmocks.NewMockUninstaller(t), watcher, domain.OrchestratorSettings{
		Project: stubProject(t),
	})

	require.NoError(t, orch.Run(context.Background(), m.OperationWatch))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		op   m.Operation
		err  error
		want int
	}{
		{op: m.OperationBuild, err: nil, want: domain.ExitSuccess},
		{op: m.OperationBuild, err: &m.BuildError{ExitCode: 101}, want: 101},
		{op: m.OperationBuild, err: &m.BuildError{ExitCode: -1}, want: domain.ExitBuildFailed},
		{op: m.OperationBuild, err: &m.ConfigError{Kind: m.InvalidProjectName}, want: domain.ExitConfigError},
		{op: m.OperationInstall, err: fmt.Errorf("wrapped: %w", &m.BuildError{ExitCode: 1}), want: domain.ExitBuildFailed},
		{op: m.OperationInstall, err: &m.InstallError{Kind: m.InstallPermissionDenied}, want: domain.ExitInstallFailed},
		{op: m.OperationInstall, err: &m.ConfigError{Kind: m.RelativeInstallTarget}, want: domain.ExitConfigError},
		{op: m.OperationUninstall, err: &m.UninstallError{Kind: m.UninstallRemoveFailed}, want: domain.ExitUninstallFailed},
		{op: m.OperationUninstall, err: &m.ConfigError{Kind: m.EmptyProjectName}, want: domain.ExitConfigError},
		{op: m.OperationWatch, err: errors.New("watch failed"), want: domain.ExitFailure},
		{op: m.OperationInstall, err: errors.New("unexpected"), want: domain.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%v", tt.op, tt.err), func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ExitCode(tt.op, tt.err))
		})
	}
}
