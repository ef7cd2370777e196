package domain_test

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"ammo.dev/pkg/ammo/internal/adapter"
	adaptermocks "ammo.dev/pkg/ammo/internal/adapter/mocks"
	"ammo.dev/pkg/ammo/internal/domain"
	m "ammo.dev/pkg/ammo/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func stubArtifact(t *testing.T, content []byte) m.BuildArtifact {
	t.Helper()

	path := filepath.Join(t.TempDir(), "target", "release", "demo")
	writeFile(t, path, content, 0o755)

	return m.BuildArtifact{SourcePath: m.Path(path), Exists: true}
}

func TestInstaller_Install(t *testing.T) {
	content := bytes.Repeat([]byte("a"), 10)
	artifact := stubArtifact(t, content)
	target := m.InstallTarget{Directory: m.Path(t.TempDir())}

	installer := domain.NewInstaller(adapter.NewLocalFileOp(), adapter.NewLocalProjectFSAdapter(), m.ProjectIdentity{Name: "demo"})

	binary, err := installer.Install(context.Background(), artifact, target)
	require.NoError(t, err)

	assert.Equal(t, target.Directory.Join("demo"), binary.Path)
	assert.Equal(t, int64(10), binary.Size)
	assert.Equal(t, os.FileMode(0o755), binary.Mode)
	assert.Equal(t, fmt.Sprintf("%x", sha256.Sum256(content)), binary.SHA256)
}

func TestInstaller_InstallTwiceIsByteIdentical(t *testing.T) {
	content := []byte("release build of demo")
	artifact := stubArtifact(t, content)
	target := m.InstallTarget{Directory: m.Path(t.TempDir())}

	installer := domain.NewInstaller(adapter.NewLocalFileOp(), adapter.NewLocalProjectFSAdapter(), m.ProjectIdentity{Name: "demo"})

	first, err := installer.Install(context.Background(), artifact, target)
	require.NoError(t, err)

	second, err := installer.Install(context.Background(), artifact, target)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	got, err := os.ReadFile(string(second.Path))
	require.NoError(t, err)
	assert.Equal(t, content, got)
	assert.Equal(t, map[string]string{"demo": string(content)}, snapshotDir(t, string(target.Directory)))
}

func TestInstaller_InterruptedCopyKeepsPreviousBinary(t *testing.T) {
	targetDir := t.TempDir()
	previous := []byte("previous binary")
	writeFile(t, filepath.Join(targetDir, "demo"), previous, 0o755)

	fileOp := adaptermocks.NewMockPrivilegedFileOp(t)
	fileOp.EXPECT().
		Copy(mock.Anything, mock.Anything, m.Path(filepath.Join(targetDir, "demo"))).
		Return(&m.InstallError{Kind: m.InstallTargetUnavailable, Path: m.Path(targetDir)}).
		Once()

	installer := domain.NewInstaller(fileOp, adapter.NewLocalProjectFSAdapter(), m.ProjectIdentity{Name: "demo"})

	_, err := installer.Install(context.Background(), stubArtifact(t, []byte("new binary")), m.InstallTarget{Directory: m.Path(targetDir)})

	var installErr *m.InstallError
	require.ErrorAs(t, err, &installErr)
	assert.Equal(t, m.InstallTargetUnavailable, installErr.Kind)
	assert.Equal(t, map[string]string{"demo": string(previous)}, snapshotDir(t, targetDir))
}

func TestInstaller_Install_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		artifact m.BuildArtifact
		target   m.InstallTarget
		project  string
		check    func(t *testing.T, err error)
	}{
		{
			name:     "artifact missing",
			artifact: m.BuildArtifact{SourcePath: "/p/target/release/demo"},
			target:   m.InstallTarget{Directory: "/usr/local/bin"},
			project:  "demo",
			check: func(t *testing.T, err error) {
				var installErr *m.InstallError
				require.ErrorAs(t, err, &installErr)
				assert.Equal(t, m.InstallSourceMissing, installErr.Kind)
			},
		},
		{
			name:     "relative target",
			artifact: m.BuildArtifact{SourcePath: "/p/target/release/demo", Exists: true},
			target:   m.InstallTarget{Directory: "bin"},
			project:  "demo",
			check: func(t *testing.T, err error) {
				var cfgErr *m.ConfigError
				require.ErrorAs(t, err, &cfgErr)
				assert.Equal(t, m.RelativeInstallTarget, cfgErr.Kind)
			},
		},
		{
			name:     "empty project name",
			artifact: m.BuildArtifact{SourcePath: "/p/target/release/demo", Exists: true},
			target:   m.InstallTarget{Directory: "/usr/local/bin"},
			check: func(t *testing.T, err error) {
				var cfgErr *m.ConfigError
				require.ErrorAs(t, err, &cfgErr)
				assert.Equal(t, m.EmptyProjectName, cfgErr.Kind)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileOp := adaptermocks.NewMockPrivilegedFileOp(t)
			installer := domain.NewInstaller(fileOp, adaptermocks.NewMockProjectFSAdapter(t), m.ProjectIdentity{Name: tt.project})

			_, err := installer.Install(context.Background(), tt.artifact, tt.target)
			tt.check(t, err)

			fileOp.AssertNotCalled(t, "Copy", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestInstaller_Install_SummaryFailureIsNotFatal(t *testing.T) {
	fileOp := adaptermocks.NewMockPrivilegedFileOp(t)
	fileOp.EXPECT().Copy(mock.Anything, m.Path("/p/demo"), m.Path("/usr/local/bin/demo")).Return(nil).Once()

	fs := adaptermocks.NewMockProjectFSAdapter(t)
	fs.EXPECT().FileInfo(mock.Anything, m.Path("/usr/local/bin/demo")).Return(nil, os.ErrPermission).Once()

	installer := domain.NewInstaller(fileOp, fs, m.ProjectIdentity{Name: "demo"})

	binary, err := installer.Install(context.Background(), m.BuildArtifact{SourcePath: "/p/demo", Exists: true}, m.InstallTarget{Directory: "/usr/local/bin"})
	require.NoError(t, err)
	assert.Equal(t, m.Path("/usr/local/bin/demo"), binary.Path)
	assert.Empty(t, binary.SHA256)
}
