package domain

import (
	"context"
	"log/slog"

	"ammo.dev/pkg/ammo/internal/adapter"
	m "ammo.dev/pkg/ammo/internal/model"
)

// Installer places a build artifact into the install target.
type Installer interface {
	Install(ctx context.Context, artifact m.BuildArtifact, target m.InstallTarget) (m.InstalledBinary, error)
}

type installer struct {
	adapter.PrivilegedFileOp
	adapter.ProjectFSAdapter

	project m.ProjectIdentity
}

// NewInstaller constructs an Installer. Only the copy goes through fileOp;
// everything else runs with the caller's privileges.
func NewInstaller(fileOp adapter.PrivilegedFileOp, fsAdapter adapter.ProjectFSAdapter, project m.ProjectIdentity) Installer {
	return &installer{
		PrivilegedFileOp: fileOp,
		ProjectFSAdapter: fsAdapter,
		project:          project,
	}
}

func (i *installer) Install(ctx context.Context, artifact m.BuildArtifact, target m.InstallTarget) (m.InstalledBinary, error) {
	if err := ValidateProjectName(i.project.Name); err != nil {
		return m.InstalledBinary{}, err
	}

	if err := ValidateInstallTarget(target); err != nil {
		return m.InstalledBinary{}, err
	}

	if !artifact.Exists {
		return m.InstalledBinary{}, &m.InstallError{Kind: m.InstallSourceMissing, Path: artifact.SourcePath}
	}

	dst := target.BinaryPath(i.project.Name)

	slog.Info("Installing binary", "source", artifact.SourcePath, "target", dst)

	if err := i.Copy(ctx, artifact.SourcePath, dst); err != nil {
		slog.Error("Install failed", "target", dst, "error", err)
		return m.InstalledBinary{}, err
	}

	return i.describe(ctx, dst), nil
}

// describe collects the summary shown after an install. The binary is
// already in place, so failures here are only logged.
func (i *installer) describe(ctx context.Context, path m.Path) m.InstalledBinary {
	binary := m.InstalledBinary{Path: path}

	info, err := i.FileInfo(ctx, path)
	if err != nil {
		slog.Error("Failed to stat installed binary", "path", path, "error", err)
		return binary
	}

	binary.Size = info.Size()
	binary.Mode = info.Mode().Perm()

	hash, err := i.HashFile(ctx, path)
	if err != nil {
		slog.Error("Failed to hash installed binary", "path", path, "error", err)
		return binary
	}

	binary.SHA256 = hash

	return binary
}
