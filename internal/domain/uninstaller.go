package domain

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"

	"ammo.dev/pkg/ammo/internal/adapter"
	m "ammo.dev/pkg/ammo/internal/model"
)

// Uninstaller removes a previously installed binary.
type Uninstaller interface {
	Uninstall(ctx context.Context, target m.InstallTarget, name string) (m.UninstallReport, error)
}

type uninstaller struct {
	adapter.PrivilegedFileOp
	adapter.ProjectFSAdapter
}

// NewUninstaller constructs an Uninstaller.
func NewUninstaller(fileOp adapter.PrivilegedFileOp, fsAdapter adapter.ProjectFSAdapter) Uninstaller {
	return &uninstaller{
		PrivilegedFileOp: fileOp,
		ProjectFSAdapter: fsAdapter,
	}
}

// Uninstall inspects the target without elevation first so that an absent
// binary never triggers a privilege prompt. When the target cannot be
// inspected unelevated the removal goes ahead through the privileged file
// operation.
func (u *uninstaller) Uninstall(ctx context.Context, target m.InstallTarget, name string) (m.UninstallReport, error) {
	if err := ValidateProjectName(name); err != nil {
		return m.UninstallReport{}, err
	}

	if err := ValidateInstallTarget(target); err != nil {
		return m.UninstallReport{}, err
	}

	path := target.BinaryPath(name)
	report := m.UninstallReport{Path: path}

	info, err := u.LinkInfo(ctx, path)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Info("Binary not installed", "path", path)
		return report, nil
	case errors.Is(err, fs.ErrPermission):
		// The directory cannot be searched without elevation; the privileged
		// remove inspects the entry itself.
		slog.Debug("Target not inspectable, removing with elevation", "path", path, "error", err)
	case err != nil:
		return report, &m.UninstallError{Kind: m.UninstallRemoveFailed, Path: path, Err: err}
	case info.IsDir():
		return report, &m.UninstallError{Kind: m.UninstallUnexpectedEntry, Path: path}
	}

	slog.Info("Removing binary", "path", path)

	if err := u.Remove(ctx, path); err != nil {
		slog.Error("Uninstall failed", "path", path, "error", err)
		return report, err
	}

	report.Removed = true

	return report, nil
}
