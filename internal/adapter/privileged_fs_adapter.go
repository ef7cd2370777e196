package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	m "ammo.dev/pkg/ammo/internal/model"
)

// PrivilegedFileOp is the capability to mutate the install target. Production
// implementations may request elevated privileges for each call; tests use a
// fake or LocalFileOp on a temporary directory.
type PrivilegedFileOp interface {
	// Copy places src at dst, overwriting any existing file. dst is either
	// fully replaced or left untouched. Failures are *model.InstallError.
	Copy(ctx context.Context, src, dst m.Path) error

	// Remove deletes path. An absent path is not an error. Failures are
	// *model.UninstallError.
	Remove(ctx context.Context, path m.Path) error
}

// LocalFileOp performs the file operations directly with the privileges of
// the current process.
type LocalFileOp struct {
	copyFn func(dst io.Writer, src io.Reader) (int64, error)
}

// NewLocalFileOp constructs a LocalFileOp.
func NewLocalFileOp() *LocalFileOp {
	return &LocalFileOp{copyFn: io.Copy}
}

// Copy writes src to a temporary file next to dst and renames it into place.
func (o *LocalFileOp) Copy(ctx context.Context, src, dst m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	in, info, err := openSource(src)
	if err != nil {
		return err
	}

	defer func() {
		_ = in.Close()
	}()

	dir := filepath.Dir(string(dst))
	if err := checkTargetDir(dir, dst); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(string(dst))+".tmp-*")
	if err != nil {
		slog.Error("Failed to create temp file", "dir", dir, "error", err)
		return targetError(dst, err)
	}

	tmpName := tmp.Name()
	committed := false

	defer func() {
		if committed {
			return
		}

		_ = tmp.Close()

		if err := os.Remove(tmpName); err != nil && !errors.Is(err, os.ErrNotExist) {
			slog.Error("Failed to remove temp file", "path", tmpName, "error", err)
		}
	}()

	if _, err := o.copyFn(tmp, in); err != nil {
		slog.Error("Failed to copy artifact", "src", src, "tmp", tmpName, "error", err)
		return targetError(dst, fmt.Errorf("copy: %w", err))
	}

	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		return targetError(dst, fmt.Errorf("chmod: %w", err))
	}

	if err := tmp.Sync(); err != nil {
		return targetError(dst, fmt.Errorf("sync: %w", err))
	}

	if err := tmp.Close(); err != nil {
		return targetError(dst, fmt.Errorf("close: %w", err))
	}

	if err := os.Rename(tmpName, string(dst)); err != nil {
		slog.Error("Failed to rename temp file into place", "tmp", tmpName, "dst", dst, "error", err)
		return targetError(dst, fmt.Errorf("rename: %w", err))
	}

	committed = true

	syncDir(dir)
	slog.Info("Installed binary", "src", src, "dst", dst, "mode", info.Mode().Perm())

	return nil
}

// Remove deletes path if it is a regular file or a symlink.
func (o *LocalFileOp) Remove(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Lstat(string(path))
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("Nothing to remove", "path", path)
		return nil
	}

	if err != nil {
		return removeError(path, err)
	}

	if !isRemovableEntry(info) {
		return &m.UninstallError{
			Kind: m.UninstallUnexpectedEntry,
			Path: path,
			Err:  fmt.Errorf("%s is a %s", path, describeMode(info.Mode())),
		}
	}

	if err := os.Remove(string(path)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		slog.Error("Failed to remove binary", "path", path, "error", err)

		return removeError(path, err)
	}

	syncDir(filepath.Dir(string(path)))
	slog.Info("Removed binary", "path", path)

	return nil
}

func openSource(src m.Path) (*os.File, os.FileInfo, error) {
	in, err := os.Open(string(src))
	if err != nil {
		return nil, nil, &m.InstallError{Kind: m.InstallSourceMissing, Path: src, Err: err}
	}

	info, err := in.Stat()
	if err != nil {
		_ = in.Close()
		return nil, nil, &m.InstallError{Kind: m.InstallSourceMissing, Path: src, Err: err}
	}

	if !info.Mode().IsRegular() {
		_ = in.Close()
		return nil, nil, &m.InstallError{
			Kind: m.InstallSourceMissing,
			Path: src,
			Err:  fmt.Errorf("%s is a %s", src, describeMode(info.Mode())),
		}
	}

	return in, info, nil
}

func checkTargetDir(dir string, dst m.Path) error {
	info, err := os.Stat(dir)
	if err != nil {
		return targetError(dst, err)
	}

	if !info.IsDir() {
		return &m.InstallError{
			Kind: m.InstallTargetUnavailable,
			Path: dst,
			Err:  fmt.Errorf("%s is not a directory", dir),
		}
	}

	return nil
}

// targetError classifies a failure touching the target directory.
func targetError(dst m.Path, err error) error {
	kind := m.InstallTargetUnavailable
	if errors.Is(err, os.ErrPermission) && !isReadOnlyFS(err) {
		kind = m.InstallPermissionDenied
	}

	return &m.InstallError{Kind: kind, Path: dst, Err: err}
}

func removeError(path m.Path, err error) error {
	kind := m.UninstallRemoveFailed
	if errors.Is(err, os.ErrPermission) && !isReadOnlyFS(err) {
		kind = m.UninstallPermissionDenied
	}

	return &m.UninstallError{Kind: kind, Path: path, Err: err}
}

func isRemovableEntry(info os.FileInfo) bool {
	mode := info.Mode()
	return mode.IsRegular() || mode&os.ModeSymlink != 0
}

func describeMode(mode os.FileMode) string {
	switch {
	case mode.IsDir():
		return "directory"
	case mode&os.ModeSymlink != 0:
		return "symlink"
	case mode&os.ModeNamedPipe != 0:
		return "named pipe"
	case mode&os.ModeSocket != 0:
		return "socket"
	case mode&os.ModeDevice != 0:
		return "device"
	case mode.IsRegular():
		return "regular file"
	default:
		return "special file"
	}
}

// syncDir flushes directory metadata so a completed rename survives a crash.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}

	defer func() {
		_ = d.Close()
	}()

	if err := d.Sync(); err != nil {
		slog.Debug("Directory sync failed", "dir", dir, "error", err)
	}
}
