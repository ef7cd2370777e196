package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	m "ammo.dev/pkg/ammo/internal/model"
)

// PrivilegedCommand is the hidden subcommand the elevated helper process runs.
const PrivilegedCommand = "privileged"

// Exit statuses of the privileged helper, one per error kind. Anything else
// (typically 1 from the elevator itself) is read as a refused elevation.
const (
	PrivilegedExitPermissionDenied  = 13
	PrivilegedExitTargetUnavailable = 14
	PrivilegedExitSourceMissing     = 15
	PrivilegedExitUnexpectedEntry   = 16
	PrivilegedExitRemoveFailed      = 17
)

// DefaultElevator is the command prefix used to gain superuser privileges.
var DefaultElevator = []string{"sudo", "--"}

// PrivilegedExitCode maps an error returned by LocalFileOp to the helper's exit status.
func PrivilegedExitCode(err error) int {
	if err == nil {
		return 0
	}

	var installErr *m.InstallError
	if errors.As(err, &installErr) {
		switch installErr.Kind {
		case m.InstallPermissionDenied:
			return PrivilegedExitPermissionDenied
		case m.InstallTargetUnavailable:
			return PrivilegedExitTargetUnavailable
		case m.InstallSourceMissing:
			return PrivilegedExitSourceMissing
		}
	}

	var uninstallErr *m.UninstallError
	if errors.As(err, &uninstallErr) {
		switch uninstallErr.Kind {
		case m.UninstallPermissionDenied:
			return PrivilegedExitPermissionDenied
		case m.UninstallUnexpectedEntry:
			return PrivilegedExitUnexpectedEntry
		case m.UninstallRemoveFailed:
			return PrivilegedExitRemoveFailed
		}
	}

	return 1
}

// ElevatedFileOp runs each operation in a copy of this executable started
// through an elevator such as sudo. The child runs LocalFileOp as root and
// reports the outcome through its exit status.
type ElevatedFileOp struct {
	elevator   []string
	executable func() (string, error)
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
}

// NewElevatedFileOp constructs an ElevatedFileOp. The elevator prompt is
// attached to the process's standard streams.
func NewElevatedFileOp(elevator []string) *ElevatedFileOp {
	if len(elevator) == 0 {
		elevator = DefaultElevator
	}

	return &ElevatedFileOp{
		elevator:   elevator,
		executable: os.Executable,
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
}

// Copy copies src to dst with elevated privileges.
func (o *ElevatedFileOp) Copy(ctx context.Context, src, dst m.Path) error {
	status, err := o.run(ctx, "copy", string(src), string(dst))

	switch status {
	case 0:
		return nil
	case PrivilegedExitTargetUnavailable:
		return &m.InstallError{Kind: m.InstallTargetUnavailable, Path: dst, Err: err}
	case PrivilegedExitSourceMissing:
		return &m.InstallError{Kind: m.InstallSourceMissing, Path: src, Err: err}
	default:
		return &m.InstallError{Kind: m.InstallPermissionDenied, Path: dst, Err: err}
	}
}

// Remove deletes path with elevated privileges.
func (o *ElevatedFileOp) Remove(ctx context.Context, path m.Path) error {
	status, err := o.run(ctx, "remove", string(path))

	switch status {
	case 0:
		return nil
	case PrivilegedExitUnexpectedEntry:
		return &m.UninstallError{Kind: m.UninstallUnexpectedEntry, Path: path, Err: err}
	case PrivilegedExitRemoveFailed:
		return &m.UninstallError{Kind: m.UninstallRemoveFailed, Path: path, Err: err}
	default:
		return &m.UninstallError{Kind: m.UninstallPermissionDenied, Path: path, Err: err}
	}
}

// run starts the helper and returns its exit status. A launch failure is
// reported as status -1.
func (o *ElevatedFileOp) run(ctx context.Context, op string, args ...string) (int, error) {
	self, err := o.executable()
	if err != nil {
		return -1, fmt.Errorf("locate executable: %w", err)
	}

	argv := make([]string, 0, len(o.elevator)+3+len(args))
	argv = append(argv, o.elevator[1:]...)
	argv = append(argv, self, PrivilegedCommand, op)
	argv = append(argv, args...)

	cmd := exec.CommandContext(ctx, o.elevator[0], argv...)
	cmd.Stdin = o.stdin
	cmd.Stdout = o.stdout
	cmd.Stderr = o.stderr

	slog.Info("Requesting elevation", "elevator", o.elevator[0], "op", op, "args", args)

	err = cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		status := exitErr.ExitCode()
		slog.Error("Privileged helper failed", "op", op, "status", status)

		return status, fmt.Errorf("%s %s exited with status %d", o.elevator[0], op, status)
	}

	slog.Error("Failed to start elevator", "elevator", o.elevator[0], "error", err)

	return -1, fmt.Errorf("run %s: %w", o.elevator[0], err)
}

// ElevationMode selects when the installer asks for elevated privileges.
type ElevationMode string

// Available ElevationMode values.
const (
	// ElevateAuto elevates only when the target directory is not writable.
	ElevateAuto ElevationMode = "auto"
	// ElevateAlways elevates every operation unless already running as root.
	ElevateAlways ElevationMode = "always"
	// ElevateNever never elevates.
	ElevateNever ElevationMode = "never"
)

// ParseElevationMode validates a configured elevation mode.
func ParseElevationMode(value string) (ElevationMode, error) {
	switch mode := ElevationMode(value); mode {
	case ElevateAuto, ElevateAlways, ElevateNever:
		return mode, nil
	case "":
		return ElevateAuto, nil
	default:
		return "", &m.ConfigError{
			Kind:   m.InvalidSetting,
			Detail: fmt.Sprintf("install.elevate must be auto, always or never, got %q", value),
		}
	}
}

// AutoFileOp dispatches each operation to a direct or an elevated
// implementation depending on the mode and the target directory.
type AutoFileOp struct {
	mode     ElevationMode
	direct   PrivilegedFileOp
	elevated PrivilegedFileOp
	isRoot   func() bool
	canWrite func(dir string) bool
}

// NewAutoFileOp constructs an AutoFileOp.
func NewAutoFileOp(mode ElevationMode, direct, elevated PrivilegedFileOp) *AutoFileOp {
	return &AutoFileOp{
		mode:     mode,
		direct:   direct,
		elevated: elevated,
		isRoot:   isRoot,
		canWrite: canWriteDir,
	}
}

// Copy implements PrivilegedFileOp.
func (a *AutoFileOp) Copy(ctx context.Context, src, dst m.Path) error {
	op, retry := a.pick(dst)

	err := op.Copy(ctx, src, dst)
	if retry && permissionDenied(err) {
		slog.Info("Direct copy denied, elevating", "path", dst, "error", err)
		return a.elevated.Copy(ctx, src, dst)
	}

	return err
}

// Remove implements PrivilegedFileOp.
func (a *AutoFileOp) Remove(ctx context.Context, path m.Path) error {
	op, retry := a.pick(path)

	err := op.Remove(ctx, path)
	if retry && permissionDenied(err) {
		slog.Info("Direct remove denied, elevating", "path", path, "error", err)
		return a.elevated.Remove(ctx, path)
	}

	return err
}

// pick returns the implementation for path and whether a permission failure
// from it should be retried with elevation. A writable directory can still
// refuse the operation, e.g. a sticky directory holding another user's file.
func (a *AutoFileOp) pick(path m.Path) (PrivilegedFileOp, bool) {
	if a.mode == ElevateNever || a.isRoot() {
		return a.direct, false
	}

	if a.mode == ElevateAlways {
		return a.elevated, false
	}

	dir := filepath.Dir(string(path))
	if a.canWrite(dir) {
		slog.Debug("Target directory writable, not elevating", "dir", dir)
		return a.direct, true
	}

	return a.elevated, false
}

func permissionDenied(err error) bool {
	var installErr *m.InstallError
	if errors.As(err, &installErr) {
		return installErr.Kind == m.InstallPermissionDenied
	}

	var uninstallErr *m.UninstallError
	if errors.As(err, &uninstallErr) {
		return uninstallErr.Kind == m.UninstallPermissionDenied
	}

	return false
}
