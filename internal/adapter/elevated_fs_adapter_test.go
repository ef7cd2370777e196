package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	m "ammo.dev/pkg/ammo/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStubElevatedFileOp returns an ElevatedFileOp whose "elevator" is sh and
// whose helper is a script recording its arguments and exiting with status.
func newStubElevatedFileOp(t *testing.T, status int) (*ElevatedFileOp, string) {
	t.Helper()

	dir := t.TempDir()
	argsFile := filepath.Join(dir, "args")
	script := filepath.Join(dir, "helper.sh")
	content := fmt.Sprintf("printf '%%s\\n' \"$@\" > %q\nexit %d\n", argsFile, status)
	require.NoError(t, os.WriteFile(script, []byte(content), 0o755))

	op := NewElevatedFileOp([]string{"sh"})
	op.executable = func() (string, error) { return script, nil }
	op.stdin = strings.NewReader("")
	op.stdout = &bytes.Buffer{}
	op.stderr = &bytes.Buffer{}

	return op, argsFile
}

func readArgs(t *testing.T, path string) []string {
	t.Helper()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	return strings.Split(strings.TrimSpace(string(raw)), "\n")
}

func TestElevatedFileOp_Copy_InvokesHelper(t *testing.T) {
	op, argsFile := newStubElevatedFileOp(t, 0)

	err := op.Copy(context.Background(), "/tmp/project/target/release/demo", "/usr/local/bin/demo")
	require.NoError(t, err)

	assert.Equal(t,
		[]string{PrivilegedCommand, "copy", "/tmp/project/target/release/demo", "/usr/local/bin/demo"},
		readArgs(t, argsFile))
}

func TestElevatedFileOp_Remove_InvokesHelper(t *testing.T) {
	op, argsFile := newStubElevatedFileOp(t, 0)

	require.NoError(t, op.Remove(context.Background(), "/usr/local/bin/demo"))
	assert.Equal(t, []string{PrivilegedCommand, "remove", "/usr/local/bin/demo"}, readArgs(t, argsFile))
}

func TestElevatedFileOp_Copy_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   m.InstallErrorKind
	}{
		{"elevator refused", 1, m.InstallPermissionDenied},
		{"helper permission denied", PrivilegedExitPermissionDenied, m.InstallPermissionDenied},
		{"target unavailable", PrivilegedExitTargetUnavailable, m.InstallTargetUnavailable},
		{"source missing", PrivilegedExitSourceMissing, m.InstallSourceMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, _ := newStubElevatedFileOp(t, tt.status)

			err := op.Copy(context.Background(), "/src/demo", "/dst/demo")
			assertInstallKind(t, err, tt.want)
		})
	}
}

func TestElevatedFileOp_Remove_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   m.UninstallErrorKind
	}{
		{"elevator refused", 1, m.UninstallPermissionDenied},
		{"unexpected entry", PrivilegedExitUnexpectedEntry, m.UninstallUnexpectedEntry},
		{"remove failed", PrivilegedExitRemoveFailed, m.UninstallRemoveFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, _ := newStubElevatedFileOp(t, tt.status)

			err := op.Remove(context.Background(), "/dst/demo")

			var uninstallErr *m.UninstallError
			require.ErrorAs(t, err, &uninstallErr)
			assert.Equal(t, tt.want, uninstallErr.Kind)
		})
	}
}

func TestElevatedFileOp_ElevatorMissing(t *testing.T) {
	op := NewElevatedFileOp([]string{filepath.Join(t.TempDir(), "no-sudo")})
	op.executable = func() (string, error) { return "/usr/bin/true", nil }

	err := op.Copy(context.Background(), "/src/demo", "/dst/demo")
	assertInstallKind(t, err, m.InstallPermissionDenied)
}

func TestElevatedFileOp_ExecutableUnknown(t *testing.T) {
	op := NewElevatedFileOp(nil)
	op.executable = func() (string, error) { return "", errors.New("no /proc") }

	err := op.Remove(context.Background(), "/dst/demo")

	var uninstallErr *m.UninstallError
	require.ErrorAs(t, err, &uninstallErr)
	assert.Equal(t, m.UninstallPermissionDenied, uninstallErr.Kind)
}

func TestPrivilegedExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"install permission", &m.InstallError{Kind: m.InstallPermissionDenied}, PrivilegedExitPermissionDenied},
		{"install target", &m.InstallError{Kind: m.InstallTargetUnavailable}, PrivilegedExitTargetUnavailable},
		{"install source", &m.InstallError{Kind: m.InstallSourceMissing}, PrivilegedExitSourceMissing},
		{"uninstall permission", &m.UninstallError{Kind: m.UninstallPermissionDenied}, PrivilegedExitPermissionDenied},
		{"uninstall entry", &m.UninstallError{Kind: m.UninstallUnexpectedEntry}, PrivilegedExitUnexpectedEntry},
		{"uninstall failed", &m.UninstallError{Kind: m.UninstallRemoveFailed}, PrivilegedExitRemoveFailed},
		{"wrapped", fmt.Errorf("helper: %w", &m.InstallError{Kind: m.InstallSourceMissing}), PrivilegedExitSourceMissing},
		{"other", errors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrivilegedExitCode(tt.err))
		})
	}
}

func TestParseElevationMode(t *testing.T) {
	for _, value := range []string{"auto", "always", "never"} {
		mode, err := ParseElevationMode(value)
		require.NoError(t, err)
		assert.Equal(t, ElevationMode(value), mode)
	}

	mode, err := ParseElevationMode("")
	require.NoError(t, err)
	assert.Equal(t, ElevateAuto, mode)

	_, err = ParseElevationMode("sometimes")

	var cfgErr *m.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, m.InvalidSetting, cfgErr.Kind)
}

// recordingFileOp counts the calls it receives and fails them with the
// configured errors.
type recordingFileOp struct {
	copies  []m.Path
	removes []m.Path

	copyErr   error
	removeErr error
}

func (r *recordingFileOp) Copy(_ context.Context, _, dst m.Path) error {
	r.copies = append(r.copies, dst)
	return r.copyErr
}

func (r *recordingFileOp) Remove(_ context.Context, path m.Path) error {
	r.removes = append(r.removes, path)
	return r.removeErr
}

func TestAutoFileOp_Dispatch(t *testing.T) {
	tests := []struct {
		name         string
		mode         ElevationMode
		root         bool
		writable     bool
		wantElevated bool
	}{
		{"auto writable", ElevateAuto, false, true, false},
		{"auto not writable", ElevateAuto, false, false, true},
		{"auto as root", ElevateAuto, true, false, false},
		{"always", ElevateAlways, false, true, true},
		{"always as root", ElevateAlways, true, false, false},
		{"never", ElevateNever, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			direct := &recordingFileOp{}
			elevated := &recordingFileOp{}

			op := NewAutoFileOp(tt.mode, direct, elevated)
			op.isRoot = func() bool { return tt.root }
			op.canWrite = func(dir string) bool {
				assert.Equal(t, "/usr/local/bin", dir)
				return tt.writable
			}

			require.NoError(t, op.Copy(ctx, "/src/demo", "/usr/local/bin/demo"))
			require.NoError(t, op.Remove(ctx, "/usr/local/bin/demo"))

			chosen, other := direct, elevated
			if tt.wantElevated {
				chosen, other = elevated, direct
			}

			assert.Equal(t, []m.Path{"/usr/local/bin/demo"}, chosen.copies)
			assert.Equal(t, []m.Path{"/usr/local/bin/demo"}, chosen.removes)
			assert.Empty(t, other.copies)
			assert.Empty(t, other.removes)
		})
	}
}

func TestAutoFileOp_ElevatesAfterDirectPermissionDenied(t *testing.T) {
	ctx := context.Background()
	path := m.Path("/tmp/shared/demo")

	direct := &recordingFileOp{
		copyErr:   &m.InstallError{Kind: m.InstallPermissionDenied, Path: path, Err: os.ErrPermission},
		removeErr: &m.UninstallError{Kind: m.UninstallPermissionDenied, Path: path, Err: os.ErrPermission},
	}
	elevated := &recordingFileOp{}

	op := NewAutoFileOp(ElevateAuto, direct, elevated)
	op.isRoot = func() bool { return false }
	op.canWrite = func(string) bool { return true }

	require.NoError(t, op.Copy(ctx, "/src/demo", path))
	require.NoError(t, op.Remove(ctx, path))

	assert.Equal(t, []m.Path{path}, direct.copies)
	assert.Equal(t, []m.Path{path}, direct.removes)
	assert.Equal(t, []m.Path{path}, elevated.copies)
	assert.Equal(t, []m.Path{path}, elevated.removes)
}

func TestAutoFileOp_NoRetry(t *testing.T) {
	path := m.Path("/tmp/shared/demo")
	denied := &m.InstallError{Kind: m.InstallPermissionDenied, Path: path}

	tests := []struct {
		name     string
		mode     ElevationMode
		root     bool
		copyErr  error
		wantKind m.InstallErrorKind
	}{
		{"never mode", ElevateNever, false, denied, m.InstallPermissionDenied},
		{"as root", ElevateAuto, true, denied, m.InstallPermissionDenied},
		{"other failure", ElevateAuto, false, &m.InstallError{Kind: m.InstallTargetUnavailable, Path: path}, m.InstallTargetUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			direct := &recordingFileOp{copyErr: tt.copyErr}
			elevated := &recordingFileOp{}

			op := NewAutoFileOp(tt.mode, direct, elevated)
			op.isRoot = func() bool { return tt.root }
			op.canWrite = func(string) bool { return true }

			err := op.Copy(context.Background(), "/src/demo", path)

			var installErr *m.InstallError
			require.ErrorAs(t, err, &installErr)
			assert.Equal(t, tt.wantKind, installErr.Kind)
			assert.Empty(t, elevated.copies)
		})
	}
}
