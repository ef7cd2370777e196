package adapter

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"

	m "ammo.dev/pkg/ammo/internal/model"
	"ammo.dev/pkg/ammo/pkg"
	"golang.org/x/sync/errgroup"
)

// DefaultBuildCommand is the toolchain invocation for an optimized build.
var DefaultBuildCommand = []string{"cargo", "build", "--release"}

// BuildRequest describes a single toolchain invocation.
type BuildRequest struct {
	// Dir is the project root the toolchain runs in.
	Dir m.Path
	// Command is the program and its arguments.
	Command []string
	// Stdout and Stderr receive the toolchain output as it is produced.
	// Nil writers discard the stream.
	Stdout io.Writer
	Stderr io.Writer
}

// ToolchainAdapter abstracts the external build toolchain.
type ToolchainAdapter interface {
	// Run executes the toolchain and waits for it to exit. Any non-zero exit
	// or launch failure is returned as *model.BuildError.
	Run(ctx context.Context, req BuildRequest) error
}

// LocalToolchainAdapter runs the toolchain as a child process using os/exec.
type LocalToolchainAdapter struct {
	tailSize int
	getenv   func(string) string
}

// NewLocalToolchainAdapter constructs a LocalToolchainAdapter keeping the
// default amount of trailing stderr for error reports.
func NewLocalToolchainAdapter() *LocalToolchainAdapter {
	return &LocalToolchainAdapter{
		tailSize: pkg.DefaultTailSize,
		getenv:   lookupEnv,
	}
}

// Run executes the toolchain in req.Dir, streaming its output.
func (a *LocalToolchainAdapter) Run(ctx context.Context, req BuildRequest) error {
	if len(req.Command) == 0 {
		return &m.ConfigError{Kind: m.InvalidSetting, Detail: "build command is empty"}
	}

	cmd := exec.CommandContext(ctx, req.Command[0], req.Command[1:]...)
	cmd.Dir = string(req.Dir)

	if err := dropPrivileges(cmd, a.getenv); err != nil {
		slog.Error("Failed to drop privileges for build", "error", err)
		return &m.BuildError{ExitCode: -1, Err: err}
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return &m.BuildError{ExitCode: -1, Err: err}
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return &m.BuildError{ExitCode: -1, Err: err}
	}

	slog.Info("Starting build", "dir", req.Dir, "command", req.Command)

	if err := cmd.Start(); err != nil {
		slog.Error("Failed to start toolchain", "command", req.Command, "error", err)
		return &m.BuildError{ExitCode: -1, Err: err}
	}

	tail := pkg.NewTail(a.tailSize)

	var group errgroup.Group

	group.Go(func() error {
		return drain(orDiscard(req.Stdout), stdout)
	})
	group.Go(func() error {
		return drain(io.MultiWriter(tail, orDiscard(req.Stderr)), stderr)
	})

	if err := group.Wait(); err != nil {
		slog.Warn("Failed to forward toolchain output", "error", err)
	}

	waitErr := cmd.Wait()
	if waitErr == nil {
		slog.Info("Build finished", "dir", req.Dir)
		return nil
	}

	buildErr := &m.BuildError{ExitCode: -1, StderrTail: tail.String(), Err: waitErr}

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		buildErr.ExitCode = exitErr.ExitCode()
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		buildErr.ExitCode = -1
		buildErr.Err = ctxErr
	}

	slog.Error("Build failed", "dir", req.Dir, "exitCode", buildErr.ExitCode, "error", waitErr)

	return buildErr
}

// drain copies src into dst. If dst fails, src keeps being read so the child
// never blocks on a full pipe.
func drain(dst io.Writer, src io.Reader) error {
	_, err := io.Copy(dst, src)
	if err != nil {
		_, _ = io.Copy(io.Discard, src)
	}

	return err
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}

	return w
}
