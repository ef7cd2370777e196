package domain

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"ammo.dev/pkg/ammo/internal/adapter"
	m "ammo.dev/pkg/ammo/internal/model"
)

// Builder compiles the project and reports where the artifact landed.
type Builder interface {
	Build(ctx context.Context) (m.BuildArtifact, error)
}

// BuilderOption configures a Builder.
type BuilderOption func(*builder)

// WithBuildOutput streams toolchain output to the given writers.
func WithBuildOutput(stdout, stderr io.Writer) BuilderOption {
	return func(b *builder) {
		b.stdout = stdout
		b.stderr = stderr
	}
}

// WithBuildCommand replaces adapter.DefaultBuildCommand.
func WithBuildCommand(command []string) BuilderOption {
	return func(b *builder) {
		if len(command) > 0 {
			b.command = command
		}
	}
}

type builder struct {
	adapter.ToolchainAdapter
	adapter.ProjectFSAdapter
	ArtifactLocator

	project m.Project
	command []string
	stdout  io.Writer
	stderr  io.Writer
}

// NewBuilder constructs a Builder for project.
func NewBuilder(
	toolchain adapter.ToolchainAdapter,
	fsAdapter adapter.ProjectFSAdapter,
	locator ArtifactLocator,
	project m.Project,
	options ...BuilderOption,
) Builder {
	b := &builder{
		ToolchainAdapter: toolchain,
		ProjectFSAdapter: fsAdapter,
		ArtifactLocator:  locator,
		project:          project,
		command:          adapter.DefaultBuildCommand,
	}

	for _, opt := range options {
		opt(b)
	}

	return b
}

// Build runs the toolchain in the project root. A successful run that leaves
// no regular file at the located path is still a *model.BuildError.
func (b *builder) Build(ctx context.Context) (m.BuildArtifact, error) {
	source, err := b.Resolve(b.project.Root, b.project.Identity)
	if err != nil {
		return m.BuildArtifact{}, err
	}

	artifact := m.BuildArtifact{SourcePath: source}

	slog.Info("Building project", "root", b.project.Root, "command", b.command)

	err = b.Run(ctx, adapter.BuildRequest{
		Dir:     b.project.Root,
		Command: b.command,
		Stdout:  b.stdout,
		Stderr:  b.stderr,
	})
	if err != nil {
		return artifact, err
	}

	info, err := b.FileInfo(ctx, source)
	if err != nil || !info.Mode().IsRegular() {
		slog.Error("Toolchain succeeded without producing the artifact", "path", source)

		return artifact, &m.BuildError{
			ExitCode: 0,
			Err:      fmt.Errorf("no artifact at %s", source),
		}
	}

	artifact.Exists = true

	slog.Info("Build finished", "artifact", source, "size", info.Size())

	return artifact, nil
}
