package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ammo.dev/pkg/ammo/internal/adapter"
	m "ammo.dev/pkg/ammo/internal/model"
)

// ProjectSettings are the user supplied inputs for locating a project.
type ProjectSettings struct {
	// Root is where the manifest search starts. Empty means the working directory.
	Root m.Path
	// Name overrides the name declared by the manifest.
	Name string
	// Manifest is the file marking the project root.
	Manifest string
}

// ResolveProject finds the project root and its identity. The name comes from
// settings first, then the manifest, then model.DefaultProjectName. When no
// manifest exists the start directory is used as the root.
func ResolveProject(ctx context.Context, fs adapter.ProjectFSAdapter, settings ProjectSettings) (m.Project, error) {
	start := settings.Root
	if start == "" {
		start = "."
	}

	manifest := settings.Manifest
	if manifest == "" {
		manifest = adapter.DefaultManifest
	}

	manifestName := ""

	root, err := fs.FindProjectRoot(ctx, start, manifest)

	switch {
	case errors.Is(err, adapter.ErrManifestNotFound):
		slog.Debug("No manifest found, using start directory", "start", start, "manifest", manifest)

		root, err = fs.AbsPath(ctx, start)
		if err != nil {
			return m.Project{}, fmt.Errorf("resolve project root: %w", err)
		}
	case err != nil:
		return m.Project{}, fmt.Errorf("resolve project root: %w", err)
	default:
		manifestName, err = fs.ReadManifestName(ctx, root.Join(manifest))
		if err != nil {
			return m.Project{}, &m.ConfigError{Kind: m.InvalidSetting, Detail: err.Error()}
		}
	}

	name := m.DefaultProjectName
	if manifestName != "" {
		name = manifestName
	}

	if settings.Name != "" {
		name = settings.Name
	}

	identity := m.ProjectIdentity{Name: name}
	if err := ValidateProjectName(identity.Name); err != nil {
		return m.Project{}, err
	}

	slog.Info("Resolved project", "root", root, "name", identity.Name)

	return m.Project{Root: root, Identity: identity}, nil
}
