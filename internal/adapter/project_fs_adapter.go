// Package adapter contains the infrastructure adapters for the ammo CLI: the
// build toolchain, the privileged install target and the project filesystem.
package adapter

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	m "ammo.dev/pkg/ammo/internal/model"
)

// DefaultManifest is the file that marks a project root.
const DefaultManifest = "Cargo.toml"

// ErrManifestNotFound is returned by FindProjectRoot when no ancestor
// directory contains the manifest.
var ErrManifestNotFound = errors.New("project manifest not found")

// ProjectFSAdapter abstracts the read-only filesystem operations the domain
// layer performs on the user's project and install target. It hides direct
// `os` access so the lifecycle logic can be tested without touching the disk.
type ProjectFSAdapter interface {
	// Walk traverses root recursively. Returning filepath.SkipDir from fn for
	// a directory skips it.
	Walk(ctx context.Context, root m.Path, fn FilepathWalkFunc) error

	// HashFile returns the SHA-256 hex digest of the file at path.
	HashFile(ctx context.Context, path m.Path) (string, error)

	// FileInfo follows symlinks, LinkInfo does not.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)
	LinkInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// FindProjectRoot searches for the manifest walking up the directory tree
	// from start. It returns ErrManifestNotFound when none exists.
	FindProjectRoot(ctx context.Context, start m.Path, manifest string) (m.Path, error)

	// ReadManifestName returns the binary name declared by a Cargo manifest.
	ReadManifestName(ctx context.Context, manifestPath m.Path) (string, error)

	// AbsPath returns an absolute, cleaned version of path.
	AbsPath(ctx context.Context, path m.Path) (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalProjectFSAdapter implements ProjectFSAdapter on the local disk.
type LocalProjectFSAdapter struct{}

// NewLocalProjectFSAdapter constructs a LocalProjectFSAdapter.
func NewLocalProjectFSAdapter() *LocalProjectFSAdapter {
	return &LocalProjectFSAdapter{}
}

// Walk iterates over every file and directory under root.
func (a *LocalProjectFSAdapter) Walk(ctx context.Context, root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		return fn(path, info, err)
	})
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalProjectFSAdapter) HashFile(_ context.Context, path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalProjectFSAdapter) FileInfo(_ context.Context, path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// LinkInfo returns os.FileInfo metadata without following a final symlink.
func (a *LocalProjectFSAdapter) LinkInfo(_ context.Context, path m.Path) (os.FileInfo, error) {
	return os.Lstat(string(path))
}

// FindProjectRoot searches for the manifest walking up the directory tree.
func (a *LocalProjectFSAdapter) FindProjectRoot(ctx context.Context, start m.Path, manifest string) (m.Path, error) {
	if manifest == "" {
		manifest = DefaultManifest
	}

	dir, err := a.AbsPath(ctx, start)
	if err != nil {
		return "", err
	}

	if info, err := os.Stat(string(dir)); err == nil && !info.IsDir() {
		dir = m.Path(filepath.Dir(string(dir)))
	}

	for {
		if _, err := os.Stat(filepath.Join(string(dir), manifest)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(string(dir))
		if parent == string(dir) {
			return "", fmt.Errorf("%w: no %s in %s or any parent directory", ErrManifestNotFound, manifest, start)
		}

		dir = m.Path(parent)
	}
}

type cargoManifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Bin []struct {
		Name string `toml:"name"`
	} `toml:"bin"`
}

// ReadManifestName returns the first [[bin]] name, or the [package] name when
// the manifest declares no explicit binary targets.
func (a *LocalProjectFSAdapter) ReadManifestName(_ context.Context, manifestPath m.Path) (string, error) {
	var manifest cargoManifest
	if _, err := toml.DecodeFile(string(manifestPath), &manifest); err != nil {
		return "", fmt.Errorf("parse %s: %w", manifestPath, err)
	}

	for _, bin := range manifest.Bin {
		if name := strings.TrimSpace(bin.Name); name != "" {
			return name, nil
		}
	}

	return strings.TrimSpace(manifest.Package.Name), nil
}

// AbsPath returns an absolute, cleaned version of path.
func (a *LocalProjectFSAdapter) AbsPath(_ context.Context, path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}
