package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	m "ammo.dev/pkg/ammo/internal/model"
)

// DefaultArtifactLayout is where an optimized cargo build leaves the binary,
// relative to the project root.
const DefaultArtifactLayout = "target/release/{name}"

const namePlaceholder = "{name}"

// ArtifactLocator maps a project identity to the path its build artifact occupies.
type ArtifactLocator interface {
	// Locate returns the artifact path relative to the project root. It does
	// no I/O.
	Locate(project m.ProjectIdentity) (m.Path, error)
	// Resolve joins the located path onto root.
	Resolve(root m.Path, project m.ProjectIdentity) (m.Path, error)
}

type artifactLocator struct {
	layout string
}

// NewArtifactLocator constructs an ArtifactLocator for the given layout
// template. An empty layout selects DefaultArtifactLayout.
func NewArtifactLocator(layout string) ArtifactLocator {
	if layout == "" {
		layout = DefaultArtifactLayout
	}

	return &artifactLocator{layout: layout}
}

func (l *artifactLocator) Locate(project m.ProjectIdentity) (m.Path, error) {
	if err := ValidateProjectName(project.Name); err != nil {
		return "", err
	}

	if err := validateLayout(l.layout); err != nil {
		return "", err
	}

	rel := filepath.Clean(filepath.FromSlash(strings.ReplaceAll(l.layout, namePlaceholder, project.Name)))

	return m.Path(rel), nil
}

func (l *artifactLocator) Resolve(root m.Path, project m.ProjectIdentity) (m.Path, error) {
	rel, err := l.Locate(project)
	if err != nil {
		return "", err
	}

	return root.Join(string(rel)), nil
}

func validateLayout(layout string) error {
	if strings.TrimSpace(layout) == "" {
		return &m.ConfigError{Kind: m.InvalidLayout, Detail: "layout is empty"}
	}

	native := filepath.FromSlash(layout)
	if filepath.IsAbs(native) || strings.HasPrefix(layout, "/") {
		return &m.ConfigError{Kind: m.InvalidLayout, Detail: fmt.Sprintf("%q is absolute", layout)}
	}

	clean := filepath.Clean(native)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return &m.ConfigError{Kind: m.InvalidLayout, Detail: fmt.Sprintf("%q does not name a file inside the project", layout)}
	}

	return nil
}

// ValidateProjectName checks that name can be used as a single filename in
// both the artifact directory and the install target.
func ValidateProjectName(name string) error {
	if name == "" {
		return &m.ConfigError{Kind: m.EmptyProjectName}
	}

	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return &m.ConfigError{Kind: m.InvalidProjectName, Detail: fmt.Sprintf("%q", name)}
	}

	return nil
}

// ValidateInstallTarget checks that the target directory is absolute.
func ValidateInstallTarget(target m.InstallTarget) error {
	if target.Directory == "" {
		return &m.ConfigError{Kind: m.RelativeInstallTarget, Detail: "install directory is empty"}
	}

	if !filepath.IsAbs(string(target.Directory)) {
		return &m.ConfigError{Kind: m.RelativeInstallTarget, Detail: fmt.Sprintf("%q", target.Directory)}
	}

	return nil
}
