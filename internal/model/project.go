// Package model defines the data structures shared by the build and install lifecycle.
package model

import (
	"os"
	"path/filepath"
)

// DefaultProjectName is the project name used when neither the manifest nor
// the configuration provides one. It can be replaced at link time:
//
//	go build -ldflags "-X ammo.dev/pkg/ammo/internal/model.DefaultProjectName=demo"
var DefaultProjectName = "ammo"

// DefaultInstallDir is the system binary directory binaries are installed into.
const DefaultInstallDir = "/usr/local/bin"

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// Join appends elements to the path.
func (p Path) Join(elem ...string) Path {
	return Path(filepath.Join(append([]string{string(p)}, elem...)...))
}

// ProjectIdentity names the project being built. The artifact filename and the
// installed filename are both derived from Name.
type ProjectIdentity struct {
	Name string
}

// Project is a resolved project: the directory the toolchain runs in and the
// identity its binary is named after.
type Project struct {
	Root     Path
	Identity ProjectIdentity
}

// InstallTarget is the directory binaries are installed into.
type InstallTarget struct {
	Directory Path
}

// BinaryPath returns the path the named binary occupies inside the target.
func (t InstallTarget) BinaryPath(name string) Path {
	return t.Directory.Join(name)
}

// BuildArtifact is the toolchain output consumed by the installer.
type BuildArtifact struct {
	SourcePath Path
	Exists     bool
}

// InstalledBinary describes a binary present in the install target.
type InstalledBinary struct {
	Path   Path
	Size   int64
	Mode   os.FileMode
	SHA256 string
}

// UninstallReport describes the outcome of an uninstall. Removed is false when
// the binary was already absent.
type UninstallReport struct {
	Path    Path
	Removed bool
}
