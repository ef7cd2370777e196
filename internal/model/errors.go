package model

import (
	"fmt"
	"strings"
)

// ConfigErrorKind classifies invalid invocations and settings.
type ConfigErrorKind int

const (
	// MissingOperation means no operation was named on the command line.
	MissingOperation ConfigErrorKind = iota
	// UnknownOperation means the named operation does not exist.
	UnknownOperation
	// EmptyProjectName means the project identity has no name.
	EmptyProjectName
	// InvalidProjectName means the name is not a single path element.
	InvalidProjectName
	// RelativeInstallTarget means the install directory is empty or relative.
	RelativeInstallTarget
	// InvalidLayout means the artifact layout is empty, absolute or escapes the project root.
	InvalidLayout
	// InvalidSetting covers any other malformed flag or configuration value.
	InvalidSetting
)

func (k ConfigErrorKind) String() string {
	switch k {
	case MissingOperation:
		return "missing operation"
	case UnknownOperation:
		return "unknown operation"
	case EmptyProjectName:
		return "empty project name"
	case InvalidProjectName:
		return "invalid project name"
	case RelativeInstallTarget:
		return "install target must be an absolute path"
	case InvalidLayout:
		return "invalid artifact layout"
	case InvalidSetting:
		return "invalid setting"
	default:
		return "configuration error"
	}
}

// ConfigError reports a bad or missing invocation argument or setting.
type ConfigError struct {
	Kind   ConfigErrorKind
	Detail string
}

func (e *ConfigError) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// BuildError reports a toolchain failure. ExitCode is -1 when the process
// could not be launched or did not exit normally.
type BuildError struct {
	ExitCode   int
	StderrTail string
	Err        error
}

func (e *BuildError) Error() string {
	var b strings.Builder

	if e.ExitCode >= 0 {
		fmt.Fprintf(&b, "build failed with exit status %d", e.ExitCode)
	} else {
		b.WriteString("build failed")
	}

	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}

	return b.String()
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// InstallErrorKind classifies copy failures.
type InstallErrorKind int

const (
	// InstallPermissionDenied means elevation was denied or cancelled.
	InstallPermissionDenied InstallErrorKind = iota
	// InstallTargetUnavailable means the target directory is missing or not writable.
	InstallTargetUnavailable
	// InstallSourceMissing means the build artifact is absent or unreadable.
	InstallSourceMissing
)

func (k InstallErrorKind) String() string {
	switch k {
	case InstallPermissionDenied:
		return "permission denied"
	case InstallTargetUnavailable:
		return "target unavailable"
	case InstallSourceMissing:
		return "source missing"
	default:
		return "install failed"
	}
}

// InstallError reports a failed privileged copy.
type InstallError struct {
	Kind InstallErrorKind
	Path Path
	Err  error
}

func (e *InstallError) Error() string {
	msg := fmt.Sprintf("install %s: %s", e.Path, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *InstallError) Unwrap() error {
	return e.Err
}

// UninstallErrorKind classifies removal failures.
type UninstallErrorKind int

const (
	// UninstallPermissionDenied means elevation was denied or cancelled.
	UninstallPermissionDenied UninstallErrorKind = iota
	// UninstallUnexpectedEntry means the path exists but is not a regular file or symlink.
	UninstallUnexpectedEntry
	// UninstallRemoveFailed covers any other filesystem error.
	UninstallRemoveFailed
)

func (k UninstallErrorKind) String() string {
	switch k {
	case UninstallPermissionDenied:
		return "permission denied"
	case UninstallUnexpectedEntry:
		return "unexpected entry"
	case UninstallRemoveFailed:
		return "remove failed"
	default:
		return "uninstall failed"
	}
}

// UninstallError reports a failed removal.
type UninstallError struct {
	Kind UninstallErrorKind
	Path Path
	Err  error
}

func (e *UninstallError) Error() string {
	msg := fmt.Sprintf("uninstall %s: %s", e.Path, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *UninstallError) Unwrap() error {
	return e.Err
}
