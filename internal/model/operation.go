package model

import "fmt"

// Operation names a lifecycle operation the orchestrator can run.
type Operation string

const (
	// OperationBuild compiles the project.
	OperationBuild Operation = "build"
	// OperationInstall compiles the project and copies the artifact into the install target.
	OperationInstall Operation = "install"
	// OperationUninstall removes the installed binary.
	OperationUninstall Operation = "uninstall"
	// OperationWatch rebuilds the project whenever its sources change.
	OperationWatch Operation = "watch"
)

// Operations lists every operation in display order.
var Operations = []Operation{OperationBuild, OperationInstall, OperationUninstall, OperationWatch}

// ParseOperation converts a user supplied name into an Operation.
func ParseOperation(name string) (Operation, error) {
	if name == "" {
		return "", &ConfigError{Kind: MissingOperation}
	}

	for _, op := range Operations {
		if string(op) == name {
			return op, nil
		}
	}

	return "", &ConfigError{Kind: UnknownOperation, Detail: fmt.Sprintf("%q", name)}
}

// Stage identifies the step an operation is currently in.
type Stage int

const (
	// StageBuilding is the toolchain invocation.
	StageBuilding Stage = iota
	// StageInstalling is the privileged copy.
	StageInstalling
	// StageUninstalling is the privileged removal.
	StageUninstalling
	// StageWatching is the idle state between rebuilds in watch mode.
	StageWatching
)

func (s Stage) String() string {
	switch s {
	case StageBuilding:
		return "building"
	case StageInstalling:
		return "installing"
	case StageUninstalling:
		return "uninstalling"
	case StageWatching:
		return "watching"
	default:
		return "unknown"
	}
}
