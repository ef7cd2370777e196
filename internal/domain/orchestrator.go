package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ammo.dev/pkg/ammo/internal/controller"
	m "ammo.dev/pkg/ammo/internal/model"
	"golang.org/x/sync/errgroup"
)

// Exit statuses reported for each failure class.
const (
	ExitSuccess         = 0
	ExitFailure         = 1
	ExitConfigError     = 2
	ExitBuildFailed     = 3
	ExitInstallFailed   = 4
	ExitUninstallFailed = 5
)

// Orchestrator sequences the lifecycle operations and reports each stage to
// the UI.
type Orchestrator interface {
	Build(ctx context.Context) (m.BuildArtifact, error)
	// Install builds first and copies only when the build succeeded.
	Install(ctx context.Context) (m.InstalledBinary, error)
	Uninstall(ctx context.Context) (m.UninstallReport, error)
	Watch(ctx context.Context) error
	// Run starts the UI, performs op and waits for the UI to finish.
	Run(ctx context.Context, op m.Operation) error
}

// OrchestratorSettings holds the resolved inputs shared by all operations.
type OrchestratorSettings struct {
	Project m.Project
	Target  m.InstallTarget
	// WatchInstall installs after every successful rebuild in watch mode.
	WatchInstall bool
}

type orchestrator struct {
	controller.UI
	Builder
	Installer
	Uninstaller
	Watcher

	settings OrchestratorSettings
}

// NewOrchestrator constructs an Orchestrator. watcher may be nil when the
// watch operation is never run.
func NewOrchestrator(
	ui controller.UI,
	builder Builder,
	installer Installer,
	uninstaller Uninstaller,
	watcher Watcher,
	settings OrchestratorSettings,
) Orchestrator {
	return &orchestrator{
		UI:          ui,
		Builder:     builder,
		Installer:   installer,
		Uninstaller: uninstaller,
		Watcher:     watcher,
		settings:    settings,
	}
}

func (o *orchestrator) Build(ctx context.Context) (m.BuildArtifact, error) {
	o.DisplayStage(ctx, m.StageBuilding, o.settings.Project.Identity)

	artifact, err := o.Builder.Build(ctx)
	o.DisplayBuildResult(ctx, artifact, err)

	return artifact, err
}

func (o *orchestrator) Install(ctx context.Context) (m.InstalledBinary, error) {
	artifact, err := o.Build(ctx)
	if err != nil {
		return m.InstalledBinary{}, err
	}

	o.DisplayStage(ctx, m.StageInstalling, o.settings.Project.Identity)

	binary, err := o.Installer.Install(ctx, artifact, o.settings.Target)
	o.DisplayInstallResult(ctx, binary, err)

	return binary, err
}

func (o *orchestrator) Uninstall(ctx context.Context) (m.UninstallReport, error) {
	o.DisplayStage(ctx, m.StageUninstalling, o.settings.Project.Identity)

	report, err := o.Uninstaller.Uninstall(ctx, o.settings.Target, o.settings.Project.Identity.Name)
	o.DisplayUninstallResult(ctx, report, err)

	return report, err
}

func (o *orchestrator) Watch(ctx context.Context) error {
	if o.Watcher == nil {
		return errors.New("watch mode is not configured")
	}

	cycle := func(ctx context.Context) error {
		if o.settings.WatchInstall {
			_, err := o.Install(ctx)
			return err
		}

		_, err := o.Build(ctx)

		return err
	}

	return o.Watcher.Watch(ctx, cycle)
}

func (o *orchestrator) Run(ctx context.Context, op m.Operation) error {
	options := []controller.StartOption{controller.WithProject(o.settings.Project)}
	if op == m.OperationWatch {
		options = append(options, controller.WithWatchMode())
	}

	if err := o.Start(ctx, options...); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return fmt.Errorf("start ui: %w", err)
	}

	err := o.run(ctx, op)

	o.Close(ctx)

	return err
}

func (o *orchestrator) run(ctx context.Context, op m.Operation) error {
	switch op {
	case m.OperationBuild:
		_, err := o.Build(ctx)
		return err
	case m.OperationInstall:
		_, err := o.Install(ctx)
		return err
	case m.OperationUninstall:
		_, err := o.Uninstall(ctx)
		return err
	case m.OperationWatch:
		return o.watchUntilClosed(ctx)
	default:
		_, err := m.ParseOperation(string(op))
		return err
	}
}

// watchUntilClosed runs the watcher alongside the UI. Whichever finishes
// first stops the other.
func (o *orchestrator) watchUntilClosed(ctx context.Context) error {
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, groupCtx := errgroup.WithContext(watchCtx)

	group.Go(func() error {
		defer cancel()
		return o.Watch(groupCtx)
	})

	group.Go(func() error {
		o.Wait(groupCtx)
		cancel()

		return nil
	})

	return group.Wait()
}

// ExitCode maps the outcome of op to the process exit status.
func ExitCode(op m.Operation, err error) int {
	if err == nil {
		return ExitSuccess
	}

	var cfgErr *m.ConfigError
	if errors.As(err, &cfgErr) {
		return ExitConfigError
	}

	var buildErr *m.BuildError

	switch op {
	case m.OperationBuild:
		if errors.As(err, &buildErr) {
			if buildErr.ExitCode > 0 {
				return buildErr.ExitCode
			}

			return ExitBuildFailed
		}
	case m.OperationInstall:
		if errors.As(err, &buildErr) {
			return ExitBuildFailed
		}

		var installErr *m.InstallError
		if errors.As(err, &installErr) {
			return ExitInstallFailed
		}
	case m.OperationUninstall:
		return ExitUninstallFailed
	}

	return ExitFailure
}
