package cmd

import (
	"context"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ammo.dev/pkg/ammo/internal/adapter"
	"ammo.dev/pkg/ammo/internal/controller"
	"ammo.dev/pkg/ammo/internal/domain"
	m "ammo.dev/pkg/ammo/internal/model"
)

// runOperation runs op until it finishes or the process is interrupted and
// attaches the exit status for op to any failure.
func runOperation(cmd *cobra.Command, op m.Operation) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := executeOperation(ctx, cmd, op)
	if err != nil {
		return &exitError{code: domain.ExitCode(op, err), err: err}
	}

	return nil
}

func executeOperation(ctx context.Context, cmd *cobra.Command, op m.Operation) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	orchestrator, err := newOrchestrator(ctx, cmd, op, cfg)
	if err != nil {
		return err
	}

	return orchestrator.Run(ctx, op)
}

// newOrchestrator resolves the project and wires the adapters for op.
func newOrchestrator(ctx context.Context, cmd *cobra.Command, op m.Operation, cfg settings) (domain.Orchestrator, error) {
	fsAdapter := adapter.NewLocalProjectFSAdapter()

	project, err := domain.ResolveProject(ctx, fsAdapter, cfg.Project)
	if err != nil {
		return nil, err
	}

	// The elevation prompt needs the plain terminal, so watch --install
	// stays on the line based UI.
	interactive := op == m.OperationWatch && !cfg.WatchInstall
	ui := controller.NewUI(cmd, interactive)

	stdout, stderr := ui.BuildOutput()
	builder := domain.NewBuilder(
		adapter.NewLocalToolchainAdapter(),
		fsAdapter,
		domain.NewArtifactLocator(cfg.ArtifactLayout),
		project,
		domain.WithBuildCommand(cfg.BuildCommand),
		domain.WithBuildOutput(stdout, stderr),
	)

	fileOp := adapter.NewAutoFileOp(cfg.Elevation, adapter.NewLocalFileOp(), adapter.NewElevatedFileOp(cfg.Elevator))

	var watcher domain.Watcher
	if op == m.OperationWatch {
		// Each cycle logs, so a log file inside the project would retrigger it.
		watch := cfg.Watch
		watch.Ignore = append(slices.Clone(watch.Ignore), logIgnorePatterns(viper.GetString(logFilenameKey))...)

		watcher = domain.NewWatcher(adapter.NewFSNotifyWatchAdapter(fsAdapter), ui, project, watch)
	}

	return domain.NewOrchestrator(
		ui,
		builder,
		domain.NewInstaller(fileOp, fsAdapter, project.Identity),
		domain.NewUninstaller(fileOp, fsAdapter),
		watcher,
		domain.OrchestratorSettings{
			Project:      project,
			Target:       cfg.Target,
			WatchInstall: cfg.WatchInstall,
		},
	), nil
}
