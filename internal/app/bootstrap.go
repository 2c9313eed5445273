package app

import (
	"context"
	"fmt"
	"os"

	"logboard/internal/config"
	"logboard/internal/sink"
	"logboard/pkg/logging"
	"logboard/pkg/viewmodel"
)

const bootstrapSubsystem = "bootstrap"

// Application is the main application structure that bootstraps and runs logboard
type Application struct {
	config      *Config
	viewModel   *viewmodel.NotifyingViewModel
	sinkCleanup func()
}

// NewApplication loads configuration and wires the view model to its sink.
func NewApplication(cfg *Config) (*Application, error) {
	appLogLevel, err := logging.ParseLevel(cfg.LogLevelName())
	if err != nil {
		appLogLevel = logging.LevelInfo
	}

	// Board mode swaps this for the channel backend later; during bootstrap
	// everything goes to the console.
	logging.InitForCLI(appLogLevel, os.Stdout)

	fileCfg, err := config.LoadConfig()
	if err != nil {
		logging.Error(bootstrapSubsystem, err, "Failed to load configuration")
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.LogboardConfig = fileCfg

	sinkKind := fileCfg.Sink.Kind
	sinkPath := fileCfg.Sink.Path
	if cfg.SinkKind != "" {
		sinkKind = cfg.SinkKind
		sinkPath = cfg.SinkPath
	}

	logSink, cleanup, err := sink.Build(sinkKind, sinkPath)
	if err != nil {
		return nil, fmt.Errorf("failed to build log sink: %w", err)
	}

	vm := viewmodel.New(logSink,
		viewmodel.WithHideAfter(fileCfg.Notification.HideAfterDuration()))

	logging.Debug(bootstrapSubsystem, "Configuration loaded, sink %q", sinkKind)

	return &Application{
		config:      cfg,
		viewModel:   vm,
		sinkCleanup: cleanup,
	}, nil
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	defer a.shutdown()

	if a.config.Headless {
		return runFeedMode(ctx, a.config, a.viewModel)
	}
	return runBoardMode(ctx, a.config, a.viewModel)
}

// shutdown closes the view model before releasing the sink target, so no
// forwarded message can race the file close.
func (a *Application) shutdown() {
	a.viewModel.Close()
	if a.sinkCleanup != nil {
		a.sinkCleanup()
	}
}
