package app

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"logboard/internal/tui"
	"logboard/pkg/logging"
	"logboard/pkg/viewmodel"
)

const (
	boardSubsystem = "board"
	feedSubsystem  = "feed"
)

// runBoardMode executes the interactive terminal board.
func runBoardMode(ctx context.Context, cfg *Config, vm *viewmodel.NotifyingViewModel) error {
	logging.Info(boardSubsystem, "Starting board mode...")

	logLevel, err := logging.ParseLevel(cfg.LogLevelName())
	if err != nil {
		logLevel = logging.LevelInfo
	}

	// Switch logging to the channel backend feeding the activity panel.
	logChan := logging.InitForBoard(logLevel)
	defer logging.CloseBoardChannel()

	m := tui.InitialModel(vm, cfg.LogboardConfig.Board.ActivityLines, logChan)
	p := tui.NewProgram(m)

	if _, err := p.Run(); err != nil {
		logging.Error(boardSubsystem, err, "Error running board program")
		return err
	}
	logging.Info(boardSubsystem, "Board exited.")

	return nil
}

// runFeedMode pumps stdin into the view model without any UI. Lines starting
// with "!" raise notifications, everything else appends a log entry. A
// subscription mirrors notification transitions to stdout so scripts can
// watch them.
func runFeedMode(ctx context.Context, cfg *Config, vm *viewmodel.NotifyingViewModel) error {
	logging.Info(feedSubsystem, "Running in headless feed mode. Reading from stdin, Ctrl+C to stop.")

	sub := vm.Subscribe(viewmodel.PropertyNotificationVisible, func(property string) {
		if vm.IsNotificationVisible() {
			fmt.Printf("notification: %s\n", vm.GetNotificationMessage())
		} else {
			fmt.Println("notification cleared")
		}
	})
	defer vm.Unsubscribe(sub)

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		scanErr <- scanner.Err()
		close(lines)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-sigChan:
			logging.Info(feedSubsystem, "Received interrupt signal. Shutting down...")
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					logging.Error(feedSubsystem, err, "Reading stdin failed")
					return err
				}
				logging.Info(feedSubsystem, "Input drained, %d entries appended.",
					vm.GetMetrics().LogAppends)
				return nil
			}
			feedLine(vm, line)
		}
	}
}

// feedLine routes one input line to the view model. Blank lines are skipped.
func feedLine(vm *viewmodel.NotifyingViewModel, line string) {
	text := strings.TrimSpace(line)
	if text == "" {
		return
	}
	if strings.HasPrefix(text, "!") {
		if notification := strings.TrimSpace(strings.TrimPrefix(text, "!")); notification != "" {
			vm.ShowNotification(notification)
		}
		return
	}
	vm.UpdateLogDetails(text)
}
