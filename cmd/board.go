package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"logboard/internal/app"
)

// boardDebug enables verbose logging across the application.
var boardDebug bool

// boardSink selects the log sink, overriding the configured one.
var boardSink string

// boardSinkPath points the writer sink at a file, overriding the configured path.
var boardSinkPath string

// boardCmd defines the board command structure.
// This is the main command of logboard: it opens the interactive terminal
// board on top of the shared view model.
var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the interactive terminal board",
	Long: `Opens the interactive terminal board.

The board shows the append-only log transcript in a scrollable panel and
raises a banner whenever a notification is shown. A composer at the bottom
appends new lines; prefixing a line with '!' (or submitting with ctrl+n)
raises it as a notification instead. Notifications hide on their own after
the configured delay.

Appended lines are also forwarded to the configured log sink, so a file
can keep a persistent copy of everything the board has seen.

Configuration:
  logboard loads configuration from ~/.config/logboard/config.yaml when
  present. The --sink and --sink-path flags override the configured sink.`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

// runBoard is the main entry point for the board command
func runBoard(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(false, boardDebug)
	cfg.SinkKind = boardSink
	cfg.SinkPath = boardSinkPath

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

// init registers the board command and its flags with the root command.
func init() {
	rootCmd.AddCommand(boardCmd)

	boardCmd.Flags().BoolVar(&boardDebug, "debug", false, "Enable debug logging")
	boardCmd.Flags().StringVar(&boardSink, "sink", "", "Log sink for appended lines (nop or writer)")
	boardCmd.Flags().StringVar(&boardSinkPath, "sink-path", "", "File path for the writer sink")
}
