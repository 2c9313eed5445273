package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"logboard/internal/app"
)

// feedDebug enables verbose logging across the application.
var feedDebug bool

// feedSink selects the log sink, overriding the configured one.
var feedSink string

// feedSinkPath points the writer sink at a file, overriding the configured path.
var feedSinkPath string

// feedCmd defines the feed command structure.
// Feed mode drives the same view model as the board but without a terminal
// UI, which makes it usable from pipes and scripts.
var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Append lines from standard input without a terminal UI",
	Long: `Reads lines from standard input and appends each one to the log.

Lines prefixed with '!' are raised as notifications instead; the prefix is
stripped and the notification text is printed to standard output when it
appears and when it hides again. Blank lines are skipped.

Feed mode exits when its input is drained or on SIGINT/SIGTERM. Appended
lines are forwarded to the configured log sink, same as in board mode.

Example:
  kubectl logs -f deploy/api | logboard feed --sink writer --sink-path api.log`,
	Args: cobra.NoArgs,
	RunE: runFeed,
}

// runFeed is the main entry point for the feed command
func runFeed(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(true, feedDebug)
	cfg.SinkKind = feedSink
	cfg.SinkPath = feedSinkPath

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

// init registers the feed command and its flags with the root command.
func init() {
	rootCmd.AddCommand(feedCmd)

	feedCmd.Flags().BoolVar(&feedDebug, "debug", false, "Enable debug logging")
	feedCmd.Flags().StringVar(&feedSink, "sink", "", "Log sink for appended lines (nop or writer)")
	feedCmd.Flags().StringVar(&feedSinkPath, "sink-path", "", "File path for the writer sink")
}
