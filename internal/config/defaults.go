package config

import (
	"time"
)

// Defaults applied before any configuration file is read.
const (
	DefaultHideAfter     = 5 * time.Second
	DefaultActivityLines = 200
)

// GetDefaultConfig returns the default configuration for logboard.
func GetDefaultConfig() LogboardConfig {
	return LogboardConfig{
		Notification: NotificationConfig{
			HideAfter: DefaultHideAfter.String(),
		},
		Sink: SinkConfig{
			Kind: "nop",
		},
		Board: BoardConfig{
			ActivityLines: DefaultActivityLines,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
