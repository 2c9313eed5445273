package config

import (
	"time"
)

// LogboardConfig is the top-level configuration structure for logboard.
type LogboardConfig struct {
	Notification NotificationConfig `yaml:"notification"`
	Sink         SinkConfig         `yaml:"sink"`
	Board        BoardConfig        `yaml:"board"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// NotificationConfig controls the transient notification banner.
type NotificationConfig struct {
	HideAfter string `yaml:"hideAfter,omitempty"` // How long a notification stays visible, e.g. "5s", "1m30s"
}

// HideAfterDuration returns the parsed hideAfter interval. Invalid or
// missing values fall back to the default.
func (c NotificationConfig) HideAfterDuration() time.Duration {
	d, err := time.ParseDuration(c.HideAfter)
	if err != nil || d <= 0 {
		return DefaultHideAfter
	}
	return d
}

// SinkConfig selects where appended log messages are forwarded.
type SinkConfig struct {
	Kind string `yaml:"kind,omitempty" validate:"omitempty,oneof=nop writer structured"` // "nop", "writer", or "structured"
	Path string `yaml:"path,omitempty"`                                                  // Target file for writer/structured sinks; stderr when empty
}

// BoardConfig tunes the interactive board.
type BoardConfig struct {
	ActivityLines int `yaml:"activityLines,omitempty" validate:"min=0,max=1000"` // Activity panel lines kept in memory
}

// LoggingConfig controls the diagnostics layer.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"` // Minimum level shown
}
