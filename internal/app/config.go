package app

import "logboard/internal/config"

// Config carries the process level options resolved from command line flags.
type Config struct {
	// Headless selects the stdin feed mode instead of the interactive board.
	Headless bool

	// Debug raises the log level to debug regardless of the configured level.
	Debug bool

	// SinkKind and SinkPath override the configured log sink when SinkKind is
	// non-empty.
	SinkKind string
	SinkPath string

	// LogboardConfig is populated by NewApplication from the layered files.
	LogboardConfig config.LogboardConfig
}

// NewConfig creates an application configuration from command line flags.
func NewConfig(headless, debug bool) *Config {
	return &Config{
		Headless: headless,
		Debug:    debug,
	}
}

// LogLevelName resolves the effective log level name, with the debug flag
// taking precedence over the configured level.
func (c *Config) LogLevelName() string {
	if c.Debug {
		return "debug"
	}
	return c.LogboardConfig.Logging.Level
}
