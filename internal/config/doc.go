// Package config provides configuration management for logboard.
//
// This package implements a layered configuration system that allows users to
// customize logboard's behavior through YAML files. Configuration is loaded
// from multiple sources and merged in a specific order, with later sources
// overriding earlier ones.
//
// # Configuration Layers
//
// Configuration is loaded and merged in the following order:
//
//  1. Default Configuration (embedded in binary)
//     - Provides sensible defaults for all settings
//     - Ensures logboard works out-of-the-box
//
//  2. User Configuration (~/.config/logboard/config.yaml)
//     - User-specific settings that apply everywhere
//     - Useful for personal preferences
//
//  3. Project Configuration (./.logboard/config.yaml)
//     - Settings for the current directory only
//     - Allows teams to share configuration via version control
//
// # Configuration Structure
//
// The configuration file uses YAML format with the following sections:
//
//	notification:
//	  hideAfter: "5s"      # how long a notification stays visible
//
//	sink:
//	  kind: "writer"       # "nop", "writer", or "structured"
//	  path: "board.log"    # target file; stderr when empty
//
//	board:
//	  activityLines: 200   # activity panel lines kept in memory
//
//	logging:
//	  level: "info"        # "debug", "info", "warn", or "error"
//
// # Validation
//
// The merged configuration is validated before use: sink kinds and log
// levels must be known values, and hideAfter must parse as a positive Go
// duration. Validation failures abort startup with a descriptive error.
//
// # Usage Example
//
//	cfg, err := config.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	vm := viewmodel.New(sink, viewmodel.WithHideAfter(cfg.Notification.HideAfterDuration()))
package config
