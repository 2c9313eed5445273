package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/logboard"
	projectConfigDir = ".logboard"
	configFileName   = "config.yaml"
)

// LoadConfig loads the logboard configuration by layering default, user, and
// project settings, then validates the merged result.
func LoadConfig() (LogboardConfig, error) {
	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. Determine user-specific configuration path
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// Log this error but don't fail; user config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
			userConfig, err := loadConfigFromFile(userConfigPath)
			if err != nil {
				return LogboardConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
			}
			config = mergeConfigs(config, userConfig)
		}
	}

	// 3. Determine project-specific configuration path
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		// Log this error but don't fail; project config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else {
		if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
			projectConfig, err := loadConfigFromFile(projectConfigPath)
			if err != nil {
				return LogboardConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
			}
			config = mergeConfigs(config, projectConfig)
		}
	}

	if err := Validate(config); err != nil {
		return LogboardConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a LogboardConfig from a YAML file.
func loadConfigFromFile(filePath string) (LogboardConfig, error) {
	var config LogboardConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return LogboardConfig{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return LogboardConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay LogboardConfig) LogboardConfig {
	merged := base

	if overlay.Notification.HideAfter != "" {
		merged.Notification.HideAfter = overlay.Notification.HideAfter
	}
	if overlay.Sink.Kind != "" {
		merged.Sink.Kind = overlay.Sink.Kind
	}
	if overlay.Sink.Path != "" {
		merged.Sink.Path = overlay.Sink.Path
	}
	if overlay.Board.ActivityLines != 0 {
		merged.Board.ActivityLines = overlay.Board.ActivityLines
	}
	if overlay.Logging.Level != "" {
		merged.Logging.Level = overlay.Logging.Level
	}

	return merged
}

// Validate checks the configuration against its struct tags plus the checks
// the tags cannot express.
func Validate(config LogboardConfig) error {
	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if config.Notification.HideAfter != "" {
		d, err := time.ParseDuration(config.Notification.HideAfter)
		if err != nil {
			return fmt.Errorf("notification.hideAfter: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("notification.hideAfter must be positive, got %s", d)
		}
	}

	return nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
