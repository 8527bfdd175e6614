package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/swatchctl"
	projectConfigDir = ".swatchctl"
	configFileName   = "config.yaml"
)

// LoadConfig loads the swatchctl configuration by layering default, user, and project settings.
func LoadConfig() (SwatchConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// user config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		config, err = overlayFromFile(config, userConfigPath)
		if err != nil {
			return SwatchConfig{}, err
		}
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else {
		config, err = overlayFromFile(config, projectConfigPath)
		if err != nil {
			return SwatchConfig{}, err
		}
	}

	if err := config.Validate(); err != nil {
		return SwatchConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// LoadConfigFromPath loads defaults overlaid with a single config file,
// skipping the user and project layers. The file must exist.
func LoadConfigFromPath(path string) (SwatchConfig, error) {
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return SwatchConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}

	config := mergeConfigs(GetDefaultConfig(), overlay)
	if err := config.Validate(); err != nil {
		return SwatchConfig{}, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func overlayFromFile(base SwatchConfig, path string) (SwatchConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return SwatchConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return mergeConfigs(base, overlay), nil
}

// loadConfigFromFile loads a SwatchConfig from a YAML file.
func loadConfigFromFile(filePath string) (SwatchConfig, error) {
	var config SwatchConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return SwatchConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return SwatchConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Only fields set
// in overlay replace base values.
func mergeConfigs(base, overlay SwatchConfig) SwatchConfig {
	merged := base

	if overlay.InitialColor != "" {
		merged.InitialColor = overlay.InitialColor
	}
	if overlay.AdjustStep != 0 {
		merged.AdjustStep = overlay.AdjustStep
	}
	if overlay.Theme != "" {
		merged.Theme = overlay.Theme
	}
	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
