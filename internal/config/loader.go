package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

const (
	userConfigDir  = ".config/podctl"
	configFileName = "config.yaml"
)

// LoadConfig loads the podctl configuration by layering an optional user
// config file over the built-in defaults. A missing file is not an error;
// an unreadable or malformed file is.
func LoadConfig() (PodctlConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional; continue with defaults.
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
		return config, nil
	}

	if _, err := os.Stat(userConfigPath); os.IsNotExist(err) {
		return config, nil
	}

	userConfig, err := loadConfigFromFile(userConfigPath)
	if err != nil {
		return PodctlConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}
	return mergeConfigs(config, userConfig), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

// loadConfigFromFile loads a PodctlConfig from a YAML file.
func loadConfigFromFile(filePath string) (PodctlConfig, error) {
	var config PodctlConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return PodctlConfig{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return PodctlConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay PodctlConfig) PodctlConfig {
	merged := base

	if overlay.GlobalSettings.LogLevel != "" {
		merged.GlobalSettings.LogLevel = overlay.GlobalSettings.LogLevel
	}
	if overlay.Transfer.ChunkSize > 0 {
		merged.Transfer.ChunkSize = overlay.Transfer.ChunkSize
	}
	if overlay.Transfer.PollInterval > 0 {
		merged.Transfer.PollInterval = overlay.Transfer.PollInterval
	}

	return merged
}
