package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	APP_NAME    = "razen"
	CONFIG_FILE = "razen.toml"
)

// ConfigDir returns (and creates) the per-user configuration directory.
func ConfigDir(appName string) (string, error) {
	var configDir string

	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		configDir = filepath.Join(configHome, appName)
	} else if homeDir, err := os.UserHomeDir(); err == nil {
		if os.Getenv("OS") == "Windows_NT" {
			configDir = filepath.Join(os.Getenv("APPDATA"), appName)
		} else {
			configDir = filepath.Join(homeDir, ".config", appName)
		}
	} else {
		return "", fmt.Errorf("could not determine home directory")
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}

	return configDir, nil
}

// DefaultConfigFile is the razen.toml inside ConfigDir. The file may not
// exist.
func DefaultConfigFile() (string, error) {
	dir, err := ConfigDir(APP_NAME)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, CONFIG_FILE), nil
}
