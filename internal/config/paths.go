// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global lablog directory.
	GlobalDirName = ".lablog"

	// LogsDirName is the name of the logs directory.
	LogsDirName = "logs"

	// DropDirName is the default attachment drop directory name.
	DropDirName = "attachments"
)

// File names
const (
	SettingsFileName = "settings.yaml"
	LogFileName      = "lablog.log"
)

// GlobalDir returns the path to the global lablog directory (~/.lablog/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// GlobalLogsDir returns the path to the logs directory.
func GlobalLogsDir() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogsDirName), nil
}

// GlobalLogFile returns the path to the application log file.
func GlobalLogFile() (string, error) {
	dir, err := GlobalLogsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogFileName), nil
}

// DefaultDropDir returns the default attachment drop directory
// (~/.lablog/attachments/).
func DefaultDropDir() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DropDirName), nil
}

// EnsureGlobalDir creates the global lablog directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// EnsureDropDir creates a drop directory if it doesn't exist.
func EnsureDropDir(path string) error {
	return os.MkdirAll(path, 0755)
}
