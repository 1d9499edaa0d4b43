package config

import (
	"strings"

	"github.com/lablog-io/lablog/internal/models"
)

// LoadSettings loads the global settings from ~/.lablog/settings.yaml.
// If the file doesn't exist, returns default settings.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	return LoadYAMLOrDefault(path, models.NewSettings)
}

// SaveSettings saves the global settings to ~/.lablog/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}

// ResolveServerURL returns the server URL from an explicit flag value or,
// when the flag is empty, from the settings file.
func ResolveServerURL(flagValue string, settings *models.Settings) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v
	}
	return settings.Server.URL
}

// ResolveDropDir returns the configured drop directory, falling back to the
// default location. An explicit "-" disables the watcher.
func ResolveDropDir(settings *models.Settings) (string, error) {
	switch settings.Attachments.DropDir {
	case "-":
		return "", nil
	case "":
		return DefaultDropDir()
	default:
		return settings.Attachments.DropDir, nil
	}
}
