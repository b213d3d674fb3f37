package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "brushgen.yaml"

// For mocking in tests
var osStat = os.Stat

// LoadSettings loads the generator settings by layering an optional
// brushgen.yaml from the repository root over the compiled-in defaults.
// A missing settings file is fine; a malformed one is an error.
func LoadSettings(repoRoot string) (Settings, error) {
	settings := GetDefaultSettings()

	settingsPath := filepath.Join(repoRoot, settingsFileName)
	if _, err := osStat(settingsPath); os.IsNotExist(err) {
		return settings, nil
	}

	overlay, err := loadSettingsFromFile(settingsPath)
	if err != nil {
		return Settings{}, fmt.Errorf("error loading settings from %s: %w", settingsPath, err)
	}
	return mergeSettings(settings, overlay), nil
}

// loadSettingsFromFile loads Settings from a YAML file.
func loadSettingsFromFile(filePath string) (Settings, error) {
	var settings Settings
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Settings{}, err
	}
	err = yaml.Unmarshal(data, &settings)
	if err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// mergeSettings merges 'overlay' settings into 'base' settings. Only
// fields the overlay actually sets override the base.
func mergeSettings(base, overlay Settings) Settings {
	merged := base
	if overlay.DefinitionsPath != "" {
		merged.DefinitionsPath = overlay.DefinitionsPath
	}
	if overlay.ThemeName != "" {
		merged.ThemeName = overlay.ThemeName
	}
	if overlay.ThemesDir != "" {
		merged.ThemesDir = overlay.ThemesDir
	}
	if overlay.TemplatePath != "" {
		merged.TemplatePath = overlay.TemplatePath
	}
	if overlay.AccessorPath != "" {
		merged.AccessorPath = overlay.AccessorPath
	}
	if overlay.IgnoredName != "" {
		merged.IgnoredName = overlay.IgnoredName
	}
	return merged
}
