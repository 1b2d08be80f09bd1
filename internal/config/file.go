package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

const (
	// ProjectFileName is the project configuration file searched for from the working directory upwards
	ProjectFileName = "chaincfg.toml"

	// DataDirName holds per-checkout state such as config.local.json
	DataDirName = ".chaincfg"
)

// LoadProjectFile loads and parses chaincfg.toml.
// Returns (nil, nil) when the file does not exist.
func LoadProjectFile(projectRoot string) (*config.Settings, error) {
	path := filepath.Join(projectRoot, ProjectFileName)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ProjectFileName, err)
	}

	return DecodeSettings(data)
}

// DecodeSettings parses project file content. Unknown keys are rejected so
// that typos do not silently fall back to defaults.
func DecodeSettings(data []byte) (*config.Settings, error) {
	var settings config.Settings
	md, err := toml.Decode(string(data), &settings)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ProjectFileName, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("unknown keys in %s: %s", ProjectFileName, strings.Join(keys, ", "))
	}

	return &settings, nil
}

// LoadSettings merges the project file over the built-in defaults and reports
// which source the result came from.
func LoadSettings(projectRoot string) (config.Settings, string, error) {
	file, err := LoadProjectFile(projectRoot)
	if err != nil {
		return config.Settings{}, "", err
	}

	source := config.ConfigSourceDefaults
	if file != nil {
		source = config.ConfigSourceFile
	}

	merged, err := MergeSettings(DefaultSettings(), file)
	if err != nil {
		return config.Settings{}, "", err
	}
	return merged, source, nil
}

// FindProjectRoot walks up from current directory to find chaincfg.toml
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ProjectFileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a chaincfg project (%s not found)", ProjectFileName)
		}
		dir = parent
	}
}
