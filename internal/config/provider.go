package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// LocalConfigName is the per-checkout config file inside the data directory
const LocalConfigName = "config.local.json"

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	settings, source, err := LoadSettings(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load project settings: %w", err)
	}

	format := strings.ToLower(v.GetString("format"))
	if !config.IsValidFormat(format) {
		return nil, fmt.Errorf("invalid output format %q (expected text, json or yaml)", format)
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:     projectRoot,
		DataDir:         filepath.Join(projectRoot, DataDirName),
		Debug:           v.GetBool("debug"),
		NonInteractive:  v.GetBool("non_interactive"),
		Format:          format,
		NetworkOverride: strings.TrimSpace(v.GetString("network")),
		ConfigSource:    source,
		Settings:        &settings,
		Env:             EnvironmentSnapshot(projectRoot, os.Environ(), slog.Default()),
	}

	return cfg, nil
}

// SetupViper creates and configures a viper instance. Precedence is flags,
// then CHAINCFG_* environment variables, then .chaincfg/config.local.json.
// A missing local config is fine; an unreadable or malformed one is an error.
func SetupViper(projectRoot string, cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(strings.TrimSuffix(LocalConfigName, ".json"))
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, DataDirName))

	v.SetEnvPrefix("CHAINCFG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	// CHAINCFG_NETWORK is read by the loader so that it ranks below the local config.
	for _, key := range []string{"debug", "non_interactive", "format", "project_root"} {
		_ = v.BindEnv(key)
	}

	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("format", config.FormatText)
	v.SetDefault("project_root", projectRoot)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read %s: %w", LocalConfigName, err)
		}
	}

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil {
				panic(err)
			}
		})
	}

	return v, nil
}
