package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/trebuchet-org/chaincfg/internal/domain/config"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

// RenderConfig renders the configuration display
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	if !result.Exists {
		fmt.Fprintf(r.out, "❌ No .chaincfg/config.local.json file found\n")
		fmt.Fprintf(r.out, "⚠️  Without local config, the default network comes from chaincfg.toml\n")
		return nil
	}

	fmt.Fprintln(r.out, "📋 Current config:")

	if result.Config.Network != "" {
		fmt.Fprintf(r.out, "Network: %s\n", result.Config.Network)
	} else {
		fmt.Fprintf(r.out, "Network: %s\n", "(not set)")
	}
	fmt.Fprintf(r.out, "Format:  %s\n", result.Config.Format)

	switch result.ConfigSource {
	case config.ConfigSourceFile:
		fmt.Fprintf(r.out, "\n📦 Config source: %s\n", config.ConfigSourceFile)
	case config.ConfigSourceDefaults:
		fmt.Fprintf(r.out, "\n📦 Config source: built-in defaults\n")
	}

	fmt.Fprintf(r.out, "📁 config file: %s\n", getRelativePath(result.ConfigPath))

	return nil
}

// RenderSet renders the result of setting a configuration value
func (r *ConfigRenderer) RenderSet(result *usecase.SetConfigResult) error {
	fmt.Fprintf(r.out, "✅ Set %s to: %s\n", result.Key, result.Value)
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

// RenderRemove renders the result of removing a configuration value
func (r *ConfigRenderer) RenderRemove(result *usecase.RemoveConfigResult) error {
	switch result.Key {
	case config.ConfigKeyNetwork:
		fmt.Fprintf(r.out, "✅ Removed network from config (chaincfg.toml default applies)\n")
	case config.ConfigKeyFormat:
		fmt.Fprintf(r.out, "✅ Reset format to: %s\n", config.FormatText)
	}

	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}
