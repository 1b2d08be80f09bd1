package config

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Execution settings
	Debug          bool
	NonInteractive bool
	Format         string

	// NetworkOverride replaces the default network; it comes from --network or the local config
	NetworkOverride string

	// Config source tracking
	ConfigSource string // "chaincfg.toml" or "defaults"

	// Settings is the built-in defaults merged with chaincfg.toml
	Settings *Settings

	// Env is the environment snapshot (.env, .env.local, process environment)
	Env map[string]string
}

// Config sources
const (
	ConfigSourceFile     = "chaincfg.toml"
	ConfigSourceDefaults = "defaults"
)
