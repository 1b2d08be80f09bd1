package config

import (
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Snapshot is an immutable copy of the environment taken once at startup.
// Resolution reads values from it instead of the process environment.
type Snapshot map[string]string

// Get returns the value of key, or "" when unset.
func (s Snapshot) Get(key string) string {
	return s[key]
}

// EnvironmentSnapshot layers .env, then .env.local, then the process environment.
// Each layer overrides the one before it, so .env.local beats .env and
// exported variables beat both. Unreadable dotenv files are logged and skipped.
func EnvironmentSnapshot(projectRoot string, environ []string, logger *slog.Logger) Snapshot {
	snap := make(Snapshot)

	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		values, err := godotenv.Read(envFile)
		if err != nil {
			logger.Warn("failed to load env file", "path", envFile, "error", err)
			continue
		}
		maps.Copy(snap, values)
	}

	for _, kv := range environ {
		if key, value, ok := strings.Cut(kv, "="); ok {
			snap[key] = value
		}
	}

	return snap
}
