package usecase

import (
	"context"

	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// DescriptorResolver turns the loaded project settings into a Descriptor
type DescriptorResolver interface {
	// ResolveDescriptor resolves the project configuration. A non-empty
	// network replaces the configured default network.
	ResolveDescriptor(ctx context.Context, network string) (*config.Descriptor, error)
}

// EnvironmentInspector reports on the environment snapshot used for resolution
type EnvironmentInspector interface {
	// MissingEnvVars returns referenced variables that are unset or empty
	MissingEnvVars(ctx context.Context) []string
	// EndpointEnvVar returns the variable that supplies a network's endpoint
	EndpointEnvVar(ctx context.Context, network string) string
}

// NetworkCatalog lists declared networks without running a full resolution
type NetworkCatalog interface {
	NetworkNames(ctx context.Context) []string
}

// FileWriter handles file system operations for generated project files
type FileWriter interface {
	WriteFile(ctx context.Context, path string, content string) error
	FileExists(ctx context.Context, path string) (bool, error)
	EnsureDirectory(ctx context.Context, path string) error
}

// LocalConfigRepository manages local configuration persistence
type LocalConfigRepository interface {
	Exists() bool
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, config *config.LocalConfig) error
	GetPath() string
}

// NetworkSelector picks a network interactively
type NetworkSelector interface {
	SelectNetwork(ctx context.Context, networks []string, prompt string) (string, error)
}

// Confirmer asks the user a yes/no question
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}
