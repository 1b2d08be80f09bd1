package usecase

import (
	"context"
	"errors"

	"github.com/trebuchet-org/chaincfg/internal/domain"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// ValidateConfigParams contains parameters for validating the configuration
type ValidateConfigParams struct {
	Network string
}

// ValidateConfigResult describes whether the configuration resolves.
// A configuration error is reported in the result, not returned.
type ValidateConfigResult struct {
	Valid        bool
	ConfigSource string
	Error        *domain.ConfigError
	Unusable     []config.NetworkEntry
	// EndpointVars maps each unusable network to the variable that supplies its endpoint
	EndpointVars map[string]string
	MissingEnv   []string
	Networks     int
	Roles        int
}

// ValidateConfig is a use case for checking the configuration without printing it
type ValidateConfig struct {
	config   *config.RuntimeConfig
	resolver DescriptorResolver
	env      EnvironmentInspector
}

// NewValidateConfig creates a new ValidateConfig use case
func NewValidateConfig(cfg *config.RuntimeConfig, resolver DescriptorResolver, env EnvironmentInspector) *ValidateConfig {
	return &ValidateConfig{
		config:   cfg,
		resolver: resolver,
		env:      env,
	}
}

// Run executes the use case
func (uc *ValidateConfig) Run(ctx context.Context, params ValidateConfigParams) (*ValidateConfigResult, error) {
	result := &ValidateConfigResult{
		ConfigSource: uc.config.ConfigSource,
		MissingEnv:   uc.env.MissingEnvVars(ctx),
	}

	descriptor, err := uc.resolver.ResolveDescriptor(ctx, params.Network)
	if err != nil {
		var cfgErr *domain.ConfigError
		if !errors.As(err, &cfgErr) {
			return nil, err
		}
		result.Error = cfgErr
		return result, nil
	}

	result.Valid = true
	result.Networks = len(descriptor.NetworkNames())
	result.Roles = len(descriptor.Roles())
	result.EndpointVars = make(map[string]string)
	for _, entry := range descriptor.Networks() {
		if entry.Unusable {
			result.Unusable = append(result.Unusable, entry)
			result.EndpointVars[entry.Name] = uc.env.EndpointEnvVar(ctx, entry.Name)
		}
	}

	return result, nil
}
