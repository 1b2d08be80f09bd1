package usecase

import (
	"context"
	"log/slog"

	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// ResolveDescriptorParams contains parameters for resolving the configuration
type ResolveDescriptorParams struct {
	// Network overrides the default network when set
	Network string
}

// ResolveDescriptorResult contains the resolved configuration
type ResolveDescriptorResult struct {
	Descriptor   *config.Descriptor
	View         config.DescriptorView
	ConfigSource string
	MissingEnv   []string
}

// ResolveDescriptor is a use case for producing the resolved configuration
type ResolveDescriptor struct {
	config   *config.RuntimeConfig
	resolver DescriptorResolver
	env      EnvironmentInspector
	log      *slog.Logger
}

// NewResolveDescriptor creates a new ResolveDescriptor use case
func NewResolveDescriptor(
	cfg *config.RuntimeConfig,
	resolver DescriptorResolver,
	env EnvironmentInspector,
	log *slog.Logger,
) *ResolveDescriptor {
	return &ResolveDescriptor{
		config:   cfg,
		resolver: resolver,
		env:      env,
		log:      log.With("component", "ResolveDescriptor"),
	}
}

// Run executes the use case
func (uc *ResolveDescriptor) Run(ctx context.Context, params ResolveDescriptorParams) (*ResolveDescriptorResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	descriptor, err := uc.resolver.ResolveDescriptor(ctx, params.Network)
	if err != nil {
		return nil, err
	}

	missing := uc.env.MissingEnvVars(ctx)
	if len(missing) > 0 {
		uc.log.Debug("referenced environment variables are not set", "vars", missing)
	}

	return &ResolveDescriptorResult{
		Descriptor:   descriptor,
		View:         descriptor.View(),
		ConfigSource: uc.config.ConfigSource,
		MissingEnv:   missing,
	}, nil
}
