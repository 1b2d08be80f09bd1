package config

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/samber/lo"
	"github.com/trebuchet-org/chaincfg/internal/config"
	domainconfig "github.com/trebuchet-org/chaincfg/internal/domain/config"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// ResolverAdapter resolves the runtime settings through config.Resolver and
// memoizes the descriptor per network override.
type ResolverAdapter struct {
	cfg      *domainconfig.RuntimeConfig
	resolver *config.Resolver

	mu    sync.Mutex
	cache map[string]*domainconfig.Descriptor
}

// NewResolverAdapter creates a new adapter
func NewResolverAdapter(cfg *domainconfig.RuntimeConfig, logger *slog.Logger) *ResolverAdapter {
	return &ResolverAdapter{
		cfg:      cfg,
		resolver: config.NewResolver(logger),
		cache:    make(map[string]*domainconfig.Descriptor),
	}
}

// ResolveDescriptor resolves the project configuration. An empty network
// falls back to the runtime override from --network or the local config.
func (a *ResolverAdapter) ResolveDescriptor(ctx context.Context, network string) (*domainconfig.Descriptor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if network == "" {
		network = a.cfg.NetworkOverride
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if descriptor, ok := a.cache[network]; ok {
		return descriptor, nil
	}

	descriptor, err := a.resolver.Resolve(a.settings(), config.Snapshot(a.cfg.Env), config.Overrides{Network: network})
	if err != nil {
		return nil, err
	}
	a.cache[network] = descriptor
	return descriptor, nil
}

// MissingEnvVars returns referenced variables that are unset or empty
func (a *ResolverAdapter) MissingEnvVars(ctx context.Context) []string {
	return config.MissingEnvVars(a.settings(), config.Snapshot(a.cfg.Env))
}

// EndpointEnvVar returns the variable that supplies a network's endpoint
func (a *ResolverAdapter) EndpointEnvVar(ctx context.Context, network string) string {
	return config.EndpointEnvVar(a.settings(), network)
}

// NetworkNames returns the built-in network plus every declared network, sorted
func (a *ResolverAdapter) NetworkNames(ctx context.Context) []string {
	names := []string{domainconfig.BuiltinNetwork}
	for _, n := range a.settings().Networks {
		names = append(names, n.Name)
	}
	names = lo.Uniq(lo.Compact(names))
	sort.Strings(names)
	return names
}

func (a *ResolverAdapter) settings() domainconfig.Settings {
	if a.cfg.Settings == nil {
		return config.DefaultSettings()
	}
	return *a.cfg.Settings
}

var (
	_ usecase.DescriptorResolver   = (*ResolverAdapter)(nil)
	_ usecase.EnvironmentInspector = (*ResolverAdapter)(nil)
	_ usecase.NetworkCatalog       = (*ResolverAdapter)(nil)
)
