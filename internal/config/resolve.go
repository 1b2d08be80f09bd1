package config

import (
	"io"
	"log/slog"

	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// Overrides are values supplied by the caller that take precedence over the
// project file and the environment.
type Overrides struct {
	// Network replaces the default network when non-empty
	Network string
}

// Resolver runs the load, validate, register, bind and assemble stages.
type Resolver struct {
	logger *slog.Logger
}

// NewResolver creates a resolver. A nil logger discards output.
func NewResolver(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Resolver{logger: logger.With("component", "resolver")}
}

// Resolve produces a Descriptor from settings and an environment snapshot.
// It reads no process state, so identical inputs give identical descriptors.
func (r *Resolver) Resolve(settings config.Settings, env Snapshot, overrides Overrides) (*config.Descriptor, error) {
	raw := NewLoader(settings).Load(env)
	if overrides.Network != "" {
		raw.DefaultNetwork = overrides.Network
	}
	r.logger.Debug("loaded raw values",
		"networks", len(raw.Networks),
		"roles", len(raw.Roles),
		"defaultNetwork", raw.DefaultNetwork,
	)

	validated, err := Validate(raw)
	if err != nil {
		r.logger.Debug("validation failed", "error", err)
		return nil, err
	}

	networks, err := Register(validated.Networks)
	if err != nil {
		r.logger.Debug("network registration failed", "error", err)
		return nil, err
	}
	for _, entry := range networks.Unusable() {
		r.logger.Warn("network is not usable for live dispatch",
			"network", entry.Name,
			"reason", entry.UnusableReason,
		)
	}

	roles, err := ResolveRoles(validated.Bindings, networks)
	if err != nil {
		r.logger.Debug("role resolution failed", "error", err)
		return nil, err
	}

	descriptor := Assemble(validated, networks, roles)
	r.logger.Debug("resolved configuration",
		"networks", len(networks),
		"roles", len(roles),
		"defaultNetwork", descriptor.DefaultNetwork(),
	)
	return descriptor, nil
}

// Resolve runs a resolver that discards its log output.
func Resolve(settings config.Settings, env Snapshot, overrides Overrides) (*config.Descriptor, error) {
	return NewResolver(nil).Resolve(settings, env, overrides)
}
