package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	internalconfig "github.com/trebuchet-org/chaincfg/internal/config"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// SetConfigParams contains parameters for setting configuration
type SetConfigParams struct {
	Key   string
	Value string
}

// SetConfigResult contains the result of setting configuration
type SetConfigResult struct {
	UpdatedConfig *config.LocalConfig
	ConfigPath    string
	Key           config.ConfigKey
	Value         string
}

// SetConfig is a use case for setting configuration values
type SetConfig struct {
	config   *config.RuntimeConfig
	store    LocalConfigRepository
	catalog  NetworkCatalog
	selector NetworkSelector
}

// NewSetConfig creates a new SetConfig use case
func NewSetConfig(
	cfg *config.RuntimeConfig,
	store LocalConfigRepository,
	catalog NetworkCatalog,
	selector NetworkSelector,
) *SetConfig {
	return &SetConfig{
		config:   cfg,
		store:    store,
		catalog:  catalog,
		selector: selector,
	}
}

// Run executes the set config use case. An empty network value opens the
// interactive picker unless the session is non-interactive.
func (uc *SetConfig) Run(ctx context.Context, params SetConfigParams) (*SetConfigResult, error) {
	key, err := parseConfigKey(params.Key)
	if err != nil {
		return nil, err
	}

	value := strings.TrimSpace(params.Value)

	switch key {
	case config.ConfigKeyNetwork:
		value, err = uc.networkValue(ctx, value)
		if err != nil {
			return nil, err
		}
	case config.ConfigKeyFormat:
		value = strings.ToLower(value)
		if !config.IsValidFormat(value) {
			return nil, fmt.Errorf("invalid format %q (expected %s, %s or %s)",
				params.Value, config.FormatText, config.FormatJSON, config.FormatYAML)
		}
	}

	localConfig, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	switch key {
	case config.ConfigKeyNetwork:
		localConfig.Network = value
	case config.ConfigKeyFormat:
		localConfig.Format = value
	}

	if err := uc.store.Save(ctx, localConfig); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return &SetConfigResult{
		UpdatedConfig: localConfig,
		ConfigPath:    uc.store.GetPath(),
		Key:           key,
		Value:         value,
	}, nil
}

func (uc *SetConfig) networkValue(ctx context.Context, value string) (string, error) {
	networks := uc.catalog.NetworkNames(ctx)

	if value == "" {
		if uc.config.NonInteractive {
			return "", fmt.Errorf("a network name is required in non-interactive mode")
		}
		return uc.selector.SelectNetwork(ctx, networks, "Select default network")
	}

	if !lo.Contains(networks, value) {
		msg := fmt.Sprintf("network %q is not declared", value)
		if suggestion := internalconfig.Suggest(value, networks); suggestion != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
		}
		return "", errors.New(msg)
	}
	return value, nil
}
