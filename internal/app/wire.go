//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/chaincfg/internal/adapters"
	"github.com/trebuchet-org/chaincfg/internal/config"
	"github.com/trebuchet-org/chaincfg/internal/logging"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Runtime configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewResolveDescriptor,
		usecase.NewValidateConfig,
		usecase.NewListNetworks,
		usecase.NewListRoles,
		usecase.NewShowConfig,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,
		usecase.NewInitProject,

		// App
		NewApp,
	)
	return nil, nil
}
