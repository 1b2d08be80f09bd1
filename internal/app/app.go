package app

import (
	"log/slog"

	"github.com/trebuchet-org/chaincfg/internal/domain/config"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Logger *slog.Logger

	// Use cases
	ResolveDescriptor *usecase.ResolveDescriptor
	ValidateConfig    *usecase.ValidateConfig
	ListNetworks      *usecase.ListNetworks
	ListRoles         *usecase.ListRoles
	ShowConfig        *usecase.ShowConfig
	SetConfig         *usecase.SetConfig
	RemoveConfig      *usecase.RemoveConfig
	InitProject       *usecase.InitProject
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	logger *slog.Logger,
	resolveDescriptor *usecase.ResolveDescriptor,
	validateConfig *usecase.ValidateConfig,
	listNetworks *usecase.ListNetworks,
	listRoles *usecase.ListRoles,
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
	initProject *usecase.InitProject,
) (*App, error) {
	return &App{
		Config:            cfg,
		Logger:            logger,
		ResolveDescriptor: resolveDescriptor,
		ValidateConfig:    validateConfig,
		ListNetworks:      listNetworks,
		ListRoles:         listRoles,
		ShowConfig:        showConfig,
		SetConfig:         setConfig,
		RemoveConfig:      removeConfig,
		InitProject:       initProject,
	}, nil
}
