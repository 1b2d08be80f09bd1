package adapters

import (
	"github.com/google/wire"
	internalconfig "github.com/trebuchet-org/chaincfg/internal/adapters/config"
	"github.com/trebuchet-org/chaincfg/internal/adapters/fs"
	"github.com/trebuchet-org/chaincfg/internal/adapters/interactive"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewFileWriterAdapter,
	wire.Bind(new(usecase.FileWriter), new(*fs.FileWriterAdapter)),

	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.LocalConfigRepository), new(*fs.LocalConfigStoreAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.NetworkSelector), new(*interactive.SelectorAdapter)),
	wire.Bind(new(usecase.Confirmer), new(*interactive.SelectorAdapter)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	internalconfig.NewResolverAdapter,
	wire.Bind(new(usecase.DescriptorResolver), new(*internalconfig.ResolverAdapter)),
	wire.Bind(new(usecase.EnvironmentInspector), new(*internalconfig.ResolverAdapter)),
	wire.Bind(new(usecase.NetworkCatalog), new(*internalconfig.ResolverAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	InteractiveSet,
	ConfigSet,
)
