package config

import (
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// Assemble combines the validated values, the network map and the resolved
// roles into a Descriptor. It cannot fail: every input has already been checked.
func Assemble(validated *config.ValidatedConfig, networks NetworkMap, roles RoleMap) *config.Descriptor {
	return config.NewDescriptor(
		validated.Compiler,
		validated.DefaultNetwork,
		networks,
		validated.Paths,
		roles,
		validated.Report,
		validated.Plugins,
	)
}
