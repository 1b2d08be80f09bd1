package config

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// MergeSettings overlays each non-nil layer onto base, later layers winning.
// Scalars and lists set in a layer replace the lower value; report outputs merge
// per reporter; a layer that declares any roles replaces the whole role table.
func MergeSettings(base config.Settings, layers ...*config.Settings) (config.Settings, error) {
	merged := base.Clone()

	for _, layer := range layers {
		if layer == nil {
			continue
		}
		overlay := layer.Clone()
		roles := overlay.Roles
		overlay.Roles = nil

		if err := mergo.Merge(&merged, overlay, mergo.WithOverride, mergo.WithoutDereference); err != nil {
			return config.Settings{}, fmt.Errorf("error merging settings: %w", err)
		}

		if len(roles) > 0 {
			merged.Roles = roles
		}
	}

	return merged, nil
}
