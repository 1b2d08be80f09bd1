package usecase

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// parseConfigKey lowercases and validates a local config key
func parseConfigKey(raw string) (config.ConfigKey, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if !config.IsValidConfigKey(key) {
		validKeys := lo.Map(config.ValidConfigKeys(), func(k config.ConfigKey, _ int) string {
			if k == config.ConfigKeyNetwork {
				return string(k) + " (net)"
			}
			return string(k)
		})
		return "", fmt.Errorf("unknown config key: %s\nAvailable keys: %s", raw, strings.Join(validKeys, ", "))
	}
	return config.NormalizeConfigKey(key), nil
}
