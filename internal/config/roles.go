package config

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/trebuchet-org/chaincfg/internal/domain"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// RoleMap maps role names to their resolved accounts
type RoleMap map[string]config.ResolvedRole

// ResolveRoles binds every role on every registered network. A network without
// an explicit binding falls back to the role's "default" binding.
// Roles and networks are walked in sorted order so the first error is stable.
func ResolveRoles(bindings []config.RoleBinding, networks NetworkMap) (RoleMap, error) {
	sorted := make([]config.RoleBinding, len(bindings))
	copy(sorted, bindings)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Role < sorted[j].Role })

	networkNames := networks.Names()
	roles := make(RoleMap, len(sorted))

	for _, binding := range sorted {
		if err := checkIndexes(binding); err != nil {
			return nil, err
		}

		resolved := config.ResolvedRole{
			Role:     binding.Role,
			Accounts: make(map[string]config.AccountRef, len(networkNames)),
		}

		for _, network := range networkNames {
			index, ok := binding.PerNetworkIndex[network]
			if !ok {
				index, ok = binding.PerNetworkIndex[config.DefaultBinding]
			}
			if !ok {
				return nil, domain.NewConfigError(domain.ErrUnboundRole,
					fmt.Sprintf("roles.%s.%s", binding.Role, network), nil,
					"no binding for this network and no default binding")
			}

			ref := config.AccountRef{Network: network, Index: index}
			if addresses := networks[network].Addresses; index < len(addresses) {
				ref.Address = addresses[index]
			}
			resolved.Accounts[network] = ref
		}

		roles[binding.Role] = resolved
	}

	return roles, nil
}

func checkIndexes(binding config.RoleBinding) error {
	keys := lo.Keys(binding.PerNetworkIndex)
	sort.Strings(keys)
	for _, key := range keys {
		if index := binding.PerNetworkIndex[key]; index < 0 {
			return domain.NewConfigError(domain.ErrNegativeAccountIndex,
				fmt.Sprintf("roles.%s.%s", binding.Role, key), index,
				"account index must not be negative")
		}
	}
	return nil
}
