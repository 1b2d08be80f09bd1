package usecase

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// ListRolesParams contains parameters for listing roles
type ListRolesParams struct {
	Network string
	// Role limits the result to one role when set
	Role string
}

// ListRolesResult contains the resolved roles
type ListRolesResult struct {
	Roles    []config.RoleView
	Networks []string
}

// ListRoles is a use case for listing role bindings per network
type ListRoles struct {
	resolver DescriptorResolver
}

// NewListRoles creates a new ListRoles use case
func NewListRoles(resolver DescriptorResolver) *ListRoles {
	return &ListRoles{resolver: resolver}
}

// Run executes the use case
func (uc *ListRoles) Run(ctx context.Context, params ListRolesParams) (*ListRolesResult, error) {
	descriptor, err := uc.resolver.ResolveDescriptor(ctx, params.Network)
	if err != nil {
		return nil, err
	}

	view := descriptor.View()
	roles := view.Roles
	if params.Role != "" {
		if _, ok := descriptor.Role(params.Role); !ok {
			return nil, fmt.Errorf("role %q is not defined", params.Role)
		}
		roles = lo.Filter(roles, func(r config.RoleView, _ int) bool {
			return r.Role == params.Role
		})
	}

	return &ListRolesResult{
		Roles:    roles,
		Networks: descriptor.NetworkNames(),
	}, nil
}
