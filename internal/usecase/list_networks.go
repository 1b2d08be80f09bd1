package usecase

import (
	"context"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	Network string
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks       []NetworkStatus
	DefaultNetwork string
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name     string
	URL      string
	Accounts int
	Builtin  bool
	Default  bool
	Usable   bool
	Reason   string
}

// ListNetworks is a use case for listing registered networks
type ListNetworks struct {
	resolver DescriptorResolver
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(resolver DescriptorResolver) *ListNetworks {
	return &ListNetworks{
		resolver: resolver,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	descriptor, err := uc.resolver.ResolveDescriptor(ctx, params.Network)
	if err != nil {
		return nil, err
	}

	entries := descriptor.Networks()
	networks := make([]NetworkStatus, 0, len(entries))
	for _, entry := range entries {
		networks = append(networks, NetworkStatus{
			Name:     entry.Name,
			URL:      entry.URL,
			Accounts: len(entry.Credentials),
			Builtin:  entry.Builtin,
			Default:  entry.Name == descriptor.DefaultNetwork(),
			Usable:   !entry.Unusable,
			Reason:   entry.UnusableReason,
		})
	}

	return &ListNetworksResult{
		Networks:       networks,
		DefaultNetwork: descriptor.DefaultNetwork(),
	}, nil
}
