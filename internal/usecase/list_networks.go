package usecase

import (
	"context"

	"github.com/coininu/launchpad/internal/domain"
	"github.com/samber/lo"
)

// ListNetworksResult contains the configured networks
type ListNetworksResult struct {
	Networks []*domain.Network
}

// ListNetworks lists the networks configured in launchpad.toml
type ListNetworks struct {
	resolver NetworkResolver
}

// NewListNetworks creates the list-networks use case
func NewListNetworks(resolver NetworkResolver) *ListNetworks {
	return &ListNetworks{resolver: resolver}
}

// Run resolves every configured network name
func (uc *ListNetworks) Run(ctx context.Context) (*ListNetworksResult, error) {
	networks := lo.Map(uc.resolver.Names(), func(name string, _ int) *domain.Network {
		network, err := uc.resolver.Resolve(name)
		if err != nil {
			// A half-configured entry (e.g. unset env var in the URL)
			// should not hide the rest of the list
			return &domain.Network{Name: name}
		}
		return network
	})

	return &ListNetworksResult{Networks: networks}, nil
}
