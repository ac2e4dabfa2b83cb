package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/coininu/launchpad/internal/domain"
	"github.com/coininu/launchpad/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNetworkResolver struct {
	networks map[string]*domain.Network
}

func (f *fakeNetworkResolver) Resolve(name string) (*domain.Network, error) {
	if network, ok := f.networks[name]; ok && network != nil {
		return network, nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrNetworkNotConfigured, name)
}

func (f *fakeNetworkResolver) Names() []string {
	return []string{"broken", "local", "scrollL2"}
}

func TestListNetworks(t *testing.T) {
	resolver := &fakeNetworkResolver{networks: map[string]*domain.Network{
		"local":    {Name: "local", RPCURL: "http://127.0.0.1:8545"},
		"scrollL2": {Name: "scrollL2", RPCURL: "https://sepolia-rpc.scroll.io", ChainID: 534351},
		"broken":   nil,
	}}

	uc := usecase.NewListNetworks(resolver)
	result, err := uc.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Networks, 3)
	byName := map[string]*domain.Network{}
	for _, network := range result.Networks {
		byName[network.Name] = network
	}
	assert.Equal(t, uint64(534351), byName["scrollL2"].ChainID)
	assert.Empty(t, byName["broken"].RPCURL, "half-configured entries still appear")
}

func TestListArtifacts(t *testing.T) {
	artifacts := new(MockArtifactRepository)
	artifacts.On("List", context.Background()).Return([]*domain.ContractArtifact{
		{Name: "Faucet"},
		{Name: "CoinInu"},
	}, nil)

	uc := usecase.NewListArtifacts(artifacts)
	result, err := uc.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Artifacts, 2)
	assert.Equal(t, "CoinInu", result.Artifacts[0].Name, "sorted by name")
	assert.Equal(t, "Faucet", result.Artifacts[1].Name)
}
