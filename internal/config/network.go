package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/coininu/launchpad/internal/domain"
)

// NetworkResolver resolves network names against the project configuration.
type NetworkResolver struct {
	config *ProjectConfig
}

// NewNetworkResolver creates a new network resolver
func NewNetworkResolver(config *ProjectConfig) *NetworkResolver {
	return &NetworkResolver{config: config}
}

// Resolve resolves a network name to its configuration.
func (r *NetworkResolver) Resolve(name string) (*domain.Network, error) {
	rpcURL, ok := r.config.RPCEndpoints[name]
	if !ok {
		known := r.Names()
		if len(known) == 0 {
			return nil, fmt.Errorf("%w: %q (no [rpc_endpoints] defined in %s)",
				domain.ErrNetworkNotConfigured, name, ConfigFileName)
		}
		return nil, fmt.Errorf("%w: %q (configured networks: %s)",
			domain.ErrNetworkNotConfigured, name, strings.Join(known, ", "))
	}
	if rpcURL == "" {
		return nil, fmt.Errorf("%w: %q has an empty RPC URL (unset environment variable?)",
			domain.ErrNetworkNotConfigured, name)
	}

	network := &domain.Network{
		Name:   name,
		RPCURL: rpcURL,
	}
	if settings, ok := r.config.Networks[name]; ok {
		network.ChainID = settings.ChainID
	}
	return network, nil
}

// Names returns the configured network names, sorted.
func (r *NetworkResolver) Names() []string {
	names := make([]string, 0, len(r.config.RPCEndpoints))
	for name := range r.config.RPCEndpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
