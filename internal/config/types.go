package config

import (
	"time"

	"github.com/coininu/launchpad/internal/domain"
)

// ProjectConfig is the parsed launchpad.toml.
type ProjectConfig struct {
	// RPCEndpoints maps network name -> RPC URL (after env expansion)
	RPCEndpoints map[string]string

	// Networks holds optional per-network settings keyed by name
	Networks map[string]NetworkSettings

	// OutDir is the compiler output directory, relative to the project root
	OutDir string
}

// NetworkSettings are the optional [networks.<name>] values.
type NetworkSettings struct {
	// ChainID pins the expected chain ID; 0 means learn it from the endpoint
	ChainID uint64 `toml:"chain_id"`
}

// RuntimeConfig is the fully resolved configuration a single invocation
// runs with. Assembled once by the provider; read-only afterwards.
type RuntimeConfig struct {
	ProjectRoot string
	OutDir      string

	// Project is the parsed launchpad.toml
	Project *ProjectConfig

	// Network is nil until a --network flag or config value resolves
	Network *domain.Network

	// PrivateKey is the hex signing key from the environment. Held only to
	// hand to the submitter; never logged.
	PrivateKey string

	// Timeout bounds the confirmation wait
	Timeout time.Duration

	// PollInterval is the receipt polling cadence
	PollInterval time.Duration

	Debug          bool
	NonInteractive bool
}
