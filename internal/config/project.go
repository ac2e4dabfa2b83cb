package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ConfigFileName is the marker file that identifies a launchpad project root.
const ConfigFileName = "launchpad.toml"

// projectTOML is the raw launchpad.toml structure
type projectTOML struct {
	RPCEndpoints map[string]string          `toml:"rpc_endpoints"`
	Networks     map[string]NetworkSettings `toml:"networks"`
	Deploy       struct {
		OutDir string `toml:"out_dir"`
	} `toml:"deploy"`
}

// LoadProjectConfig loads and parses launchpad.toml from the project root.
// .env files are loaded first so ${VAR} references in endpoint URLs expand.
func LoadProjectConfig(projectRoot string) (*ProjectConfig, error) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}
	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}

	configPath := filepath.Join(projectRoot, ConfigFileName)
	var raw projectTOML
	if _, err := toml.DecodeFile(configPath, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}

	cfg := &ProjectConfig{
		RPCEndpoints: make(map[string]string),
		Networks:     raw.Networks,
		OutDir:       raw.Deploy.OutDir,
	}
	if cfg.Networks == nil {
		cfg.Networks = make(map[string]NetworkSettings)
	}
	if cfg.OutDir == "" {
		cfg.OutDir = "out"
	}

	for name, url := range raw.RPCEndpoints {
		cfg.RPCEndpoints[name] = os.ExpandEnv(url)
	}

	return cfg, nil
}
