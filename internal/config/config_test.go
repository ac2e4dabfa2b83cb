package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/coininu/launchpad/internal/domain"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTOML = `
[rpc_endpoints]
scrollL2 = "${SCROLL_RPC_URL}"
local = "http://127.0.0.1:8545"

[networks.scrollL2]
chain_id = 534351

[deploy]
out_dir = "artifacts"
`

func writeProject(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(contents), 0644))
	return dir
}

func TestLoadProjectConfig(t *testing.T) {
	t.Run("expands environment variables in endpoint URLs", func(t *testing.T) {
		t.Setenv("SCROLL_RPC_URL", "https://sepolia-rpc.scroll.io")
		dir := writeProject(t, testTOML)

		cfg, err := LoadProjectConfig(dir)
		require.NoError(t, err)

		assert.Equal(t, "https://sepolia-rpc.scroll.io", cfg.RPCEndpoints["scrollL2"])
		assert.Equal(t, "http://127.0.0.1:8545", cfg.RPCEndpoints["local"])
		assert.Equal(t, uint64(534351), cfg.Networks["scrollL2"].ChainID)
		assert.Equal(t, "artifacts", cfg.OutDir)
	})

	t.Run("out_dir defaults to out", func(t *testing.T) {
		dir := writeProject(t, "[rpc_endpoints]\nlocal = \"http://127.0.0.1:8545\"\n")

		cfg, err := LoadProjectConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "out", cfg.OutDir)
	})

	t.Run("loads .env before expansion", func(t *testing.T) {
		dir := writeProject(t, testTOML)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
			[]byte("SCROLL_RPC_URL=https://from-dotenv.example\n"), 0644))
		t.Setenv("SCROLL_RPC_URL", "")
		os.Unsetenv("SCROLL_RPC_URL")

		cfg, err := LoadProjectConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "https://from-dotenv.example", cfg.RPCEndpoints["scrollL2"])
	})

	t.Run("malformed toml is a clear error", func(t *testing.T) {
		dir := writeProject(t, "[rpc_endpoints\n")

		_, err := LoadProjectConfig(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ConfigFileName)
	})
}

func TestNetworkResolver(t *testing.T) {
	t.Setenv("SCROLL_RPC_URL", "https://sepolia-rpc.scroll.io")
	dir := writeProject(t, testTOML)
	cfg, err := LoadProjectConfig(dir)
	require.NoError(t, err)
	resolver := NewNetworkResolver(cfg)

	t.Run("resolves a pinned network", func(t *testing.T) {
		network, err := resolver.Resolve("scrollL2")
		require.NoError(t, err)
		assert.Equal(t, "scrollL2", network.Name)
		assert.Equal(t, "https://sepolia-rpc.scroll.io", network.RPCURL)
		assert.Equal(t, uint64(534351), network.ChainID)
	})

	t.Run("unpinned network leaves chain ID to the endpoint", func(t *testing.T) {
		network, err := resolver.Resolve("local")
		require.NoError(t, err)
		assert.Zero(t, network.ChainID)
	})

	t.Run("unknown name lists the configured networks", func(t *testing.T) {
		_, err := resolver.Resolve("mainnet")
		require.ErrorIs(t, err, domain.ErrNetworkNotConfigured)
		assert.Contains(t, err.Error(), "scrollL2")
		assert.Contains(t, err.Error(), "local")
	})

	t.Run("names are sorted", func(t *testing.T) {
		assert.Equal(t, []string{"local", "scrollL2"}, resolver.Names())
	})
}

func TestFindProjectRoot(t *testing.T) {
	dir := writeProject(t, testTOML)
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	t.Chdir(nested)

	root, err := FindProjectRoot()
	require.NoError(t, err)

	// TempDir may sit behind a symlink (macOS), compare resolved paths
	wantRoot, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	gotRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, wantRoot, gotRoot)
}

func TestProvider(t *testing.T) {
	t.Setenv("SCROLL_RPC_URL", "https://sepolia-rpc.scroll.io")
	t.Setenv("PRIVATE_KEY", "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	dir := writeProject(t, testTOML)

	cmd := &cobra.Command{Use: "test"}
	v := SetupViper(dir, cmd)
	v.Set("network", "scrollL2")

	cfg, err := Provider(v)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.ProjectRoot)
	assert.Equal(t, filepath.Join(dir, "artifacts"), cfg.OutDir)
	assert.Equal(t, "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80", cfg.PrivateKey)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
	require.NotNil(t, cfg.Network)
	assert.Equal(t, "scrollL2", cfg.Network.Name)
	assert.Equal(t, uint64(534351), cfg.Network.ChainID)

	t.Run("unknown network fails with a clear error", func(t *testing.T) {
		v := SetupViper(dir, &cobra.Command{Use: "test"})
		v.Set("network", "mainnet")

		_, err := Provider(v)
		require.ErrorIs(t, err, domain.ErrNetworkNotConfigured)
	})
}
