package cli

import (
	"bytes"
	"context"
	"log/slog"
	"math/big"
	"os"
	"testing"

	"github.com/coininu/launchpad/internal/app"
	"github.com/coininu/launchpad/internal/config"
	"github.com/coininu/launchpad/internal/domain"
	"github.com/coininu/launchpad/internal/usecase"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubArtifacts struct {
	artifact *domain.ContractArtifact
}

func (s *stubArtifacts) Get(ctx context.Context, name string) (*domain.ContractArtifact, error) {
	if s.artifact != nil && name == s.artifact.Name {
		return s.artifact, nil
	}
	return nil, &domain.ArtifactNotFoundError{Name: name}
}

func (s *stubArtifacts) List(ctx context.Context) ([]*domain.ContractArtifact, error) {
	if s.artifact == nil {
		return nil, nil
	}
	return []*domain.ContractArtifact{s.artifact}, nil
}

type stubSubmitter struct {
	pending *domain.PendingDeployment
	calls   int
}

func (s *stubSubmitter) Submit(ctx context.Context, req *domain.DeploymentRequest) (*domain.PendingDeployment, error) {
	s.calls++
	return s.pending, nil
}

type stubWaiter struct {
	result *domain.DeploymentResult
}

func (s *stubWaiter) Wait(ctx context.Context, pending *domain.PendingDeployment) (*domain.DeploymentResult, error) {
	return s.result, nil
}

func testApp(artifacts usecase.ArtifactRepository, submitter usecase.DeploymentSubmitter, waiter usecase.ConfirmationWaiter) *app.App {
	cfg := &config.RuntimeConfig{
		Network:        &domain.Network{Name: "ScrollL2", RPCURL: "http://127.0.0.1:8545"},
		PrivateKey:     "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
		NonInteractive: true,
	}
	return &app.App{
		Config:         cfg,
		Log:            slog.New(slog.NewTextHandler(os.Stderr, nil)),
		DeployContract: usecase.NewDeployContract(cfg, artifacts, submitter, waiter),
		ListArtifacts:  usecase.NewListArtifacts(artifacts),
	}
}

// executeWithApp runs the command tree against a prebuilt container,
// capturing both output streams.
func executeWithApp(t *testing.T, a *app.App, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	rootCmd := NewRootCmd()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err = rootCmd.ExecuteContext(context.WithValue(context.Background(), appKey, a))
	return out.String(), errOut.String(), err
}

func TestDeployCmd(t *testing.T) {
	restore := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = restore })

	artifact := &domain.ContractArtifact{
		Name:     "CoinInu",
		Source:   "CoinInu.sol",
		Bytecode: common.FromHex("0x6080"),
	}

	t.Run("prints the two-line contract on stdout and exits clean", func(t *testing.T) {
		deployed := common.HexToAddress("0xAbC0000000000000000000000000000000000123")
		pending := &domain.PendingDeployment{TxHash: common.HexToHash("0x01"), Nonce: 7}
		submitter := &stubSubmitter{pending: pending}
		waiter := &stubWaiter{result: &domain.DeploymentResult{
			Address:     deployed,
			TxHash:      pending.TxHash,
			BlockNumber: big.NewInt(42),
		}}

		stdout, stderr, err := executeWithApp(t, testApp(&stubArtifacts{artifact: artifact}, submitter, waiter),
			"deploy", "CoinInu", "--network", "scrollL2")

		require.NoError(t, err, "a clean run must map to exit status 0")
		want := "Deploying smart contract...\n" +
			"The smart contract was deployed at: " + deployed.Hex() + " on ScrollL2!\n"
		assert.Equal(t, want, stdout)
		assert.Empty(t, stderr)
		assert.Equal(t, 1, submitter.calls)
	})

	t.Run("unknown artifact renders once and maps to exit status 1", func(t *testing.T) {
		submitter := &stubSubmitter{}

		stdout, stderr, err := executeWithApp(t, testApp(&stubArtifacts{artifact: artifact}, submitter, &stubWaiter{}),
			"deploy", "Nonexistent", "--network", "scrollL2")

		// main treats ErrAlreadyRendered as "exit 1, nothing more to print"
		require.ErrorIs(t, err, ErrAlreadyRendered)
		assert.Contains(t, stderr, "Nonexistent")
		assert.Equal(t, "Deploying smart contract...\n", stdout)
		assert.Zero(t, submitter.calls, "no transaction may be broadcast for a bad name")
	})
}
