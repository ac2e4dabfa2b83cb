package ethereum

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/coininu/launchpad/internal/domain"
	"github.com/coininu/launchpad/internal/usecase"
	gethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Backend is the slice of the JSON-RPC client surface the deployer needs.
// *ethclient.Client satisfies it.
type Backend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg gethereum.CallMsg) (uint64, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// Dialer opens a Backend for an RPC URL
type Dialer func(ctx context.Context, rpcURL string) (Backend, error)

// DialBackend is the production Dialer backed by ethclient
func DialBackend(ctx context.Context, rpcURL string) (Backend, error) {
	return ethclient.DialContext(ctx, rpcURL)
}

// Deployer submits contract-creation transactions and waits for their
// inclusion. It dials lazily on the first submission and keeps the
// connection for the confirmation wait. One deployment in flight at a
// time: concurrent submissions from one signer would race on the nonce.
type Deployer struct {
	dial         Dialer
	timeout      time.Duration
	pollInterval time.Duration
	log          *slog.Logger

	mu      sync.Mutex
	rpcURL  string
	backend Backend
}

// NewDeployer creates a deployer. timeout bounds the confirmation wait;
// pollInterval is the receipt polling cadence.
func NewDeployer(dial Dialer, timeout, pollInterval time.Duration, log *slog.Logger) *Deployer {
	return &Deployer{
		dial:         dial,
		timeout:      timeout,
		pollInterval: pollInterval,
		log:          log,
	}
}

// Submit signs a contract-creation transaction for the request and
// broadcasts it. It returns as soon as the endpoint accepts the broadcast.
// A successful call consumes one nonce of the sender irreversibly, so
// callers must never resubmit blindly on failure.
func (d *Deployer) Submit(ctx context.Context, req *domain.DeploymentRequest) (*domain.PendingDeployment, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(req.PrivateKeyHex, "0x"))
	if err != nil {
		return nil, &domain.SubmissionError{Reason: "malformed signing credential", Err: err}
	}
	sender := crypto.PubkeyToAddress(key.PublicKey)

	backend, err := d.connect(ctx, req.Network.RPCURL)
	if err != nil {
		return nil, &domain.SubmissionError{Reason: "failed to reach endpoint", Err: err}
	}

	chainID, err := backend.ChainID(ctx)
	if err != nil {
		return nil, &domain.SubmissionError{Reason: "failed to get chain ID", Err: err}
	}
	if want := req.Network.ChainID; want != 0 && chainID.Uint64() != want {
		return nil, &domain.SubmissionError{
			Reason: fmt.Sprintf("chain ID mismatch: %s is pinned to %d but the endpoint reports %d",
				req.Network.Name, want, chainID.Uint64()),
		}
	}

	nonce, err := backend.PendingNonceAt(ctx, sender)
	if err != nil {
		return nil, &domain.SubmissionError{Reason: "failed to get nonce", Err: err}
	}

	data, err := creationData(req)
	if err != nil {
		return nil, &domain.SubmissionError{Reason: "failed to encode constructor arguments", Err: err}
	}

	gasFeeCap, gasTipCap, err := d.suggestFees(ctx, backend)
	if err != nil {
		return nil, &domain.SubmissionError{Reason: "failed to get gas price", Err: err}
	}

	gasLimit, err := backend.EstimateGas(ctx, gethereum.CallMsg{
		From:      sender,
		To:        nil, // contract creation
		GasFeeCap: gasFeeCap,
		GasTipCap: gasTipCap,
		Data:      data,
	})
	if err != nil {
		return nil, &domain.SubmissionError{Reason: "endpoint rejected gas estimation", Err: err}
	}

	balance, err := backend.BalanceAt(ctx, sender, nil)
	if err != nil {
		return nil, &domain.SubmissionError{Reason: "failed to get balance", Err: err}
	}
	cost := new(big.Int).Mul(gasFeeCap, new(big.Int).SetUint64(gasLimit))
	if balance.Cmp(cost) < 0 {
		return nil, &domain.SubmissionError{
			Reason: fmt.Sprintf("insufficient funds for gas: account %s has %s wei, needs up to %s wei",
				sender.Hex(), balance, cost),
		}
	}

	tx, err := types.SignNewTx(key, types.NewLondonSigner(chainID), &types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		GasTipCap: gasTipCap,
		GasFeeCap: gasFeeCap,
		Gas:       gasLimit,
		Data:      data,
	})
	if err != nil {
		return nil, &domain.SubmissionError{Reason: "failed to sign transaction", Err: err}
	}

	if err := backend.SendTransaction(ctx, tx); err != nil {
		return nil, &domain.SubmissionError{Reason: "endpoint rejected transaction", Err: err}
	}

	d.log.Debug("broadcast accepted",
		"tx", tx.Hash().Hex(), "sender", sender.Hex(), "nonce", nonce, "gasLimit", gasLimit)

	return &domain.PendingDeployment{
		TxHash:           tx.Hash(),
		Sender:           sender,
		Nonce:            nonce,
		PredictedAddress: crypto.CreateAddress(sender, nonce),
	}, nil
}

// Wait polls for the creation receipt until the configured timeout. A
// mined receipt resolves to a DeploymentResult or, on failed status, a
// DeploymentRevertedError. Hitting the deadline yields a ConfirmationError:
// the outcome is unknown and the broadcast transaction is unaffected.
func (d *Deployer) Wait(ctx context.Context, pending *domain.PendingDeployment) (*domain.DeploymentResult, error) {
	d.mu.Lock()
	backend := d.backend
	d.mu.Unlock()
	if backend == nil {
		return nil, fmt.Errorf("not connected: Wait called before Submit")
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := backend.TransactionReceipt(ctx, pending.TxHash)
		switch {
		case err == nil:
			d.log.Debug("receipt found", "tx", pending.TxHash.Hex(), "block", receipt.BlockNumber, "status", receipt.Status)
			return resultFromReceipt(pending, receipt)
		case errors.Is(err, gethereum.NotFound):
			// Not mined yet, keep polling
		default:
			// Dropped connection or deadline hit mid-call
			return nil, &domain.ConfirmationError{TxHash: pending.TxHash, Err: err}
		}

		select {
		case <-ctx.Done():
			return nil, &domain.ConfirmationError{TxHash: pending.TxHash, Err: ctx.Err()}
		case <-ticker.C:
		}
	}
}

// connect caches the dialed backend per URL so a reused deployer never
// keeps talking to a stale endpoint.
func (d *Deployer) connect(ctx context.Context, rpcURL string) (Backend, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.backend != nil && d.rpcURL == rpcURL {
		return d.backend, nil
	}
	backend, err := d.dial(ctx, rpcURL)
	if err != nil {
		return nil, err
	}
	d.backend = backend
	d.rpcURL = rpcURL
	return backend, nil
}

// suggestFees derives EIP-1559 fee caps from the endpoint's suggestions.
func (d *Deployer) suggestFees(ctx context.Context, backend Backend) (gasFeeCap, gasTipCap *big.Int, err error) {
	gasTipCap, err = backend.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, nil, err
	}
	gasPrice, err := backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, nil, err
	}

	// The fee cap must cover the tip
	gasFeeCap = new(big.Int).Mul(gasPrice, big.NewInt(2))
	if gasFeeCap.Cmp(gasTipCap) < 0 {
		gasFeeCap = new(big.Int).Set(gasTipCap)
	}
	return gasFeeCap, gasTipCap, nil
}

// creationData builds the transaction payload: creation bytecode followed
// by the ABI-encoded constructor arguments.
func creationData(req *domain.DeploymentRequest) ([]byte, error) {
	data := make([]byte, len(req.Artifact.Bytecode))
	copy(data, req.Artifact.Bytecode)

	if len(req.ConstructorArgs) > 0 {
		packed, err := req.Artifact.ABI.Pack("", req.ConstructorArgs...)
		if err != nil {
			return nil, err
		}
		data = append(data, packed...)
	}
	return data, nil
}

func resultFromReceipt(pending *domain.PendingDeployment, receipt *types.Receipt) (*domain.DeploymentResult, error) {
	if receipt.Status == types.ReceiptStatusFailed {
		var block uint64
		if receipt.BlockNumber != nil {
			block = receipt.BlockNumber.Uint64()
		}
		return nil, &domain.DeploymentRevertedError{TxHash: pending.TxHash, BlockNumber: block}
	}

	address := receipt.ContractAddress
	if address == (common.Address{}) {
		address = pending.PredictedAddress
	}
	return &domain.DeploymentResult{
		Address:     address,
		TxHash:      pending.TxHash,
		BlockNumber: receipt.BlockNumber,
	}, nil
}

var (
	_ usecase.DeploymentSubmitter = (*Deployer)(nil)
	_ usecase.ConfirmationWaiter  = (*Deployer)(nil)
)
