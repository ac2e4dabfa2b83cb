package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// ContractArtifact is a compiled contract: creation bytecode plus ABI.
// Produced once by the compiler and read-only afterwards.
type ContractArtifact struct {
	Name     string
	Source   string // path of the .sol file the artifact was compiled from
	Bytecode []byte
	ABI      abi.ABI
}

// ConstructorArity returns the number of constructor arguments the
// artifact's ABI declares.
func (a *ContractArtifact) ConstructorArity() int {
	return len(a.ABI.Constructor.Inputs)
}

// Network is a resolved deployment target.
type Network struct {
	Name   string
	RPCURL string
	// ChainID is 0 when not pinned in config; the submitter then adopts
	// whatever the endpoint reports.
	ChainID uint64
}

// DeploymentRequest carries everything needed to submit one
// contract-creation transaction. Built immediately before submission,
// never persisted. The credential travels here explicitly instead of
// through ambient environment state so the workflow can be exercised
// with injected fakes.
type DeploymentRequest struct {
	Artifact        *ContractArtifact
	ConstructorArgs []any
	PrivateKeyHex   string
	Network         *Network
}

// PendingDeployment is the handle returned once a creation transaction
// has been accepted for broadcast. PredictedAddress is the CREATE
// address derived from (sender, nonce); the workflow observes it but
// does not control it.
type PendingDeployment struct {
	TxHash           common.Hash
	Sender           common.Address
	Nonce            uint64
	PredictedAddress common.Address
}

// DeploymentResult is the confirmed outcome. Immutable once observed.
type DeploymentResult struct {
	Address     common.Address
	TxHash      common.Hash
	BlockNumber *big.Int
}

// Stage identifies where in the deployment workflow execution currently is.
type Stage string

const (
	StageIdle                 Stage = "Idle"
	StageLoading              Stage = "Loading"
	StageSubmitting           Stage = "Submitting"
	StageAwaitingConfirmation Stage = "AwaitingConfirmation"
	StageConfirmed            Stage = "Confirmed"
	StageFailed               Stage = "Failed"
)

// Terminal reports whether no further transition exists from the stage.
// A failed run requires a fresh invocation; there is no retry edge.
func (s Stage) Terminal() bool {
	return s == StageConfirmed || s == StageFailed
}
