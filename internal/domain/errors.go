package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Sentinel errors for deployment operations
var (
	// ErrArtifactNotFound is returned when no compiled artifact matches a name
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrMissingCredential is returned when no signing key was supplied
	ErrMissingCredential = errors.New("missing signing credential")

	// ErrNetworkNotConfigured is returned when a network name has no RPC endpoint
	ErrNetworkNotConfigured = errors.New("network not configured")
)

// ArtifactNotFoundError is returned by the artifact loader when a contract
// name does not match any compiled artifact. Misspelled names and skipped
// compilation are the most common operator errors, so the message carries
// close matches when any exist.
type ArtifactNotFoundError struct {
	Name        string
	Suggestions []string
}

func (e *ArtifactNotFoundError) Error() string {
	msg := fmt.Sprintf("no compiled artifact found for contract %q (was the project compiled?)", e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf("\n\ndid you mean:\n  - %s", strings.Join(e.Suggestions, "\n  - "))
	}
	return msg
}

func (e *ArtifactNotFoundError) Unwrap() error { return ErrArtifactNotFound }

// SubmissionError is returned when a creation transaction cannot be
// broadcast: the credential is absent or malformed, the balance cannot
// cover gas, or the endpoint rejects the request.
type SubmissionError struct {
	Reason string
	Err    error
}

func (e *SubmissionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("submission failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("submission failed: %s", e.Reason)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// ConfirmationError is returned when the wait for inclusion times out or
// the connection drops. The outcome on-chain is unknown: the transaction
// may still land, so the error keeps the hash for manual follow-up.
type ConfirmationError struct {
	TxHash common.Hash
	Err    error
}

func (e *ConfirmationError) Error() string {
	return fmt.Sprintf("confirmation of tx %s failed: %v (outcome unknown, the transaction may still be included)", e.TxHash.Hex(), e.Err)
}

func (e *ConfirmationError) Unwrap() error { return e.Err }

// DeploymentRevertedError is returned when the creation transaction was
// mined but reverted. Distinct from ConfirmationError: the outcome is
// known and final.
type DeploymentRevertedError struct {
	TxHash      common.Hash
	BlockNumber uint64
}

func (e *DeploymentRevertedError) Error() string {
	return fmt.Sprintf("deployment reverted on-chain in block %d (tx %s)", e.BlockNumber, e.TxHash.Hex())
}
