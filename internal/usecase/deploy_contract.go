package usecase

import (
	"context"
	"fmt"

	"github.com/coininu/launchpad/internal/config"
	"github.com/coininu/launchpad/internal/domain"
)

// DeployContractParams contains parameters for a single deployment
type DeployContractParams struct {
	ContractName    string
	ConstructorArgs []any
	Progress        ProgressSink
}

// DeployContractResult contains the outcome of a deployment
type DeployContractResult struct {
	Artifact *domain.ContractArtifact
	Network  *domain.Network
	Pending  *domain.PendingDeployment
	Result   *domain.DeploymentResult
	Stage    domain.Stage
}

// DeployContract runs the load -> submit -> await-confirmation workflow.
// Strictly sequential, one deployment in flight, no retries: every error
// surfaces to the caller, and a failed run requires a fresh invocation.
type DeployContract struct {
	config    *config.RuntimeConfig
	artifacts ArtifactRepository
	submitter DeploymentSubmitter
	waiter    ConfirmationWaiter
}

// NewDeployContract creates the deploy use case
func NewDeployContract(
	cfg *config.RuntimeConfig,
	artifacts ArtifactRepository,
	submitter DeploymentSubmitter,
	waiter ConfirmationWaiter,
) *DeployContract {
	return &DeployContract{
		config:    cfg,
		artifacts: artifacts,
		submitter: submitter,
		waiter:    waiter,
	}
}

// Run executes the workflow. The returned result carries the terminal
// stage; on error the result still reports how far execution got, so the
// operator can judge whether a transaction may already have been
// broadcast before resubmitting by hand.
func (uc *DeployContract) Run(ctx context.Context, params DeployContractParams) (*DeployContractResult, error) {
	progress := params.Progress
	if progress == nil {
		progress = NopProgress{}
	}

	result := &DeployContractResult{Stage: domain.StageIdle}

	if uc.config.Network == nil {
		result.Stage = domain.StageFailed
		return result, fmt.Errorf("no network selected, --network flag is required")
	}
	result.Network = uc.config.Network

	if uc.config.PrivateKey == "" {
		result.Stage = domain.StageFailed
		return result, &domain.SubmissionError{
			Reason: "PRIVATE_KEY is not set in the environment",
			Err:    domain.ErrMissingCredential,
		}
	}

	// Stage 1: resolve the artifact. Fails before anything touches the
	// network, so a name typo never broadcasts a transaction.
	progress.OnStage(ctx, domain.StageLoading)
	artifact, err := uc.artifacts.Get(ctx, params.ContractName)
	if err != nil {
		result.Stage = domain.StageFailed
		return result, err
	}
	result.Artifact = artifact

	if arity := artifact.ConstructorArity(); arity != len(params.ConstructorArgs) {
		result.Stage = domain.StageFailed
		return result, fmt.Errorf("contract %s expects %d constructor argument(s), got %d",
			artifact.Name, arity, len(params.ConstructorArgs))
	}

	// Stage 2: sign and broadcast
	progress.OnStage(ctx, domain.StageSubmitting)
	pending, err := uc.submitter.Submit(ctx, &domain.DeploymentRequest{
		Artifact:        artifact,
		ConstructorArgs: params.ConstructorArgs,
		PrivateKeyHex:   uc.config.PrivateKey,
		Network:         uc.config.Network,
	})
	if err != nil {
		result.Stage = domain.StageFailed
		return result, err
	}
	result.Pending = pending

	// Stage 3: await inclusion
	progress.OnStage(ctx, domain.StageAwaitingConfirmation)
	confirmed, err := uc.waiter.Wait(ctx, pending)
	if err != nil {
		result.Stage = domain.StageFailed
		return result, err
	}
	result.Result = confirmed

	progress.OnStage(ctx, domain.StageConfirmed)
	result.Stage = domain.StageConfirmed
	return result, nil
}
