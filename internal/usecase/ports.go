package usecase

import (
	"context"

	"github.com/coininu/launchpad/internal/domain"
)

// ArtifactRepository provides access to compiled contract artifacts
type ArtifactRepository interface {
	// Get resolves a contract name to its artifact. Returns
	// *domain.ArtifactNotFoundError when nothing matches.
	Get(ctx context.Context, name string) (*domain.ContractArtifact, error)
	// List returns all indexed artifacts
	List(ctx context.Context) ([]*domain.ContractArtifact, error)
}

// DeploymentSubmitter signs a contract-creation transaction and broadcasts
// it. Returns as soon as the endpoint accepts the broadcast; it does not
// block for confirmation. Each successful call irreversibly consumes one
// nonce of the sender.
type DeploymentSubmitter interface {
	Submit(ctx context.Context, req *domain.DeploymentRequest) (*domain.PendingDeployment, error)
}

// ConfirmationWaiter blocks until the creation transaction is included in a
// block, bounded by the configured timeout. Cancellation releases only the
// local wait; the broadcast transaction is unaffected.
type ConfirmationWaiter interface {
	Wait(ctx context.Context, pending *domain.PendingDeployment) (*domain.DeploymentResult, error)
}

// NetworkResolver resolves network names to configurations
type NetworkResolver interface {
	Resolve(name string) (*domain.Network, error)
	Names() []string
}

// ProgressSink receives stage transitions and messages during a deployment
type ProgressSink interface {
	OnStage(ctx context.Context, stage domain.Stage)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnStage(context.Context, domain.Stage) {}
func (NopProgress) Info(string)                           {}
func (NopProgress) Error(string)                          {}
