package usecase

import (
	"context"
	"sort"

	"github.com/coininu/launchpad/internal/domain"
)

// ListArtifactsResult contains the indexed artifacts
type ListArtifactsResult struct {
	Artifacts []*domain.ContractArtifact
}

// ListArtifacts lists every compiled artifact the loader can see
type ListArtifacts struct {
	artifacts ArtifactRepository
}

// NewListArtifacts creates the list-artifacts use case
func NewListArtifacts(artifacts ArtifactRepository) *ListArtifacts {
	return &ListArtifacts{artifacts: artifacts}
}

// Run returns the artifacts sorted by name
func (uc *ListArtifacts) Run(ctx context.Context) (*ListArtifactsResult, error) {
	artifacts, err := uc.artifacts.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].Name < artifacts[j].Name
	})

	return &ListArtifactsResult{Artifacts: artifacts}, nil
}
