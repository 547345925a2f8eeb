package services

import (
	"context"
	"fmt"

	"github.com/tidemark-labs/kbridge/internal/core/domain"
	"github.com/tidemark-labs/kbridge/internal/core/ports/driven"
	"github.com/tidemark-labs/kbridge/internal/core/ports/driving"
)

// Ensure RetrievalService implements the interface.
var _ driving.RetrievalService = (*RetrievalService)(nil)

// RetrievalService searches chunks within a dataset.
type RetrievalService struct {
	store driven.KnowledgeStore
}

// NewRetrievalService creates a new retrieval service.
func NewRetrievalService(store driven.KnowledgeStore) *RetrievalService {
	return &RetrievalService{store: store}
}

// Retrieve runs a retrieval query with defaults applied.
func (s *RetrievalService) Retrieve(
	ctx context.Context, datasetID string, query domain.RetrievalQuery,
) (map[string]any, error) {
	if datasetID == "" {
		return nil, fmt.Errorf("%w: dataset_id", domain.ErrMissingParameter)
	}
	if query.Query == "" {
		return nil, fmt.Errorf("%w: query", domain.ErrMissingParameter)
	}
	if query.SearchMethod == "" {
		query.SearchMethod = domain.DefaultSearchMethod
	}
	if query.TopK <= 0 {
		query.TopK = domain.DefaultTopK
	}
	return s.store.Retrieve(ctx, datasetID, query)
}
