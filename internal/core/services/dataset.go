package services

import (
	"context"
	"fmt"

	"github.com/tidemark-labs/kbridge/internal/core/domain"
	"github.com/tidemark-labs/kbridge/internal/core/ports/driven"
	"github.com/tidemark-labs/kbridge/internal/core/ports/driving"
)

// DefaultDatasetPermission is used when a create request names none.
const DefaultDatasetPermission = "only_me"

// Ensure DatasetService implements the interface.
var _ driving.DatasetService = (*DatasetService)(nil)

// DatasetService manages remote knowledge bases.
type DatasetService struct {
	store driven.KnowledgeStore
}

// NewDatasetService creates a new dataset service.
func NewDatasetService(store driven.KnowledgeStore) *DatasetService {
	return &DatasetService{store: store}
}

// Create creates an empty knowledge base.
func (s *DatasetService) Create(ctx context.Context, name, permission string) (map[string]any, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name", domain.ErrMissingParameter)
	}
	if permission == "" {
		permission = DefaultDatasetPermission
	}
	return s.store.CreateDataset(ctx, name, permission)
}

// List returns one page of knowledge bases.
func (s *DatasetService) List(ctx context.Context, page, limit int) (map[string]any, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	return s.store.ListDatasets(ctx, page, limit)
}

// Delete removes a knowledge base.
func (s *DatasetService) Delete(ctx context.Context, datasetID string) (map[string]any, error) {
	if datasetID == "" {
		return nil, fmt.Errorf("%w: dataset_id", domain.ErrMissingParameter)
	}
	return s.store.DeleteDataset(ctx, datasetID)
}
