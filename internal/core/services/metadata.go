package services

import (
	"context"
	"fmt"

	"github.com/tidemark-labs/kbridge/internal/core/domain"
	"github.com/tidemark-labs/kbridge/internal/core/ports/driven"
	"github.com/tidemark-labs/kbridge/internal/core/ports/driving"
)

// DefaultMetadataFieldType is used when a field definition names no type.
const DefaultMetadataFieldType = "string"

// Ensure MetadataService implements the interface.
var _ driving.MetadataService = (*MetadataService)(nil)

// MetadataService manages dataset metadata fields and per-document values.
type MetadataService struct {
	store driven.KnowledgeStore
}

// NewMetadataService creates a new metadata service.
func NewMetadataService(store driven.KnowledgeStore) *MetadataService {
	return &MetadataService{store: store}
}

// AddField defines a metadata field on a dataset.
func (s *MetadataService) AddField(ctx context.Context, datasetID, name, fieldType string) (map[string]any, error) {
	if err := requireIDs([2]string{"dataset_id", datasetID}, [2]string{"name", name}); err != nil {
		return nil, err
	}
	if fieldType == "" {
		fieldType = DefaultMetadataFieldType
	}
	return s.store.AddMetadataField(ctx, datasetID, name, fieldType)
}

// UpdateField renames a metadata field.
func (s *MetadataService) UpdateField(ctx context.Context, datasetID, metadataID, name string) (map[string]any, error) {
	if err := requireIDs([2]string{"dataset_id", datasetID}, [2]string{"metadata_id", metadataID}, [2]string{"name", name}); err != nil {
		return nil, err
	}
	return s.store.UpdateMetadataField(ctx, datasetID, metadataID, name)
}

// DeleteField removes a metadata field.
func (s *MetadataService) DeleteField(ctx context.Context, datasetID, metadataID string) (map[string]any, error) {
	if err := requireIDs([2]string{"dataset_id", datasetID}, [2]string{"metadata_id", metadataID}); err != nil {
		return nil, err
	}
	return s.store.DeleteMetadataField(ctx, datasetID, metadataID)
}

// List returns the metadata fields of a dataset.
func (s *MetadataService) List(ctx context.Context, datasetID string) (map[string]any, error) {
	if datasetID == "" {
		return nil, fmt.Errorf("%w: dataset_id", domain.ErrMissingParameter)
	}
	return s.store.ListMetadata(ctx, datasetID)
}

// AssignToDocument sets one metadata value on a document.
func (s *MetadataService) AssignToDocument(
	ctx context.Context, datasetID, documentID, metadataID, name string, value any,
) (map[string]any, error) {
	if err := requireIDs([2]string{"dataset_id", datasetID}, [2]string{"document_id", documentID}, [2]string{"metadata_id", metadataID}, [2]string{"metadata_name", name}); err != nil {
		return nil, err
	}

	operations := []driven.MetadataOperation{{
		DocumentID: documentID,
		MetadataList: []domain.MetadataItem{{
			ID:    metadataID,
			Name:  name,
			Value: value,
		}},
	}}
	return s.store.AssignDocumentMetadata(ctx, datasetID, operations)
}
