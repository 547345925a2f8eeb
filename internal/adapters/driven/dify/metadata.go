package dify

import (
	"context"

	"github.com/tidemark-labs/kbridge/internal/core/ports/driven"
)

// AddMetadataField defines a metadata field on a dataset.
func (c *Client) AddMetadataField(ctx context.Context, datasetID, name, fieldType string) (map[string]any, error) {
	body := map[string]any{
		"type": fieldType,
		"name": name,
	}
	return c.post(ctx, "/datasets/"+datasetID+"/metadata", body)
}

// UpdateMetadataField renames a metadata field.
func (c *Client) UpdateMetadataField(ctx context.Context, datasetID, metadataID, name string) (map[string]any, error) {
	return c.patch(ctx, "/datasets/"+datasetID+"/metadata/"+metadataID, map[string]any{"name": name})
}

// DeleteMetadataField removes a metadata field.
func (c *Client) DeleteMetadataField(ctx context.Context, datasetID, metadataID string) (map[string]any, error) {
	return c.delete(ctx, "/datasets/"+datasetID+"/metadata/"+metadataID)
}

// ListMetadata returns the metadata fields of a dataset.
func (c *Client) ListMetadata(ctx context.Context, datasetID string) (map[string]any, error) {
	return c.get(ctx, "/datasets/"+datasetID+"/metadata", nil)
}

// AssignDocumentMetadata sets metadata values on documents.
func (c *Client) AssignDocumentMetadata(
	ctx context.Context, datasetID string, operations []driven.MetadataOperation,
) (map[string]any, error) {
	body := map[string]any{"operation_data": operations}
	return c.post(ctx, "/datasets/"+datasetID+"/documents/metadata", body)
}
