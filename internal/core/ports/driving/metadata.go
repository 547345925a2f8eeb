package driving

import "context"

// MetadataService manages dataset metadata fields and per-document values.
type MetadataService interface {
	// AddField defines a metadata field. Type defaults to "string".
	AddField(ctx context.Context, datasetID, name, fieldType string) (map[string]any, error)

	// UpdateField renames a metadata field.
	UpdateField(ctx context.Context, datasetID, metadataID, name string) (map[string]any, error)

	// DeleteField removes a metadata field.
	DeleteField(ctx context.Context, datasetID, metadataID string) (map[string]any, error)

	// List returns the metadata fields of a dataset.
	List(ctx context.Context, datasetID string) (map[string]any, error)

	// AssignToDocument sets one metadata value on a document.
	AssignToDocument(ctx context.Context, datasetID, documentID, metadataID, name string, value any) (map[string]any, error)
}
