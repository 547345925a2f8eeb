package driving

import "context"

// DatasetService manages remote knowledge bases (datasets).
type DatasetService interface {
	// Create creates an empty knowledge base. Permission defaults to
	// "only_me" when blank.
	Create(ctx context.Context, name, permission string) (map[string]any, error)

	// List returns one page of knowledge bases.
	List(ctx context.Context, page, limit int) (map[string]any, error)

	// Delete removes a knowledge base.
	Delete(ctx context.Context, datasetID string) (map[string]any, error)
}
