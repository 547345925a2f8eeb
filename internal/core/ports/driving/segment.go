package driving

import (
	"context"

	"github.com/tidemark-labs/kbridge/internal/core/domain"
)

// SegmentService manages chunks and child chunks within documents.
type SegmentService interface {
	// Add appends one chunk to a document.
	Add(ctx context.Context, datasetID, documentID, content, answer string, keywords []string) (map[string]any, error)

	// List returns all chunks of a document.
	List(ctx context.Context, datasetID, documentID string) (map[string]any, error)

	// Get returns one chunk with full details.
	Get(ctx context.Context, datasetID, documentID, segmentID string) (map[string]any, error)

	// Update modifies a chunk. At least one field must be set.
	Update(ctx context.Context, datasetID, documentID, segmentID string, update domain.SegmentUpdate) (map[string]any, error)

	// Delete removes a chunk.
	Delete(ctx context.Context, datasetID, documentID, segmentID string) (map[string]any, error)

	// ListChildren returns one page of child chunks under a parent segment.
	ListChildren(ctx context.Context, datasetID, documentID, segmentID, keyword string, page, limit int) (map[string]any, error)

	// CreateChild adds a child chunk under a parent segment.
	CreateChild(ctx context.Context, datasetID, documentID, segmentID, content string) (map[string]any, error)

	// UpdateChild replaces a child chunk's content.
	UpdateChild(ctx context.Context, datasetID, documentID, segmentID, childChunkID, content string) (map[string]any, error)

	// DeleteChild removes a child chunk.
	DeleteChild(ctx context.Context, datasetID, documentID, segmentID, childChunkID string) (map[string]any, error)
}
