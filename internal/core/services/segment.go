package services

import (
	"context"
	"fmt"

	"github.com/tidemark-labs/kbridge/internal/core/domain"
	"github.com/tidemark-labs/kbridge/internal/core/ports/driven"
	"github.com/tidemark-labs/kbridge/internal/core/ports/driving"
)

// Ensure SegmentService implements the interface.
var _ driving.SegmentService = (*SegmentService)(nil)

// SegmentService manages chunks and child chunks within documents.
type SegmentService struct {
	store driven.KnowledgeStore
}

// NewSegmentService creates a new segment service.
func NewSegmentService(store driven.KnowledgeStore) *SegmentService {
	return &SegmentService{store: store}
}

func requireIDs(pairs ...[2]string) error {
	for _, pair := range pairs {
		if pair[1] == "" {
			return fmt.Errorf("%w: %s", domain.ErrMissingParameter, pair[0])
		}
	}
	return nil
}

// Add appends one chunk to a document.
func (s *SegmentService) Add(
	ctx context.Context, datasetID, documentID, content, answer string, keywords []string,
) (map[string]any, error) {
	if err := requireIDs([2]string{"dataset_id", datasetID}, [2]string{"document_id", documentID}, [2]string{"content", content}); err != nil {
		return nil, err
	}
	segment := driven.SegmentPayload{
		Content:  content,
		Answer:   answer,
		Keywords: keywords,
	}
	return s.store.AddSegments(ctx, datasetID, documentID, []driven.SegmentPayload{segment})
}

// List returns all chunks of a document.
func (s *SegmentService) List(ctx context.Context, datasetID, documentID string) (map[string]any, error) {
	if err := requireIDs([2]string{"dataset_id", datasetID}, [2]string{"document_id", documentID}); err != nil {
		return nil, err
	}
	return s.store.ListSegments(ctx, datasetID, documentID)
}

// Get returns one chunk with full details.
func (s *SegmentService) Get(ctx context.Context, datasetID, documentID, segmentID string) (map[string]any, error) {
	if err := requireIDs([2]string{"dataset_id", datasetID}, [2]string{"document_id", documentID}, [2]string{"segment_id", segmentID}); err != nil {
		return nil, err
	}
	return s.store.GetSegment(ctx, datasetID, documentID, segmentID)
}

// Update modifies a chunk. At least one field must be set.
func (s *SegmentService) Update(
	ctx context.Context, datasetID, documentID, segmentID string, update domain.SegmentUpdate,
) (map[string]any, error) {
	if err := requireIDs([2]string{"dataset_id", datasetID}, [2]string{"document_id", documentID}, [2]string{"segment_id", segmentID}); err != nil {
		return nil, err
	}
	if update.IsEmpty() {
		return nil, fmt.Errorf("%w: at least one of content, answer, keywords or enabled is required", domain.ErrInvalidConfiguration)
	}
	return s.store.UpdateSegment(ctx, datasetID, documentID, segmentID, update)
}

// Delete removes a chunk.
func (s *SegmentService) Delete(ctx context.Context, datasetID, documentID, segmentID string) (map[string]any, error) {
	if err := requireIDs([2]string{"dataset_id", datasetID}, [2]string{"document_id", documentID}, [2]string{"segment_id", segmentID}); err != nil {
		return nil, err
	}
	return s.store.DeleteSegment(ctx, datasetID, documentID, segmentID)
}

// ListChildren returns one page of child chunks under a parent segment.
func (s *SegmentService) ListChildren(
	ctx context.Context, datasetID, documentID, segmentID, keyword string, page, limit int,
) (map[string]any, error) {
	if err := requireIDs([2]string{"dataset_id", datasetID}, [2]string{"document_id", documentID}, [2]string{"segment_id", segmentID}); err != nil {
		return nil, err
	}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	return s.store.ListChildChunks(ctx, datasetID, documentID, segmentID, keyword, page, limit)
}

// CreateChild adds a child chunk under a parent segment.
func (s *SegmentService) CreateChild(
	ctx context.Context, datasetID, documentID, segmentID, content string,
) (map[string]any, error) {
	if err := requireIDs([2]string{"dataset_id", datasetID}, [2]string{"document_id", documentID}, [2]string{"segment_id", segmentID}, [2]string{"content", content}); err != nil {
		return nil, err
	}
	return s.store.CreateChildChunk(ctx, datasetID, documentID, segmentID, content)
}

// UpdateChild replaces a child chunk's content.
func (s *SegmentService) UpdateChild(
	ctx context.Context, datasetID, documentID, segmentID, childChunkID, content string,
) (map[string]any, error) {
	if err := requireIDs([2]string{"dataset_id", datasetID}, [2]string{"document_id", documentID}, [2]string{"segment_id", segmentID}, [2]string{"child_chunk_id", childChunkID}, [2]string{"content", content}); err != nil {
		return nil, err
	}
	return s.store.UpdateChildChunk(ctx, datasetID, documentID, segmentID, childChunkID, content)
}

// DeleteChild removes a child chunk.
func (s *SegmentService) DeleteChild(
	ctx context.Context, datasetID, documentID, segmentID, childChunkID string,
) (map[string]any, error) {
	if err := requireIDs([2]string{"dataset_id", datasetID}, [2]string{"document_id", documentID}, [2]string{"segment_id", segmentID}, [2]string{"child_chunk_id", childChunkID}); err != nil {
		return nil, err
	}
	return s.store.DeleteChildChunk(ctx, datasetID, documentID, segmentID, childChunkID)
}
