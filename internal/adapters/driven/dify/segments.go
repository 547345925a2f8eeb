package dify

import (
	"context"
	"net/url"
	"strconv"

	"github.com/tidemark-labs/kbridge/internal/core/domain"
	"github.com/tidemark-labs/kbridge/internal/core/ports/driven"
)

// AddSegments appends chunks to a document.
func (c *Client) AddSegments(
	ctx context.Context, datasetID, documentID string, segments []driven.SegmentPayload,
) (map[string]any, error) {
	path := "/datasets/" + datasetID + "/documents/" + documentID + "/segments"
	return c.post(ctx, path, map[string]any{"segments": segments})
}

// ListSegments returns all chunks of a document.
func (c *Client) ListSegments(ctx context.Context, datasetID, documentID string) (map[string]any, error) {
	return c.get(ctx, "/datasets/"+datasetID+"/documents/"+documentID+"/segments", nil)
}

// GetSegment returns one chunk with full details.
func (c *Client) GetSegment(ctx context.Context, datasetID, documentID, segmentID string) (map[string]any, error) {
	return c.get(ctx, "/datasets/"+datasetID+"/documents/"+documentID+"/segments/"+segmentID, nil)
}

// UpdateSegment modifies a chunk. Only set fields are sent, so the remote
// keeps current values for the rest.
func (c *Client) UpdateSegment(
	ctx context.Context, datasetID, documentID, segmentID string, update domain.SegmentUpdate,
) (map[string]any, error) {
	segment := map[string]any{}
	if update.Content != nil {
		segment["content"] = *update.Content
	}
	if update.Answer != nil {
		segment["answer"] = *update.Answer
	}
	if update.Keywords != nil {
		segment["keywords"] = update.Keywords
	}
	if update.Enabled != nil {
		segment["enabled"] = *update.Enabled
	}

	path := "/datasets/" + datasetID + "/documents/" + documentID + "/segments/" + segmentID
	return c.post(ctx, path, map[string]any{"segment": segment})
}

// DeleteSegment removes a chunk.
func (c *Client) DeleteSegment(ctx context.Context, datasetID, documentID, segmentID string) (map[string]any, error) {
	return c.delete(ctx, "/datasets/"+datasetID+"/documents/"+documentID+"/segments/"+segmentID)
}

// ListChildChunks returns one page of child chunks under a parent segment.
func (c *Client) ListChildChunks(
	ctx context.Context, datasetID, documentID, segmentID, keyword string, page, limit int,
) (map[string]any, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))
	if keyword != "" {
		params.Set("q", keyword)
	}
	path := "/datasets/" + datasetID + "/documents/" + documentID + "/segments/" + segmentID + "/child_chunks"
	return c.get(ctx, path, params)
}

// CreateChildChunk adds a child chunk under a parent segment.
func (c *Client) CreateChildChunk(
	ctx context.Context, datasetID, documentID, segmentID, content string,
) (map[string]any, error) {
	path := "/datasets/" + datasetID + "/documents/" + documentID + "/segments/" + segmentID + "/child_chunks"
	return c.post(ctx, path, map[string]any{"content": content})
}

// UpdateChildChunk replaces a child chunk's content.
func (c *Client) UpdateChildChunk(
	ctx context.Context, datasetID, documentID, segmentID, childChunkID, content string,
) (map[string]any, error) {
	path := "/datasets/" + datasetID + "/documents/" + documentID +
		"/segments/" + segmentID + "/child_chunks/" + childChunkID
	return c.patch(ctx, path, map[string]any{"content": content})
}

// DeleteChildChunk removes a child chunk.
func (c *Client) DeleteChildChunk(
	ctx context.Context, datasetID, documentID, segmentID, childChunkID string,
) (map[string]any, error) {
	path := "/datasets/" + datasetID + "/documents/" + documentID +
		"/segments/" + segmentID + "/child_chunks/" + childChunkID
	return c.delete(ctx, path)
}
