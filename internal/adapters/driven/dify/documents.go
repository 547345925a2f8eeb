package dify

import (
	"context"
	"net/url"
	"strconv"

	"github.com/tidemark-labs/kbridge/internal/core/ports/driven"
)

// CreateDocumentByText creates a document from text content.
func (c *Client) CreateDocumentByText(
	ctx context.Context, datasetID string, req driven.DocumentRequest,
) (map[string]any, error) {
	return c.postWrite(ctx, "/datasets/"+datasetID+"/document/create-by-text", req)
}

// UpdateDocumentByText updates an existing document in place from text.
func (c *Client) UpdateDocumentByText(
	ctx context.Context, datasetID, documentID string, req driven.DocumentRequest,
) (map[string]any, error) {
	return c.postWrite(ctx, "/datasets/"+datasetID+"/documents/"+documentID+"/update-by-text", req)
}

// ListDocuments returns one page of documents, optionally keyword-filtered.
func (c *Client) ListDocuments(
	ctx context.Context, datasetID, keyword string, page, limit int,
) (map[string]any, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))
	if keyword != "" {
		params.Set("keyword", keyword)
	}
	return c.get(ctx, "/datasets/"+datasetID+"/documents", params)
}

// DeleteDocument removes a document.
func (c *Client) DeleteDocument(ctx context.Context, datasetID, documentID string) (map[string]any, error) {
	return c.delete(ctx, "/datasets/"+datasetID+"/documents/"+documentID)
}

// IndexingStatus reports embedding progress for a creation batch.
func (c *Client) IndexingStatus(ctx context.Context, datasetID, batch string) (map[string]any, error) {
	return c.get(ctx, "/datasets/"+datasetID+"/documents/"+batch+"/indexing-status", nil)
}
