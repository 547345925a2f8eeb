package dify

import (
	"context"
	"net/url"
	"strconv"
)

// CreateDataset creates an empty knowledge base.
func (c *Client) CreateDataset(ctx context.Context, name, permission string) (map[string]any, error) {
	body := map[string]any{
		"name":       name,
		"permission": permission,
	}
	return c.post(ctx, "/datasets", body)
}

// ListDatasets returns one page of knowledge bases.
func (c *Client) ListDatasets(ctx context.Context, page, limit int) (map[string]any, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))
	return c.get(ctx, "/datasets", params)
}

// DeleteDataset removes a knowledge base.
func (c *Client) DeleteDataset(ctx context.Context, datasetID string) (map[string]any, error) {
	return c.delete(ctx, "/datasets/"+datasetID)
}
