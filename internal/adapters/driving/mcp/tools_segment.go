package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tidemark-labs/kbridge/internal/core/domain"
)

// AddChunkInput is the input schema for the add_chunk tool.
type AddChunkInput struct {
	DatasetID  string   `json:"dataset_id" jsonschema:"the ID of the knowledge base"`
	DocumentID string   `json:"document_id" jsonschema:"the ID of the document"`
	Content    string   `json:"content" jsonschema:"the chunk text"`
	Answer     string   `json:"answer,omitempty" jsonschema:"the answer text, for Q&A form documents"`
	Keywords   []string `json:"keywords,omitempty" jsonschema:"keywords attached to the chunk"`
}

// ListChunksInput is the input schema for the list_chunks tool.
type ListChunksInput struct {
	DatasetID  string `json:"dataset_id" jsonschema:"the ID of the knowledge base"`
	DocumentID string `json:"document_id" jsonschema:"the ID of the document"`
}

// GetChunkInput is the input schema for the get_chunk tool.
type GetChunkInput struct {
	DatasetID  string `json:"dataset_id" jsonschema:"the ID of the knowledge base"`
	DocumentID string `json:"document_id" jsonschema:"the ID of the document"`
	SegmentID  string `json:"segment_id" jsonschema:"the ID of the chunk"`
}

// UpdateChunkInput is the input schema for the update_chunk tool.
type UpdateChunkInput struct {
	DatasetID  string   `json:"dataset_id" jsonschema:"the ID of the knowledge base"`
	DocumentID string   `json:"document_id" jsonschema:"the ID of the document"`
	SegmentID  string   `json:"segment_id" jsonschema:"the ID of the chunk"`
	Content    *string  `json:"content,omitempty" jsonschema:"replacement chunk text"`
	Answer     *string  `json:"answer,omitempty" jsonschema:"replacement answer text"`
	Keywords   []string `json:"keywords,omitempty" jsonschema:"replacement keywords"`
	Enabled    *bool    `json:"enabled,omitempty" jsonschema:"enable or disable the chunk"`
}

// DeleteChunkInput is the input schema for the delete_chunk tool.
type DeleteChunkInput struct {
	DatasetID  string `json:"dataset_id" jsonschema:"the ID of the knowledge base"`
	DocumentID string `json:"document_id" jsonschema:"the ID of the document"`
	SegmentID  string `json:"segment_id" jsonschema:"the ID of the chunk to delete"`
}

// ListChildChunksInput is the input schema for the list_child_chunks tool.
type ListChildChunksInput struct {
	DatasetID  string `json:"dataset_id" jsonschema:"the ID of the knowledge base"`
	DocumentID string `json:"document_id" jsonschema:"the ID of the document"`
	SegmentID  string `json:"segment_id" jsonschema:"the ID of the parent chunk"`
	Keyword    string `json:"keyword,omitempty" jsonschema:"filter child chunks by keyword"`
	Page       int    `json:"page,omitempty" jsonschema:"page number, starting at 1 (default 1)"`
	Limit      int    `json:"limit,omitempty" jsonschema:"page size (default 20)"`
}

// CreateChildChunkInput is the input schema for the create_child_chunk tool.
type CreateChildChunkInput struct {
	DatasetID  string `json:"dataset_id" jsonschema:"the ID of the knowledge base"`
	DocumentID string `json:"document_id" jsonschema:"the ID of the document"`
	SegmentID  string `json:"segment_id" jsonschema:"the ID of the parent chunk"`
	Content    string `json:"content" jsonschema:"the child chunk text"`
}

// UpdateChildChunkInput is the input schema for the update_child_chunk tool.
type UpdateChildChunkInput struct {
	DatasetID    string `json:"dataset_id" jsonschema:"the ID of the knowledge base"`
	DocumentID   string `json:"document_id" jsonschema:"the ID of the document"`
	SegmentID    string `json:"segment_id" jsonschema:"the ID of the parent chunk"`
	ChildChunkID string `json:"child_chunk_id" jsonschema:"the ID of the child chunk"`
	Content      string `json:"content" jsonschema:"replacement child chunk text"`
}

// DeleteChildChunkInput is the input schema for the delete_child_chunk tool.
type DeleteChildChunkInput struct {
	DatasetID    string `json:"dataset_id" jsonschema:"the ID of the knowledge base"`
	DocumentID   string `json:"document_id" jsonschema:"the ID of the document"`
	SegmentID    string `json:"segment_id" jsonschema:"the ID of the parent chunk"`
	ChildChunkID string `json:"child_chunk_id" jsonschema:"the ID of the child chunk to delete"`
}

func (s *Server) registerSegmentTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_chunk",
		Description: "Add a chunk to a document",
	}, s.handleAddChunk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_chunks",
		Description: "List the chunks of a document",
	}, s.handleListChunks)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_chunk",
		Description: "Get one chunk with full details",
	}, s.handleGetChunk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_chunk",
		Description: "Update a chunk's content, answer, keywords or enabled state",
	}, s.handleUpdateChunk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_chunk",
		Description: "Delete a chunk from a document",
	}, s.handleDeleteChunk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_child_chunks",
		Description: "List child chunks under a parent chunk",
	}, s.handleListChildChunks)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_child_chunk",
		Description: "Create a child chunk under a parent chunk",
	}, s.handleCreateChildChunk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_child_chunk",
		Description: "Replace a child chunk's content",
	}, s.handleUpdateChildChunk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_child_chunk",
		Description: "Delete a child chunk",
	}, s.handleDeleteChildChunk)
}

func (s *Server) handleAddChunk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddChunkInput,
) (*mcp.CallToolResult, map[string]any, error) {
	payload, err := s.ports.Segment.Add(ctx, input.DatasetID, input.DocumentID, input.Content, input.Answer, input.Keywords)
	if err != nil {
		return errorResult("Failed to add chunk: %v", err), nil, nil
	}

	return textResult("Chunk added to document " + input.DocumentID + "."), payload, nil
}

func (s *Server) handleListChunks(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListChunksInput,
) (*mcp.CallToolResult, map[string]any, error) {
	payload, err := s.ports.Segment.List(ctx, input.DatasetID, input.DocumentID)
	if err != nil {
		return errorResult("Failed to list chunks: %v", err), nil, nil
	}

	return textResult(pluralSummary(countIn(payload, "data"), "chunk")), payload, nil
}

func (s *Server) handleGetChunk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetChunkInput,
) (*mcp.CallToolResult, map[string]any, error) {
	payload, err := s.ports.Segment.Get(ctx, input.DatasetID, input.DocumentID, input.SegmentID)
	if err != nil {
		return errorResult("Failed to get chunk: %v", err), nil, nil
	}

	return textResult("Chunk " + input.SegmentID + " retrieved."), payload, nil
}

func (s *Server) handleUpdateChunk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateChunkInput,
) (*mcp.CallToolResult, map[string]any, error) {
	update := domain.SegmentUpdate{
		Content:  input.Content,
		Answer:   input.Answer,
		Keywords: input.Keywords,
		Enabled:  input.Enabled,
	}

	payload, err := s.ports.Segment.Update(ctx, input.DatasetID, input.DocumentID, input.SegmentID, update)
	if err != nil {
		return errorResult("Failed to update chunk: %v", err), nil, nil
	}

	return textResult("Chunk " + input.SegmentID + " updated successfully."), payload, nil
}

func (s *Server) handleDeleteChunk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteChunkInput,
) (*mcp.CallToolResult, map[string]any, error) {
	payload, err := s.ports.Segment.Delete(ctx, input.DatasetID, input.DocumentID, input.SegmentID)
	if err != nil {
		return errorResult("Failed to delete chunk: %v", err), nil, nil
	}

	return textResult("Chunk " + input.SegmentID + " deleted successfully."), payload, nil
}

func (s *Server) handleListChildChunks(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListChildChunksInput,
) (*mcp.CallToolResult, map[string]any, error) {
	payload, err := s.ports.Segment.ListChildren(
		ctx, input.DatasetID, input.DocumentID, input.SegmentID, input.Keyword, input.Page, input.Limit)
	if err != nil {
		return errorResult("Failed to list child chunks: %v", err), nil, nil
	}

	return textResult(pluralSummary(countIn(payload, "data"), "child chunk")), payload, nil
}

func (s *Server) handleCreateChildChunk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateChildChunkInput,
) (*mcp.CallToolResult, map[string]any, error) {
	payload, err := s.ports.Segment.CreateChild(ctx, input.DatasetID, input.DocumentID, input.SegmentID, input.Content)
	if err != nil {
		return errorResult("Failed to create child chunk: %v", err), nil, nil
	}

	return textResult("Child chunk created under chunk " + input.SegmentID + "."), payload, nil
}

func (s *Server) handleUpdateChildChunk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateChildChunkInput,
) (*mcp.CallToolResult, map[string]any, error) {
	payload, err := s.ports.Segment.UpdateChild(
		ctx, input.DatasetID, input.DocumentID, input.SegmentID, input.ChildChunkID, input.Content)
	if err != nil {
		return errorResult("Failed to update child chunk: %v", err), nil, nil
	}

	return textResult("Child chunk " + input.ChildChunkID + " updated successfully."), payload, nil
}

func (s *Server) handleDeleteChildChunk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteChildChunkInput,
) (*mcp.CallToolResult, map[string]any, error) {
	payload, err := s.ports.Segment.DeleteChild(
		ctx, input.DatasetID, input.DocumentID, input.SegmentID, input.ChildChunkID)
	if err != nil {
		return errorResult("Failed to delete child chunk: %v", err), nil, nil
	}

	return textResult("Child chunk " + input.ChildChunkID + " deleted successfully."), payload, nil
}
