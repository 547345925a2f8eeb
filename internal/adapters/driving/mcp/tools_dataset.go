package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CreateDatasetInput is the input schema for the create_dataset tool.
type CreateDatasetInput struct {
	Name       string `json:"name" jsonschema:"the name of the knowledge base to create"`
	Permission string `json:"permission,omitempty" jsonschema:"access permission: only_me, all_team_members or partial_members (default only_me)"`
}

// ListDatasetsInput is the input schema for the list_datasets tool.
type ListDatasetsInput struct {
	Page  int `json:"page,omitempty" jsonschema:"page number, starting at 1 (default 1)"`
	Limit int `json:"limit,omitempty" jsonschema:"page size (default 20)"`
}

// DeleteDatasetInput is the input schema for the delete_dataset tool.
type DeleteDatasetInput struct {
	DatasetID string `json:"dataset_id" jsonschema:"the ID of the knowledge base to delete"`
}

func (s *Server) registerDatasetTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_dataset",
		Description: "Create an empty knowledge base",
	}, s.handleCreateDataset)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_datasets",
		Description: "List knowledge bases with pagination",
	}, s.handleListDatasets)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_dataset",
		Description: "Delete a knowledge base and everything in it",
	}, s.handleDeleteDataset)
}

func (s *Server) handleCreateDataset(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateDatasetInput,
) (*mcp.CallToolResult, map[string]any, error) {
	payload, err := s.ports.Dataset.Create(ctx, input.Name, input.Permission)
	if err != nil {
		return errorResult("Failed to create dataset: %v", err), nil, nil
	}

	id, _ := payload["id"].(string)
	return textResult("Dataset '" + input.Name + "' created successfully. ID: " + id), payload, nil
}

func (s *Server) handleListDatasets(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListDatasetsInput,
) (*mcp.CallToolResult, map[string]any, error) {
	payload, err := s.ports.Dataset.List(ctx, input.Page, input.Limit)
	if err != nil {
		return errorResult("Failed to list datasets: %v", err), nil, nil
	}

	return textResult(pluralSummary(countIn(payload, "data"), "dataset")), payload, nil
}

func (s *Server) handleDeleteDataset(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteDatasetInput,
) (*mcp.CallToolResult, map[string]any, error) {
	payload, err := s.ports.Dataset.Delete(ctx, input.DatasetID)
	if err != nil {
		return errorResult("Failed to delete dataset: %v", err), nil, nil
	}

	return textResult("Dataset " + input.DatasetID + " deleted successfully."), payload, nil
}
