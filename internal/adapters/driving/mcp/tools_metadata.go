package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AddMetadataFieldInput is the input schema for the add_metadata_field tool.
type AddMetadataFieldInput struct {
	DatasetID string `json:"dataset_id" jsonschema:"the ID of the knowledge base"`
	Name      string `json:"name" jsonschema:"the metadata field name"`
	Type      string `json:"type,omitempty" jsonschema:"the field type: string, number or time (default string)"`
}

// UpdateMetadataFieldInput is the input schema for the update_metadata_field tool.
type UpdateMetadataFieldInput struct {
	DatasetID  string `json:"dataset_id" jsonschema:"the ID of the knowledge base"`
	MetadataID string `json:"metadata_id" jsonschema:"the ID of the metadata field"`
	Name       string `json:"name" jsonschema:"the new field name"`
}

// DeleteMetadataFieldInput is the input schema for the delete_metadata_field tool.
type DeleteMetadataFieldInput struct {
	DatasetID  string `json:"dataset_id" jsonschema:"the ID of the knowledge base"`
	MetadataID string `json:"metadata_id" jsonschema:"the ID of the metadata field to delete"`
}

// ListMetadataInput is the input schema for the list_metadata tool.
type ListMetadataInput struct {
	DatasetID string `json:"dataset_id" jsonschema:"the ID of the knowledge base"`
}

// UpdateDocumentMetadataInput is the input schema for the update_document_metadata tool.
type UpdateDocumentMetadataInput struct {
	DatasetID  string `json:"dataset_id" jsonschema:"the ID of the knowledge base"`
	DocumentID string `json:"document_id" jsonschema:"the ID of the document"`
	MetadataID string `json:"metadata_id" jsonschema:"the ID of the metadata field"`
	Name       string `json:"name" jsonschema:"the metadata field name"`
	Value      any    `json:"value" jsonschema:"the value to assign"`
}

func (s *Server) registerMetadataTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_metadata_field",
		Description: "Define a metadata field on a knowledge base",
	}, s.handleAddMetadataField)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_metadata_field",
		Description: "Rename a metadata field",
	}, s.handleUpdateMetadataField)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_metadata_field",
		Description: "Delete a metadata field from a knowledge base",
	}, s.handleDeleteMetadataField)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_metadata",
		Description: "List the metadata fields of a knowledge base",
	}, s.handleListMetadata)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_document_metadata",
		Description: "Assign a metadata value to a document",
	}, s.handleUpdateDocumentMetadata)
}

func (s *Server) handleAddMetadataField(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddMetadataFieldInput,
) (*mcp.CallToolResult, map[string]any, error) {
	payload, err := s.ports.Metadata.AddField(ctx, input.DatasetID, input.Name, input.Type)
	if err != nil {
		return errorResult("Failed to add metadata field: %v", err), nil, nil
	}

	return textResult("Metadata field '" + input.Name + "' created successfully."), payload, nil
}

func (s *Server) handleUpdateMetadataField(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateMetadataFieldInput,
) (*mcp.CallToolResult, map[string]any, error) {
	payload, err := s.ports.Metadata.UpdateField(ctx, input.DatasetID, input.MetadataID, input.Name)
	if err != nil {
		return errorResult("Failed to update metadata field: %v", err), nil, nil
	}

	return textResult("Metadata field " + input.MetadataID + " renamed to '" + input.Name + "'."), payload, nil
}

func (s *Server) handleDeleteMetadataField(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteMetadataFieldInput,
) (*mcp.CallToolResult, map[string]any, error) {
	payload, err := s.ports.Metadata.DeleteField(ctx, input.DatasetID, input.MetadataID)
	if err != nil {
		return errorResult("Failed to delete metadata field: %v", err), nil, nil
	}

	return textResult("Metadata field " + input.MetadataID + " deleted successfully."), payload, nil
}

func (s *Server) handleListMetadata(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListMetadataInput,
) (*mcp.CallToolResult, map[string]any, error) {
	payload, err := s.ports.Metadata.List(ctx, input.DatasetID)
	if err != nil {
		return errorResult("Failed to list metadata fields: %v", err), nil, nil
	}

	return textResult("Metadata fields retrieved."), payload, nil
}

func (s *Server) handleUpdateDocumentMetadata(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateDocumentMetadataInput,
) (*mcp.CallToolResult, map[string]any, error) {
	payload, err := s.ports.Metadata.AssignToDocument(
		ctx, input.DatasetID, input.DocumentID, input.MetadataID, input.Name, input.Value)
	if err != nil {
		return errorResult("Failed to assign metadata: %v", err), nil, nil
	}

	return textResult("Metadata assigned to document " + input.DocumentID + "."), payload, nil
}
