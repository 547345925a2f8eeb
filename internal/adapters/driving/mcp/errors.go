// Package mcp provides an MCP (Model Context Protocol) server adapter for
// kbridge. It exposes the remote knowledge-base operations as callable tools
// for AI assistants.
package mcp

import "errors"

// ErrMissingDatasetService is returned when the dataset service is not provided.
var ErrMissingDatasetService = errors.New("mcp: dataset service is required")

// ErrMissingDocumentService is returned when the document service is not provided.
var ErrMissingDocumentService = errors.New("mcp: document service is required")

// ErrMissingSegmentService is returned when the segment service is not provided.
var ErrMissingSegmentService = errors.New("mcp: segment service is required")

// ErrMissingMetadataService is returned when the metadata service is not provided.
var ErrMissingMetadataService = errors.New("mcp: metadata service is required")

// ErrMissingRetrievalService is returned when the retrieval service is not provided.
var ErrMissingRetrievalService = errors.New("mcp: retrieval service is required")
