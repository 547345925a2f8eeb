package mcp

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// textResult builds a successful tool result carrying one text block.
// The structured payload travels separately as the typed output.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// errorResult reports a tool failure as a text message the caller's model
// can read and react to, rather than a protocol-level error.
func errorResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(format, args...)}},
	}
}

// pluralSummary formats "Found N things." with naive pluralisation.
func pluralSummary(count int, noun string) string {
	if count == 1 {
		return fmt.Sprintf("Found 1 %s.", noun)
	}
	return fmt.Sprintf("Found %d %ss.", count, noun)
}

// countIn returns the number of entries under an array key of a payload,
// falling back to the "total" field when present.
func countIn(payload map[string]any, key string) int {
	if total, ok := payload["total"].(float64); ok {
		return int(total)
	}
	if entries, ok := payload[key].([]any); ok {
		return len(entries)
	}
	return 0
}
