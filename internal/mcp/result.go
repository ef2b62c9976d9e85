package mcp

import (
	"encoding/json"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// AnalysisResult is the structured output returned by read-only tools.
type AnalysisResult struct {
	Description string `json:"description"`
	Data        any    `json:"data"`
}

// textResult marshals v to JSON and wraps it in a CallToolResult with a
// single TextContent block.
func textResult(v any) *mcpsdk.CallToolResult {
	b, _ := json.MarshalIndent(v, "", "  ")
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: string(b)},
		},
	}
}

// errResult returns a CallToolResult that signals an error.
func errResult(err error) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: err.Error()},
		},
		IsError: true,
	}
}
