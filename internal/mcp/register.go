package mcp

import mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

// RegisterAllTools wires every refract tool into the MCP server.
func RegisterAllTools(s *mcpsdk.Server, state *Server) {
	registerRefactorTools(s, state)
	registerAnalysisTools(s, state)
}
