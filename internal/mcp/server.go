// Package mcp provides a Model Context Protocol server for nextskill.
// It exposes Next.js project detection and the skills corpus as MCP
// tools that any MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer creates an MCP server with all nextskill tools registered.
func NewServer(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "nextskill",
		Version: version,
	}, nil)
	registerTools(server)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
// Every nextskill tool is read-only: detection and skill lookup never
// touch the project.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all nextskill tools to the server.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "detect",
		Description: "Detect Next.js projects under a directory. Returns version, router type, package manager, TypeScript config, test framework, styling, and the commands to run for dev/build/test/lint.",
		Annotations: readOnlyAnnotations(),
	}, handleDetect())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "skill_list",
		Description: "List available Next.js skills with name, description, and tier. Supports filtering by tier (micro, compact, reference).",
		Annotations: readOnlyAnnotations(),
	}, handleSkillList())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "skill_show",
		Description: "Retrieve the full markdown content of a Next.js skill by name.",
		Annotations: readOnlyAnnotations(),
	}, handleSkillShow())
}
