// Package main provides the entry point for the nextskill CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	nextskillmcp "github.com/seaward/nextskill/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run nextskill as a Model Context Protocol (MCP) server over stdio.

This exposes detection and the skills corpus as MCP tools that any
MCP-capable agent environment can use (Claude Code, Cursor, Windsurf,
Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "nextskill": {
        "command": "nextskill",
        "args": ["serve"]
      }
    }
  }

Available tools: detect, skill_list, skill_show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := nextskillmcp.NewServer(buildVersion())
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
