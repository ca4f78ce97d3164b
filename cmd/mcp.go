package cmd

import (
	"github.com/spf13/cobra"
	mcpserver "github.com/xvierd/focusnest/internal/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server over stdio",
	Long: `Run a Model Context Protocol server exposing the timer to agent
tooling: reading state, managing tasks and settings, and driving sessions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mcpserver.NewServer(eng).Start(cmd.Context())
	},
}
