package cmd

import (
	"github.com/huangsam/yomu/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:     "mcp",
	Short:   "Start the Yomu MCP server",
	Long:    `Launch an MCP server that allows AI agents to score Japanese texts via standard tools.`,
	PreRunE: plainSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, cacheManager)
	},
}
