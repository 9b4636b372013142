package cli

import (
	mcpadapter "github.com/ScottGunn22/dirchecker/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the dirchecker MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dirchecker MCP server (stdio)",
		Long:  "Start the dirchecker MCP server using stdio transport. This lets AI assistants run structure checks and report validations and inspect the QC run log.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewQCServer()
			return server.ServeStdio(s)
		},
	}
}
