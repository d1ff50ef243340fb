package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/designqa/designqa/internal/adapters/inbound/mcp"
)

func newMCPCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the designqa MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(opts))
	return cmd
}

func newMCPServeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start designqa MCP server (stdio)",
		Long:  "Start the designqa MCP server using stdio transport. This lets AI assistants score designs and read the active rules.",
		RunE: func(cmd *cobra.Command, args []string) error {
			// stdout carries the protocol; logs stay on stderr.
			a, err := newApp(opts, "warn")
			if err != nil {
				return err
			}
			defer a.close()

			s := mcpadapter.NewDesignQAMCPServer(a.svc, version)
			return server.ServeStdio(s)
		},
	}
}
