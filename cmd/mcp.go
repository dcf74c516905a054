package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/shaharia-lab/courier/internal/build"
	"github.com/shaharia-lab/courier/internal/config"
	"github.com/shaharia-lab/courier/internal/logger"
	"github.com/shaharia-lab/courier/internal/tools"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the notification tools over MCP stdio",
	Long:  "Run an MCP server on stdin/stdout exposing the send-email and send-push-notification tools to agent clients.",
	RunE:  runMCP,
}

func runMCP(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// stdout carries the MCP protocol; logs must go to stderr.
	log := logger.New(os.Stderr, cfg.SlogLevel())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dispatcher, err := buildDispatcher(ctx, cfg, log)
	if err != nil {
		return err
	}

	server := tools.NewServer(dispatcher, build.Version)
	return server.Run(ctx, &mcp.StdioTransport{})
}
