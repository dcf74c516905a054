// Package cmd contains the courier CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shaharia-lab/courier/internal/build"
)

var rootCmd = &cobra.Command{
	Use:     "courier",
	Short:   "Outbound notification dispatch service",
	Long:    "Courier dispatches transactional emails and mobile push notifications on behalf of upstream callers over HTTP, gRPC, the command line, and MCP.",
	Version: build.String(),
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sendEmailCmd)
	rootCmd.AddCommand(sendPushCmd)
	rootCmd.AddCommand(mcpCmd)
}
