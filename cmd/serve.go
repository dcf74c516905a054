package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shaharia-lab/courier/internal/api"
	"github.com/shaharia-lab/courier/internal/build"
	"github.com/shaharia-lab/courier/internal/config"
	"github.com/shaharia-lab/courier/internal/logger"
	"github.com/shaharia-lab/courier/internal/rpc"
	"github.com/shaharia-lab/courier/internal/server"
	"github.com/shaharia-lab/courier/internal/tools"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP and gRPC servers",
	Long:  "Start the notification service: REST API and MCP endpoint on the HTTP port, the RPC surface on the gRPC port.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "HTTP server port (overrides PORT env var)")
	serveCmd.Flags().Int("grpc-port", 0, "gRPC server port (overrides GRPC_PORT env var)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("grpc-port") {
		cfg.GRPCPort, _ = cmd.Flags().GetInt("grpc-port")
	}

	log := logger.New(os.Stdout, cfg.SlogLevel())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dispatcher, err := buildDispatcher(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("building dispatcher: %w", err)
	}

	apiSrv := api.New(dispatcher, log)
	mcpSrv := tools.NewServer(dispatcher, build.Version)
	httpSrv := server.New(apiSrv, mcpSrv, cfg.Port, log)
	rpcSrv := rpc.New(dispatcher, cfg.GRPCPort, log)

	log.Info("courier starting",
		"http_port", cfg.Port,
		"grpc_port", cfg.GRPCPort,
		"push_provider", cfg.PushProvider,
	)

	errCh := make(chan error, 2)
	go func() { errCh <- httpSrv.Run(ctx) }()
	go func() { errCh <- rpcSrv.Run(ctx) }()

	err = <-errCh
	cancel()
	if second := <-errCh; err == nil {
		err = second
	}
	return err
}
