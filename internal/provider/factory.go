package provider

import (
	"context"
	"fmt"
	"log/slog"
)

// Push strategy selectors. The choice is fixed for the process lifetime.
const (
	PushStrategySDK  = "sdk"
	PushStrategyHTTP = "http"
)

// PushConfig selects and configures the active push delivery strategy.
type PushConfig struct {
	Strategy        string
	ProjectID       string
	CredentialsFile string
}

// NewPushSender builds the PushSender for the configured strategy. An empty
// strategy defaults to the SDK path.
func NewPushSender(ctx context.Context, cfg PushConfig, logger *slog.Logger) (PushSender, error) {
	switch cfg.Strategy {
	case PushStrategyHTTP:
		return NewFCMHTTPSender(ctx, cfg.ProjectID, cfg.CredentialsFile, logger)
	case "", PushStrategySDK:
		return NewFCMSDKSender(ctx, cfg.ProjectID, cfg.CredentialsFile)
	default:
		return nil, fmt.Errorf("unknown push strategy %q (want %q or %q)", cfg.Strategy, PushStrategySDK, PushStrategyHTTP)
	}
}
