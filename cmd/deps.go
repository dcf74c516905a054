package cmd

import (
	"context"
	"log/slog"

	"github.com/shaharia-lab/courier/internal/config"
	"github.com/shaharia-lab/courier/internal/dispatch"
	"github.com/shaharia-lab/courier/internal/provider"
)

// buildDispatcher composes the providers selected by configuration into the
// dispatcher shared by every transport. This is the single place where the
// push strategy is fixed for the process lifetime.
func buildDispatcher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dispatch.Dispatcher, error) {
	emailSender, err := provider.NewPostmarkSender(provider.EmailConfig{
		APIKey:       cfg.EmailAPIKey,
		AccountToken: cfg.EmailAccountToken,
		From:         cfg.EmailFrom,
	}, logger)
	if err != nil {
		return nil, err
	}

	pushSender, err := provider.NewPushSender(ctx, provider.PushConfig{
		Strategy:        cfg.PushProvider,
		ProjectID:       cfg.FirebaseProjectID,
		CredentialsFile: cfg.GoogleCredentialsFile,
	}, logger)
	if err != nil {
		return nil, err
	}

	return dispatch.New(emailSender, pushSender, logger), nil
}
