package provider

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mrz1836/postmark"

	"github.com/shaharia-lab/courier/internal/notify"
)

// templatePageSize is the number of templates fetched per listing call.
// Template catalogs are small; one page is enough in practice.
const templatePageSize = 300

// EmailConfig holds the Postmark credentials and the fixed sender identity
// used for every outbound email.
type EmailConfig struct {
	APIKey       string
	AccountToken string
	From         string
}

// PostmarkSender delivers transactional emails through the Postmark API.
type PostmarkSender struct {
	client *postmark.Client
	from   string
	logger *slog.Logger
}

// NewPostmarkSender validates the configuration and builds a PostmarkSender.
// Missing credentials fail fast here rather than on the first send.
func NewPostmarkSender(cfg EmailConfig, logger *slog.Logger) (*PostmarkSender, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("email provider: APIKey is required")
	}
	if cfg.From == "" || !strings.Contains(cfg.From, "@") {
		return nil, fmt.Errorf("email provider: From must be a valid email address")
	}
	return &PostmarkSender{
		client: postmark.NewClient(cfg.APIKey, cfg.AccountToken),
		from:   cfg.From,
		logger: logger,
	}, nil
}

// ResolveTemplateID lists the server's templates and matches by exact name.
func (p *PostmarkSender) ResolveTemplateID(ctx context.Context, name string) (int64, bool, error) {
	templates, _, err := p.client.GetTemplates(ctx, templatePageSize, 0)
	if err != nil {
		return 0, false, &notify.ProviderError{Provider: "postmark", Err: fmt.Errorf("listing templates: %w", err)}
	}
	for _, t := range templates {
		if t.Name == name {
			return t.TemplateID, true, nil
		}
	}
	return 0, false, nil
}

// Send delivers the email through the templated-send endpoint and returns the
// provider message id. The id is logged here; callers treat the send as
// fire-and-forget.
func (p *PostmarkSender) Send(ctx context.Context, email notify.Email) (string, error) {
	to := make([]string, 0, len(email.Receivers))
	for _, r := range email.Receivers {
		to = append(to, fmt.Sprintf("%s <%s>", r.Name, r.Email))
	}

	resp, err := p.client.SendTemplatedEmail(ctx, postmark.TemplatedEmail{
		TemplateID:    email.TemplateID,
		TemplateModel: email.Parameters,
		From:          p.from,
		To:            strings.Join(to, ", "),
	})
	if err != nil {
		return "", &notify.ProviderError{Provider: "postmark", Err: err}
	}
	if resp.ErrorCode > 0 {
		return "", &notify.ProviderError{
			Provider: "postmark",
			Err:      fmt.Errorf("error %d: %s", resp.ErrorCode, resp.Message),
		}
	}

	p.logger.Debug("email accepted by provider",
		slog.String("message_id", resp.MessageID),
		slog.Int64("template_id", email.TemplateID),
		slog.Int("receivers", len(email.Receivers)),
	)
	return resp.MessageID, nil
}
