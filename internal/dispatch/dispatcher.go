// Package dispatch holds the command objects and the in-process dispatcher
// that every transport adapter invokes. Each command is handled as one
// independent unit of work: resolve and validate, build a value object,
// invoke the delivery capability, surface typed errors.
package dispatch

import (
	"context"
	"log/slog"

	"github.com/shaharia-lab/courier/internal/notify"
	"github.com/shaharia-lab/courier/internal/provider"
)

// Dispatcher executes notification commands against the providers selected
// at process start. It is safe for concurrent use; commands carry all
// request state.
type Dispatcher struct {
	email  provider.EmailSender
	push   provider.PushSender
	logger *slog.Logger
}

// New creates a Dispatcher.
func New(email provider.EmailSender, push provider.PushSender, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{email: email, push: push, logger: logger}
}

// SendTransactionalEmail resolves the template name, builds the Email value
// object, and hands it to the email provider. The provider's delivery id is
// deliberately discarded; the send is fire-and-forget from the caller's
// perspective.
func (d *Dispatcher) SendTransactionalEmail(ctx context.Context, cmd SendTransactionalEmailCommand) error {
	templateID, ok, err := d.email.ResolveTemplateID(ctx, cmd.TemplateName)
	if err != nil {
		return err
	}
	if !ok {
		return &notify.TemplateNotFoundError{Name: cmd.TemplateName}
	}

	email, err := notify.NewEmail(templateID, cmd.Parameters, cmd.Receivers)
	if err != nil {
		return err
	}

	if _, err := d.email.Send(ctx, email); err != nil {
		return err
	}

	d.logger.Info("transactional email dispatched",
		slog.String("template_name", cmd.TemplateName),
		slog.Int64("template_id", templateID),
		slog.Int("receivers", len(cmd.Receivers)),
	)
	return nil
}

// SendPushNotification builds the PushNotification value object and sends it
// to every device token. Per-token failures are reported to the operator as
// a warning, never to the caller: the request as a whole, attempting all
// tokens, succeeded.
func (d *Dispatcher) SendPushNotification(ctx context.Context, cmd SendPushNotificationCommand) error {
	n, err := notify.NewPushNotification(cmd.Title, cmd.Body, cmd.ImageURL, cmd.Payload, cmd.Type, cmd.CustomSound)
	if err != nil {
		return err
	}

	result, err := d.push.SendMulticast(ctx, n, cmd.DeviceTokens)
	if err != nil {
		return err
	}

	if result.FailureCount > 0 {
		d.logger.Warn("push delivery partially failed",
			slog.Int("failure_count", result.FailureCount),
			slog.Int("token_count", len(cmd.DeviceTokens)),
			slog.Any("failed_tokens", result.FailedTokens),
		)
		return nil
	}

	d.logger.Info("push notification dispatched",
		slog.Int("token_count", len(cmd.DeviceTokens)),
	)
	return nil
}
