// Package provider contains the delivery capability interfaces and the
// concrete email/push providers behind them. Exactly one implementation of
// each interface is selected at process start and reused, read-only, across
// all requests.
package provider

import (
	"context"

	"github.com/shaharia-lab/courier/internal/notify"
)

// EmailSender is the email delivery capability. Template lookup and the
// actual send are two independently failing steps: existence is checked
// before any network side effect that could partially succeed.
type EmailSender interface {
	// ResolveTemplateID looks up the provider template id for a template
	// name. ok is false when the name has no corresponding template.
	ResolveTemplateID(ctx context.Context, name string) (id int64, ok bool, err error)
	// Send delivers the email and returns the provider's delivery
	// identifier.
	Send(ctx context.Context, email notify.Email) (string, error)
}

// PushSender is the push delivery capability. A multicast send attempts every
// token: a failure for one token never prevents delivery to the rest, and
// partial failure is reported in the result rather than as an error.
type PushSender interface {
	SendMulticast(ctx context.Context, n notify.PushNotification, tokens []string) (MulticastResult, error)
}

// MulticastResult is the aggregate outcome of one multicast send.
// FailedTokens preserves the input order of the tokens that failed.
type MulticastResult struct {
	SuccessCount int
	FailureCount int
	FailedTokens []string
}
