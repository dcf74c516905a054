package provider

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/shaharia-lab/courier/internal/notify"
)

// messagingScope is the OAuth scope required for FCM v1 sends.
const messagingScope = "https://www.googleapis.com/auth/firebase.messaging"

const defaultSendTimeout = 10 * time.Second

// FCMHTTPSender delivers push notifications over the FCM v1 REST API. There
// is no true multicast on this path: one authenticated POST is issued per
// device token, with a single bearer token reused across the batch.
type FCMHTTPSender struct {
	client    *resty.Client
	tokens    oauth2.TokenSource
	projectID string
	logger    *slog.Logger
}

// NewFCMHTTPSender builds the raw-HTTP push sender. Credentials come from
// credentialsFile when set, otherwise from application default credentials.
func NewFCMHTTPSender(ctx context.Context, projectID, credentialsFile string, logger *slog.Logger) (*FCMHTTPSender, error) {
	if projectID == "" {
		return nil, fmt.Errorf("push provider: projectID is required")
	}

	var ts oauth2.TokenSource
	if credentialsFile != "" {
		raw, err := os.ReadFile(credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("reading google credentials: %w", err)
		}
		creds, err := google.CredentialsFromJSON(ctx, raw, messagingScope)
		if err != nil {
			return nil, fmt.Errorf("parsing google credentials: %w", err)
		}
		ts = creds.TokenSource
	} else {
		var err error
		ts, err = google.DefaultTokenSource(ctx, messagingScope)
		if err != nil {
			return nil, fmt.Errorf("resolving default google credentials: %w", err)
		}
	}

	client := resty.New().
		SetBaseURL("https://fcm.googleapis.com").
		SetTimeout(defaultSendTimeout)

	return &FCMHTTPSender{
		client:    client,
		tokens:    ts,
		projectID: projectID,
		logger:    logger,
	}, nil
}

// SendMulticast acquires one bearer token and then posts to each device token
// in input order. A failure for one token is logged and counted, never
// aborting the remaining sends. Only token acquisition fails the whole batch.
func (s *FCMHTTPSender) SendMulticast(ctx context.Context, n notify.PushNotification, tokens []string) (MulticastResult, error) {
	tok, err := s.tokens.Token()
	if err != nil {
		return MulticastResult{}, &notify.ProviderError{Provider: "fcm", Err: fmt.Errorf("obtaining access token: %w", err)}
	}

	var result MulticastResult
	for _, deviceToken := range tokens {
		if err := s.send(ctx, tok.AccessToken, n, deviceToken); err != nil {
			s.logger.Error("push send failed for device token",
				slog.String("device_token", deviceToken),
				slog.String("error", err.Error()),
			)
			result.FailureCount++
			result.FailedTokens = append(result.FailedTokens, deviceToken)
			continue
		}
		result.SuccessCount++
	}
	return result, nil
}

func (s *FCMHTTPSender) send(ctx context.Context, accessToken string, n notify.PushNotification, deviceToken string) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetHeader("Content-Type", "application/json").
		SetBody(httpMessage(n, deviceToken)).
		Post(fmt.Sprintf("/v1/projects/%s/messages:send", s.projectID))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("fcm responded %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
