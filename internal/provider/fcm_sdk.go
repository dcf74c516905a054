package provider

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/shaharia-lab/courier/internal/notify"
)

// multicastClient is the slice of the FCM messaging client used by
// FCMSDKSender. *messaging.Client satisfies it.
type multicastClient interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

// FCMSDKSender delivers push notifications through the Firebase Admin SDK,
// which accepts the whole token list in one call and reports a per-token
// outcome aligned with the input order.
type FCMSDKSender struct {
	client multicastClient
}

// NewFCMSDKSender initializes the Firebase app and its messaging client.
// credentialsFile may be empty, in which case application default
// credentials are used.
func NewFCMSDKSender(ctx context.Context, projectID, credentialsFile string) (*FCMSDKSender, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("initializing fcm messaging client: %w", err)
	}
	return &FCMSDKSender{client: client}, nil
}

// SendMulticast sends the notification to every token in one SDK call. The
// batch response is folded into a MulticastResult; per-token failures never
// surface as an error.
func (s *FCMSDKSender) SendMulticast(ctx context.Context, n notify.PushNotification, tokens []string) (MulticastResult, error) {
	resp, err := s.client.SendEachForMulticast(ctx, multicastMessage(n, tokens))
	if err != nil {
		return MulticastResult{}, &notify.ProviderError{Provider: "fcm", Err: err}
	}

	result := MulticastResult{
		SuccessCount: resp.SuccessCount,
		FailureCount: resp.FailureCount,
	}
	for i, r := range resp.Responses {
		if !r.Success {
			result.FailedTokens = append(result.FailedTokens, tokens[i])
		}
	}
	return result, nil
}
