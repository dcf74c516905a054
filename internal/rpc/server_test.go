package rpc

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/shaharia-lab/courier/internal/dispatch"
	"github.com/shaharia-lab/courier/internal/notify"
	"github.com/shaharia-lab/courier/internal/provider"
)

type stubEmailSender struct {
	templates map[string]int64
	sendErr   error
	sent      int
}

func (s *stubEmailSender) ResolveTemplateID(_ context.Context, name string) (int64, bool, error) {
	id, ok := s.templates[name]
	return id, ok, nil
}

func (s *stubEmailSender) Send(_ context.Context, _ notify.Email) (string, error) {
	if s.sendErr != nil {
		return "", s.sendErr
	}
	s.sent++
	return "message-id", nil
}

type stubPushSender struct {
	result provider.MulticastResult
}

func (s *stubPushSender) SendMulticast(_ context.Context, _ notify.PushNotification, _ []string) (provider.MulticastResult, error) {
	return s.result, nil
}

func newTestRPCServer(email *stubEmailSender, push *stubPushSender) *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(dispatch.New(email, push, logger), 0, logger)
}

func TestSendTransactionalEmailRPC(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		email := &stubEmailSender{templates: map[string]int64{"tp-customer-welcome": 5}}
		srv := newTestRPCServer(email, &stubPushSender{})

		resp, err := srv.SendTransactionalEmail(context.Background(), &SendEmailRequest{
			TemplateName: "tp-customer-welcome",
			Receivers:    []ReceiverMessage{{Email: "user@example.com", Name: "John Doe"}},
		})
		require.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Equal(t, 1, email.sent)
	})

	t.Run("unknown template maps to NotFound", func(t *testing.T) {
		srv := newTestRPCServer(&stubEmailSender{templates: map[string]int64{}}, &stubPushSender{})

		_, err := srv.SendTransactionalEmail(context.Background(), &SendEmailRequest{
			TemplateName: "non-existent",
			Receivers:    []ReceiverMessage{{Email: "user@example.com", Name: "John Doe"}},
		})
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("empty receivers map to InvalidArgument", func(t *testing.T) {
		srv := newTestRPCServer(&stubEmailSender{}, &stubPushSender{})

		_, err := srv.SendTransactionalEmail(context.Background(), &SendEmailRequest{
			TemplateName: "tp-customer-welcome",
		})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("bad receiver email maps to InvalidArgument", func(t *testing.T) {
		srv := newTestRPCServer(&stubEmailSender{}, &stubPushSender{})

		_, err := srv.SendTransactionalEmail(context.Background(), &SendEmailRequest{
			TemplateName: "tp-customer-welcome",
			Receivers:    []ReceiverMessage{{Email: "not-an-address", Name: "John Doe"}},
		})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("provider failure maps to Internal", func(t *testing.T) {
		email := &stubEmailSender{
			templates: map[string]int64{"tp-customer-welcome": 5},
			sendErr:   &notify.ProviderError{Provider: "postmark", Err: errors.New("timeout")},
		}
		srv := newTestRPCServer(email, &stubPushSender{})

		_, err := srv.SendTransactionalEmail(context.Background(), &SendEmailRequest{
			TemplateName: "tp-customer-welcome",
			Receivers:    []ReceiverMessage{{Email: "user@example.com", Name: "John Doe"}},
		})
		assert.Equal(t, codes.Internal, status.Code(err))
	})
}

func TestSendPushNotificationRPC(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		push := &stubPushSender{result: provider.MulticastResult{SuccessCount: 1}}
		srv := newTestRPCServer(&stubEmailSender{}, push)

		resp, err := srv.SendPushNotification(context.Background(), &SendPushRequest{
			DeviceTokens: []string{"tok-0"},
			Title:        "Title",
			Body:         "Body",
		})
		require.NoError(t, err)
		assert.NotNil(t, resp)
	})

	t.Run("empty token list maps to InvalidArgument", func(t *testing.T) {
		srv := newTestRPCServer(&stubEmailSender{}, &stubPushSender{})

		_, err := srv.SendPushNotification(context.Background(), &SendPushRequest{
			Title: "Title",
			Body:  "Body",
		})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("unknown notification type maps to InvalidArgument", func(t *testing.T) {
		srv := newTestRPCServer(&stubEmailSender{}, &stubPushSender{})

		_, err := srv.SendPushNotification(context.Background(), &SendPushRequest{
			DeviceTokens:     []string{"tok-0"},
			Title:            "Title",
			Body:             "Body",
			NotificationType: "BIG_TEXT",
		})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestJSONCodec(t *testing.T) {
	codec := jsonCodec{}

	in := &SendPushRequest{DeviceTokens: []string{"tok-0"}, Title: "Title", Body: "Body"}
	raw, err := codec.Marshal(in)
	require.NoError(t, err)

	out := new(SendPushRequest)
	require.NoError(t, codec.Unmarshal(raw, out))
	assert.Equal(t, in, out)
	assert.Equal(t, "json", codec.Name())
}
