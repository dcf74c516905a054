package tools

import (
	"context"
	"io"
	"log/slog"
	"testing"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaharia-lab/courier/internal/dispatch"
	"github.com/shaharia-lab/courier/internal/notify"
	"github.com/shaharia-lab/courier/internal/provider"
)

type stubEmailSender struct {
	templates map[string]int64
	sent      int
}

func (s *stubEmailSender) ResolveTemplateID(_ context.Context, name string) (int64, bool, error) {
	id, ok := s.templates[name]
	return id, ok, nil
}

func (s *stubEmailSender) Send(_ context.Context, _ notify.Email) (string, error) {
	s.sent++
	return "message-id", nil
}

type stubPushSender struct {
	result provider.MulticastResult
	sent   int
}

func (s *stubPushSender) SendMulticast(_ context.Context, _ notify.PushNotification, _ []string) (provider.MulticastResult, error) {
	s.sent++
	return s.result, nil
}

func newTestHandler(email *stubEmailSender, push *stubPushSender) *toolHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &toolHandler{dispatcher: dispatch.New(email, push, logger)}
}

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestSendEmailTool(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		email := &stubEmailSender{templates: map[string]int64{"tp-customer-welcome": 5}}
		h := newTestHandler(email, &stubPushSender{})

		result, _, err := h.sendEmail(context.Background(), nil, &sendEmailParams{
			TemplateName: "tp-customer-welcome",
			Receivers:    []receiverParams{{Email: "user@example.com", Name: "John Doe"}},
		})
		require.NoError(t, err)
		assert.Contains(t, textOf(t, result), "tp-customer-welcome")
		assert.Contains(t, textOf(t, result), "user@example.com")
		assert.Equal(t, 1, email.sent)
	})

	t.Run("unknown template surfaces as tool error", func(t *testing.T) {
		h := newTestHandler(&stubEmailSender{templates: map[string]int64{}}, &stubPushSender{})

		_, _, err := h.sendEmail(context.Background(), nil, &sendEmailParams{
			TemplateName: "non-existent",
			Receivers:    []receiverParams{{Email: "user@example.com", Name: "John Doe"}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "non-existent")
	})

	t.Run("empty receivers rejected", func(t *testing.T) {
		email := &stubEmailSender{}
		h := newTestHandler(email, &stubPushSender{})

		_, _, err := h.sendEmail(context.Background(), nil, &sendEmailParams{
			TemplateName: "tp-customer-welcome",
		})
		require.Error(t, err)
		assert.Zero(t, email.sent)
	})
}

func TestSendPushTool(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		push := &stubPushSender{result: provider.MulticastResult{SuccessCount: 2}}
		h := newTestHandler(&stubEmailSender{}, push)

		result, _, err := h.sendPush(context.Background(), nil, &sendPushParams{
			DeviceTokens: []string{"tok-0", "tok-1"},
			Title:        "Title",
			Body:         "Body",
		})
		require.NoError(t, err)
		assert.Contains(t, textOf(t, result), "2 device(s)")
		assert.Equal(t, 1, push.sent)
	})

	t.Run("empty token list rejected", func(t *testing.T) {
		push := &stubPushSender{}
		h := newTestHandler(&stubEmailSender{}, push)

		_, _, err := h.sendPush(context.Background(), nil, &sendPushParams{
			Title: "Title",
			Body:  "Body",
		})
		require.Error(t, err)
		assert.Zero(t, push.sent)
	})

	t.Run("unknown notification type rejected", func(t *testing.T) {
		h := newTestHandler(&stubEmailSender{}, &stubPushSender{})

		_, _, err := h.sendPush(context.Background(), nil, &sendPushParams{
			DeviceTokens:     []string{"tok-0"},
			Title:            "Title",
			Body:             "Body",
			NotificationType: "BIG_TEXT",
		})
		require.Error(t, err)
	})
}

func TestNewServer(t *testing.T) {
	h := newTestHandler(&stubEmailSender{}, &stubPushSender{})
	server := NewServer(h.dispatcher, "test")
	assert.NotNil(t, server)
}
