package provider

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaharia-lab/courier/internal/notify"
)

type stubMulticastClient struct {
	resp *messaging.BatchResponse
	err  error

	gotMessage *messaging.MulticastMessage
}

func (s *stubMulticastClient) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	s.gotMessage = message
	return s.resp, s.err
}

func TestFCMSDKSender_SendMulticast(t *testing.T) {
	n := mustPush(t, "Title", "Body", "", map[string]string{"k": "v"}, notify.TypeStandard, "")

	t.Run("partial failure is reported, not raised", func(t *testing.T) {
		stub := &stubMulticastClient{
			resp: &messaging.BatchResponse{
				SuccessCount: 1,
				FailureCount: 1,
				Responses: []*messaging.SendResponse{
					{Success: true, MessageID: "m-0"},
					{Success: false, Error: errors.New("unregistered token")},
				},
			},
		}
		sender := &FCMSDKSender{client: stub}

		result, err := sender.SendMulticast(context.Background(), n, []string{"tok-0", "tok-1"})
		require.NoError(t, err)

		assert.Equal(t, 1, result.SuccessCount)
		assert.Equal(t, 1, result.FailureCount)
		assert.Equal(t, []string{"tok-1"}, result.FailedTokens)
	})

	t.Run("all succeed", func(t *testing.T) {
		stub := &stubMulticastClient{
			resp: &messaging.BatchResponse{
				SuccessCount: 2,
				Responses: []*messaging.SendResponse{
					{Success: true}, {Success: true},
				},
			},
		}
		sender := &FCMSDKSender{client: stub}

		result, err := sender.SendMulticast(context.Background(), n, []string{"tok-0", "tok-1"})
		require.NoError(t, err)
		assert.Empty(t, result.FailedTokens)
		assert.Equal(t, 2, result.SuccessCount)
	})

	t.Run("transport failure wraps as provider error", func(t *testing.T) {
		stub := &stubMulticastClient{err: errors.New("connection refused")}
		sender := &FCMSDKSender{client: stub}

		_, err := sender.SendMulticast(context.Background(), n, []string{"tok-0"})
		var provErr *notify.ProviderError
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, "fcm", provErr.Provider)
	})

	t.Run("message carries the structured encoding", func(t *testing.T) {
		stub := &stubMulticastClient{resp: &messaging.BatchResponse{}}
		sender := &FCMSDKSender{client: stub}

		_, err := sender.SendMulticast(context.Background(), n, []string{"tok-0"})
		require.NoError(t, err)
		require.NotNil(t, stub.gotMessage)
		assert.Equal(t, "Title", stub.gotMessage.Notification.Title)
		assert.Equal(t, map[string]string{"k": "v"}, stub.gotMessage.Data)
	})
}
