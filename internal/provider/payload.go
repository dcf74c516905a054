package provider

import (
	"firebase.google.com/go/v4/messaging"

	"github.com/shaharia-lab/courier/internal/notify"
)

// multicastMessage shapes a PushNotification into the structured encoding
// used by the FCM SDK: a notification block carrying title/body/image plus a
// separate data block carrying the caller payload unmodified. The image field
// is omitted entirely when absent.
func multicastMessage(n notify.PushNotification, tokens []string) *messaging.MulticastMessage {
	return &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title:    n.Title,
			Body:     n.Body,
			ImageURL: n.ImageURL,
		},
		Data: n.Payload,
	}
}

// fcmSendRequest is the body of an FCM v1 messages:send call.
type fcmSendRequest struct {
	Message fcmMessage `json:"message"`
}

type fcmMessage struct {
	Token   string            `json:"token"`
	Data    map[string]string `json:"data"`
	Android fcmAndroidConfig  `json:"android"`
}

type fcmAndroidConfig struct {
	Priority string `json:"priority"`
}

// flattenData shapes a PushNotification into the flattened data-only
// encoding used by the raw-HTTP transport. That transport cannot express
// rich display styles through a notification block, so every display hint
// travels as opaque string data for the client-side renderer.
//
// Reserved keys are set first and the caller payload is merged in after, so
// a payload key named like a reserved key wins. imageUrl and customSound are
// added only when present; notificationType only when it is not the default.
func flattenData(n notify.PushNotification) map[string]string {
	data := map[string]string{
		"title": n.Title,
		"body":  n.Body,
	}
	if n.ImageURL != "" {
		data["imageUrl"] = n.ImageURL
	}
	if n.Type != notify.TypeStandard {
		data["notificationType"] = n.Type.WireToken()
	}
	if n.CustomSound != "" {
		data["customSound"] = n.CustomSound
	}
	for k, v := range n.Payload {
		data[k] = v
	}
	return data
}

// httpMessage builds the per-token FCM v1 request body for the raw-HTTP
// transport. Delivery priority is fixed to high for this encoding.
func httpMessage(n notify.PushNotification, token string) fcmSendRequest {
	return fcmSendRequest{
		Message: fcmMessage{
			Token:   token,
			Data:    flattenData(n),
			Android: fcmAndroidConfig{Priority: "high"},
		},
	}
}
