package tools

import (
	"context"
	"fmt"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shaharia-lab/courier/internal/dispatch"
	"github.com/shaharia-lab/courier/internal/notify"
)

// sendPushParams is the input schema for the
// notifications_send_push_notification tool.
type sendPushParams struct {
	DeviceTokens     []string          `json:"device_tokens" jsonschema:"FCM device tokens to send the notification to"`
	Title            string            `json:"title" jsonschema:"Notification title"`
	Body             string            `json:"body" jsonschema:"Notification body text"`
	ImageURL         string            `json:"image_url,omitempty" jsonschema:"URL of an image to display in the notification"`
	Payload          map[string]string `json:"payload,omitempty" jsonschema:"Custom data payload sent to the device"`
	NotificationType string            `json:"notification_type,omitempty" jsonschema:"Display style: standard, bigText, bigPicture, inbox or messaging"`
	CustomSound      string            `json:"custom_sound,omitempty" jsonschema:"Custom sound name without extension"`
}

func (h *toolHandler) sendPush(ctx context.Context, _ *mcp.CallToolRequest, params *sendPushParams) (*mcp.CallToolResult, any, error) {
	if len(params.DeviceTokens) == 0 {
		return nil, nil, fmt.Errorf("at least one device token is required")
	}

	typ, err := notify.ParseNotificationType(params.NotificationType)
	if err != nil {
		return nil, nil, err
	}

	err = h.dispatcher.SendPushNotification(ctx, dispatch.SendPushNotificationCommand{
		DeviceTokens: params.DeviceTokens,
		Title:        params.Title,
		Body:         params.Body,
		ImageURL:     params.ImageURL,
		Payload:      params.Payload,
		Type:         typ,
		CustomSound:  params.CustomSound,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to send push notification: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Push notification sent successfully to %d device(s)", len(params.DeviceTokens)),
			},
		},
	}, nil, nil
}
