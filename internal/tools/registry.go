// Package tools exposes the notification dispatcher as MCP tools so agents
// can send emails and push notifications through the same command path as
// the other transports.
package tools

import (
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shaharia-lab/courier/internal/dispatch"
)

// ServerName is the MCP server identifier advertised to clients.
const ServerName = "courier-notifications"

// NewServer creates the MCP server with both notification tools registered.
func NewServer(dispatcher *dispatch.Dispatcher, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: version,
	}, nil)

	h := &toolHandler{dispatcher: dispatcher}

	mcp.AddTool(server, &mcp.Tool{
		Name: "notifications_send_email",
		Description: "Send a transactional email using a named template.\n\n" +
			"Args:\n" +
			"  - template_name (string): Name of the email template\n" +
			"  - receivers (array): List of recipients with email and name\n" +
			"  - parameters (object, optional): Template variables as key-value pairs\n\n" +
			"Returns: Success or error message.",
	}, h.sendEmail)

	mcp.AddTool(server, &mcp.Tool{
		Name: "notifications_send_push_notification",
		Description: "Send a push notification to one or more devices via Firebase Cloud Messaging.\n\n" +
			"Args:\n" +
			"  - device_tokens (array): FCM device tokens to send to\n" +
			"  - title (string): Notification title\n" +
			"  - body (string): Notification body text\n" +
			"  - image_url (string, optional): URL of an image to display\n" +
			"  - payload (object, optional): Custom key-value data sent to the device\n" +
			"  - notification_type (string, optional): Display style: standard, bigText, bigPicture, inbox, messaging\n" +
			"  - custom_sound (string, optional): Custom sound name without extension\n\n" +
			"Returns: Success or error message.",
	}, h.sendPush)

	return server
}
