package tools

import (
	"context"
	"fmt"
	"strings"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shaharia-lab/courier/internal/dispatch"
	"github.com/shaharia-lab/courier/internal/notify"
)

type toolHandler struct {
	dispatcher *dispatch.Dispatcher
}

// receiverParams is one recipient in the send-email tool input.
type receiverParams struct {
	Email string `json:"email" jsonschema:"Recipient email address"`
	Name  string `json:"name" jsonschema:"Recipient display name"`
}

// sendEmailParams is the input schema for the notifications_send_email tool.
type sendEmailParams struct {
	TemplateName string           `json:"template_name" jsonschema:"Name of the email template"`
	Receivers    []receiverParams `json:"receivers" jsonschema:"List of email recipients"`
	Parameters   map[string]any   `json:"parameters,omitempty" jsonschema:"Template variables as key-value pairs"`
}

func (h *toolHandler) sendEmail(ctx context.Context, _ *mcp.CallToolRequest, params *sendEmailParams) (*mcp.CallToolResult, any, error) {
	if len(params.Receivers) == 0 {
		return nil, nil, fmt.Errorf("at least one receiver is required")
	}

	receivers := make([]notify.Receiver, 0, len(params.Receivers))
	emails := make([]string, 0, len(params.Receivers))
	for _, r := range params.Receivers {
		receiver, err := notify.NewReceiver(r.Email, r.Name)
		if err != nil {
			return nil, nil, err
		}
		receivers = append(receivers, receiver)
		emails = append(emails, r.Email)
	}

	err := h.dispatcher.SendTransactionalEmail(ctx, dispatch.SendTransactionalEmailCommand{
		TemplateName: params.TemplateName,
		Parameters:   params.Parameters,
		Receivers:    receivers,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to send email: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Email sent successfully using template %q to %s",
					params.TemplateName, strings.Join(emails, ", ")),
			},
		},
	}, nil, nil
}
