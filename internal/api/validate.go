package api

import (
	"fmt"
	"strings"
)

// Violation is a single request-validation failure. Violations are collected
// and returned together so a caller can fix everything in one pass.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type receiverRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type emailSendRequest struct {
	TemplateName string            `json:"templateName"`
	Parameters   map[string]any    `json:"parameters,omitempty"`
	Receivers    []receiverRequest `json:"receivers"`
}

func (r emailSendRequest) validate() []Violation {
	var violations []Violation
	if strings.TrimSpace(r.TemplateName) == "" {
		violations = append(violations, Violation{Field: "templateName", Message: "must not be empty"})
	}
	if len(r.Receivers) == 0 {
		violations = append(violations, Violation{Field: "receivers", Message: "at least one receiver is required"})
	}
	for i, receiver := range r.Receivers {
		if !strings.Contains(receiver.Email, "@") {
			violations = append(violations, Violation{
				Field:   fmt.Sprintf("receivers[%d].email", i),
				Message: "must be a valid email address",
			})
		}
		if strings.TrimSpace(receiver.Name) == "" {
			violations = append(violations, Violation{
				Field:   fmt.Sprintf("receivers[%d].name", i),
				Message: "must not be blank",
			})
		}
	}
	return violations
}

type pushContentRequest struct {
	Title            string            `json:"title"`
	Body             string            `json:"body"`
	ImageURL         string            `json:"imageUrl,omitempty"`
	Payload          map[string]string `json:"payload,omitempty"`
	NotificationType string            `json:"notificationType,omitempty"`
	CustomSound      string            `json:"customSound,omitempty"`
}

type pushNotificationRequest struct {
	DeviceTokens []string           `json:"deviceTokens"`
	Notification pushContentRequest `json:"notification"`
}

func (r pushNotificationRequest) validate() []Violation {
	var violations []Violation
	if len(r.DeviceTokens) == 0 {
		violations = append(violations, Violation{Field: "deviceTokens", Message: "at least one device token is required"})
	}
	for i, token := range r.DeviceTokens {
		if token == "" {
			violations = append(violations, Violation{
				Field:   fmt.Sprintf("deviceTokens[%d]", i),
				Message: "must not be empty",
			})
		}
	}
	if strings.TrimSpace(r.Notification.Title) == "" {
		violations = append(violations, Violation{Field: "notification.title", Message: "must not be blank"})
	}
	if strings.TrimSpace(r.Notification.Body) == "" {
		violations = append(violations, Violation{Field: "notification.body", Message: "must not be blank"})
	}
	return violations
}
