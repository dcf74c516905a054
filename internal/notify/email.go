// Package notify holds the request-scoped notification value objects and the
// domain error taxonomy shared by all transports. Every value object
// validates itself at construction; a value that exists is a value that can
// be sent.
package notify

import "strings"

// Receiver is a single email recipient.
type Receiver struct {
	Email string
	Name  string
}

// NewReceiver validates and builds a Receiver. The email must contain an "@"
// and the name must be non-blank.
func NewReceiver(email, name string) (Receiver, error) {
	if email == "" || !strings.Contains(email, "@") {
		return Receiver{}, &InvalidInputError{Field: "email", Message: "must be a valid email address"}
	}
	if strings.TrimSpace(name) == "" {
		return Receiver{}, &InvalidInputError{Field: "name", Message: "must not be blank"}
	}
	return Receiver{Email: email, Name: name}, nil
}

// Email is a ready-to-send transactional email. TemplateID is the
// provider-assigned integer resolved from a caller-supplied template name.
type Email struct {
	TemplateID int64
	Parameters map[string]any
	Receivers  []Receiver
}

// NewEmail validates and builds an Email. Parameters may be nil.
func NewEmail(templateID int64, parameters map[string]any, receivers []Receiver) (Email, error) {
	if templateID <= 0 {
		return Email{}, &InvalidInputError{Field: "templateId", Message: "must be a positive integer"}
	}
	if len(receivers) == 0 {
		return Email{}, &InvalidInputError{Field: "receivers", Message: "at least one receiver is required"}
	}
	return Email{TemplateID: templateID, Parameters: parameters, Receivers: receivers}, nil
}
