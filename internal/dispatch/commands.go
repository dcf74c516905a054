package dispatch

import "github.com/shaharia-lab/courier/internal/notify"

// SendTransactionalEmailCommand describes a caller's intent to send a
// transactional email. The template is addressed by name; the handler
// resolves it to a provider template id.
type SendTransactionalEmailCommand struct {
	TemplateName string
	Parameters   map[string]any
	Receivers    []notify.Receiver
}

// SendPushNotificationCommand describes a caller's intent to send a push
// message to one or more devices.
type SendPushNotificationCommand struct {
	DeviceTokens []string
	Title        string
	Body         string
	ImageURL     string
	Payload      map[string]string
	Type         notify.NotificationType
	CustomSound  string
}
