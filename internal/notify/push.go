package notify

import (
	"fmt"
	"strings"
)

// NotificationType is a hint describing how a push notification should be
// rendered on the device: plain, expanded text, image-led, list, or
// conversation style.
type NotificationType string

const (
	TypeStandard   NotificationType = "standard"
	TypeBigText    NotificationType = "big_text"
	TypeBigPicture NotificationType = "big_picture"
	TypeInbox      NotificationType = "inbox"
	TypeMessaging  NotificationType = "messaging"
)

// wireTokens maps each NotificationType to the token used on the wire. The
// internal identifier and the wire token diverge for every non-default
// variant, so this stays an explicit table rather than a casing trick.
var wireTokens = map[NotificationType]string{
	TypeStandard:   "standard",
	TypeBigText:    "bigText",
	TypeBigPicture: "bigPicture",
	TypeInbox:      "inbox",
	TypeMessaging:  "messaging",
}

// notificationTypes is the reverse table, keyed by wire token.
var notificationTypes = map[string]NotificationType{
	"standard":   TypeStandard,
	"bigText":    TypeBigText,
	"bigPicture": TypeBigPicture,
	"inbox":      TypeInbox,
	"messaging":  TypeMessaging,
}

// WireToken returns the serialized form of the type, e.g. "bigText" for
// TypeBigText.
func (t NotificationType) WireToken() string {
	return wireTokens[t]
}

// ParseNotificationType converts a wire token into a NotificationType. An
// empty token yields the default TypeStandard.
func ParseNotificationType(token string) (NotificationType, error) {
	if token == "" {
		return TypeStandard, nil
	}
	t, ok := notificationTypes[token]
	if !ok {
		return "", &InvalidInputError{
			Field:   "notificationType",
			Message: fmt.Sprintf("unknown notification type %q", token),
		}
	}
	return t, nil
}

// PushNotification is a ready-to-send push message. ImageURL and CustomSound
// are empty when absent; Payload carries opaque key-value data interpreted by
// the client-side renderer.
type PushNotification struct {
	Title       string
	Body        string
	ImageURL    string
	Payload     map[string]string
	Type        NotificationType
	CustomSound string
}

// NewPushNotification validates and builds a PushNotification. Title and body
// must be non-blank; an empty typ defaults to TypeStandard.
func NewPushNotification(title, body, imageURL string, payload map[string]string, typ NotificationType, customSound string) (PushNotification, error) {
	if strings.TrimSpace(title) == "" {
		return PushNotification{}, &InvalidInputError{Field: "title", Message: "must not be blank"}
	}
	if strings.TrimSpace(body) == "" {
		return PushNotification{}, &InvalidInputError{Field: "body", Message: "must not be blank"}
	}
	if typ == "" {
		typ = TypeStandard
	}
	return PushNotification{
		Title:       title,
		Body:        body,
		ImageURL:    imageURL,
		Payload:     payload,
		Type:        typ,
		CustomSound: customSound,
	}, nil
}
