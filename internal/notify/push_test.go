package notify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaharia-lab/courier/internal/notify"
)

func TestNewPushNotification(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		n, err := notify.NewPushNotification("Title", "Body", "", nil, "", "")
		require.NoError(t, err)
		assert.Equal(t, notify.TypeStandard, n.Type)
		assert.Empty(t, n.ImageURL)
		assert.Empty(t, n.CustomSound)
	})

	t.Run("all fields", func(t *testing.T) {
		n, err := notify.NewPushNotification(
			"New promotion!",
			"50% off on all products",
			"https://example.com/image.png",
			map[string]string{"orderId": "123", "screen": "promo"},
			notify.TypeBigPicture,
			"alert_urgent",
		)
		require.NoError(t, err)
		assert.Equal(t, notify.TypeBigPicture, n.Type)
		assert.Equal(t, "alert_urgent", n.CustomSound)
	})

	t.Run("blank title", func(t *testing.T) {
		_, err := notify.NewPushNotification("   ", "Body", "", nil, "", "")
		var invalid *notify.InvalidInputError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "title", invalid.Field)
	})

	t.Run("blank body", func(t *testing.T) {
		_, err := notify.NewPushNotification("Title", "\t\n", "", nil, "", "")
		var invalid *notify.InvalidInputError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "body", invalid.Field)
	})
}

func TestNotificationTypeWireTokens(t *testing.T) {
	// The internal identifier and the wire token diverge for every
	// non-default variant, so the table is checked exhaustively.
	tokens := map[notify.NotificationType]string{
		notify.TypeStandard:   "standard",
		notify.TypeBigText:    "bigText",
		notify.TypeBigPicture: "bigPicture",
		notify.TypeInbox:      "inbox",
		notify.TypeMessaging:  "messaging",
	}
	for typ, token := range tokens {
		assert.Equal(t, token, typ.WireToken())

		parsed, err := notify.ParseNotificationType(token)
		require.NoError(t, err)
		assert.Equal(t, typ, parsed)
	}
}

func TestParseNotificationType(t *testing.T) {
	t.Run("empty defaults to standard", func(t *testing.T) {
		typ, err := notify.ParseNotificationType("")
		require.NoError(t, err)
		assert.Equal(t, notify.TypeStandard, typ)
	})

	t.Run("internal identifier is not a wire token", func(t *testing.T) {
		_, err := notify.ParseNotificationType("big_text")
		var invalid *notify.InvalidInputError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := notify.ParseNotificationType("BIG_TEXT")
		var invalid *notify.InvalidInputError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "notificationType", invalid.Field)
	})
}
