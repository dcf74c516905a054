package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shaharia-lab/courier/internal/config"
	"github.com/shaharia-lab/courier/internal/dispatch"
	"github.com/shaharia-lab/courier/internal/logger"
	"github.com/shaharia-lab/courier/internal/notify"
)

var sendPushCmd = &cobra.Command{
	Use:   "send-push",
	Short: "Send a push notification from the command line",
	RunE:  runSendPush,
}

func init() {
	sendPushCmd.Flags().StringArray("token", nil, "Device token (repeatable, at least one required)")
	sendPushCmd.Flags().String("title", "", "Notification title (required)")
	sendPushCmd.Flags().String("body", "", "Notification body (required)")
	sendPushCmd.Flags().String("image-url", "", "Image URL")
	sendPushCmd.Flags().String("payload", "{}", "Custom data payload (JSON object of strings)")
	sendPushCmd.Flags().String("type", "", "Display style: standard, bigText, bigPicture, inbox or messaging")
	sendPushCmd.Flags().String("sound", "", "Custom sound name without extension")
	_ = sendPushCmd.MarkFlagRequired("token")
	_ = sendPushCmd.MarkFlagRequired("title")
	_ = sendPushCmd.MarkFlagRequired("body")
}

func runSendPush(cmd *cobra.Command, _ []string) error {
	tokens, _ := cmd.Flags().GetStringArray("token")
	title, _ := cmd.Flags().GetString("title")
	body, _ := cmd.Flags().GetString("body")
	imageURL, _ := cmd.Flags().GetString("image-url")
	rawPayload, _ := cmd.Flags().GetString("payload")
	rawType, _ := cmd.Flags().GetString("type")
	sound, _ := cmd.Flags().GetString("sound")

	var payload map[string]string
	if err := json.Unmarshal([]byte(rawPayload), &payload); err != nil {
		return fmt.Errorf("invalid JSON in --payload: %w", err)
	}

	typ, err := notify.ParseNotificationType(rawType)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(os.Stderr, cfg.SlogLevel())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dispatcher, err := buildDispatcher(ctx, cfg, log)
	if err != nil {
		return err
	}

	err = dispatcher.SendPushNotification(ctx, dispatch.SendPushNotificationCommand{
		DeviceTokens: tokens,
		Title:        title,
		Body:         body,
		ImageURL:     imageURL,
		Payload:      payload,
		Type:         typ,
		CustomSound:  sound,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Push notification sent to %d device(s)\n", len(tokens))
	return nil
}
