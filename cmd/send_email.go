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

var sendEmailCmd = &cobra.Command{
	Use:   "send-email",
	Short: "Send a transactional email from the command line",
	RunE:  runSendEmail,
}

func init() {
	sendEmailCmd.Flags().StringP("template", "t", "", "Template name (required)")
	sendEmailCmd.Flags().StringP("email", "e", "", "Receiver email (required)")
	sendEmailCmd.Flags().StringP("name", "n", "", "Receiver name (required)")
	sendEmailCmd.Flags().StringP("params", "p", "{}", "Template parameters (JSON object)")
	_ = sendEmailCmd.MarkFlagRequired("template")
	_ = sendEmailCmd.MarkFlagRequired("email")
	_ = sendEmailCmd.MarkFlagRequired("name")
}

func runSendEmail(cmd *cobra.Command, _ []string) error {
	template, _ := cmd.Flags().GetString("template")
	email, _ := cmd.Flags().GetString("email")
	name, _ := cmd.Flags().GetString("name")
	rawParams, _ := cmd.Flags().GetString("params")

	var params map[string]any
	if err := json.Unmarshal([]byte(rawParams), &params); err != nil {
		return fmt.Errorf("invalid JSON in --params: %w", err)
	}

	receiver, err := notify.NewReceiver(email, name)
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

	err = dispatcher.SendTransactionalEmail(ctx, dispatch.SendTransactionalEmailCommand{
		TemplateName: template,
		Parameters:   params,
		Receivers:    []notify.Receiver{receiver},
	})
	if err != nil {
		return err
	}

	fmt.Printf("Email sent successfully to %s\n", email)
	return nil
}
