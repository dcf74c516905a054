// Package config loads process configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application-level configuration loaded from environment
// variables.
type Config struct {
	// Port is the HTTP server port.
	Port int `envconfig:"PORT" default:"3000"`

	// GRPCPort is the gRPC server port.
	GRPCPort int `envconfig:"GRPC_PORT" default:"5000"`

	// LogLevel sets the minimum log level (debug, info, warn, error).
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// EmailAPIKey is the Postmark server token used for template lookup
	// and transactional sends.
	EmailAPIKey string `envconfig:"EMAIL_API_KEY"`

	// EmailAccountToken is the optional Postmark account token.
	EmailAccountToken string `envconfig:"EMAIL_ACCOUNT_TOKEN"`

	// EmailFrom is the fixed sender identity for all outbound email.
	EmailFrom string `envconfig:"EMAIL_FROM"`

	// FirebaseProjectID identifies the FCM project push notifications are
	// sent through.
	FirebaseProjectID string `envconfig:"FIREBASE_PROJECT_ID"`

	// GoogleCredentialsFile is an optional path to a service-account JSON
	// file. When empty, application default credentials are used.
	GoogleCredentialsFile string `envconfig:"GOOGLE_APPLICATION_CREDENTIALS"`

	// PushProvider selects the push delivery strategy: "sdk" (Firebase
	// Admin SDK multicast) or "http" (FCM v1 REST, one call per token).
	// The choice is fixed for the process lifetime.
	PushProvider string `envconfig:"PUSH_NOTIFICATION_PROVIDER" default:"sdk"`
}

// Load reads Config from environment variables.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &c, nil
}

// SlogLevel converts the LogLevel string to a slog.Level. Unknown values
// default to slog.LevelInfo.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
