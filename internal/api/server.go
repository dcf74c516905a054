// Package api implements the REST adapter: it validates inbound requests,
// builds commands, invokes the dispatcher, and maps domain errors to HTTP
// status codes.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shaharia-lab/courier/internal/dispatch"
	"github.com/shaharia-lab/courier/internal/notify"
)

// Server holds all dependencies for the REST API handlers.
type Server struct {
	dispatcher *dispatch.Dispatcher
	logger     *slog.Logger
}

// New creates a new API Server backed by the dispatcher.
func New(dispatcher *dispatch.Dispatcher, logger *slog.Logger) *Server {
	return &Server{dispatcher: dispatcher, logger: logger}
}

// Mount registers all API routes under the given router.
func (s *Server) Mount(r chi.Router) {
	r.Post("/email/send", s.handleSendEmail)
	r.Post("/push-notification/send", s.handleSendPushNotification)
}

func (s *Server) handleSendEmail(w http.ResponseWriter, r *http.Request) {
	var req emailSendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if violations := req.validate(); len(violations) > 0 {
		writeViolations(w, violations)
		return
	}

	receivers := make([]notify.Receiver, 0, len(req.Receivers))
	for _, rr := range req.Receivers {
		receiver, err := notify.NewReceiver(rr.Email, rr.Name)
		if err != nil {
			s.writeDomainError(w, r, err)
			return
		}
		receivers = append(receivers, receiver)
	}

	err := s.dispatcher.SendTransactionalEmail(r.Context(), dispatch.SendTransactionalEmailCommand{
		TemplateName: req.TemplateName,
		Parameters:   req.Parameters,
		Receivers:    receivers,
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSendPushNotification(w http.ResponseWriter, r *http.Request) {
	var req pushNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if violations := req.validate(); len(violations) > 0 {
		writeViolations(w, violations)
		return
	}

	typ, err := notify.ParseNotificationType(req.Notification.NotificationType)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	err = s.dispatcher.SendPushNotification(r.Context(), dispatch.SendPushNotificationCommand{
		DeviceTokens: req.DeviceTokens,
		Title:        req.Notification.Title,
		Body:         req.Notification.Body,
		ImageURL:     req.Notification.ImageURL,
		Payload:      req.Notification.Payload,
		Type:         typ,
		CustomSound:  req.Notification.CustomSound,
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeDomainError maps domain error kinds to HTTP status codes.
func (s *Server) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *notify.TemplateNotFoundError
	var invalid *notify.InvalidInputError

	switch {
	case errors.As(err, &notFound):
		writeError(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &invalid):
		writeError(w, http.StatusBadRequest, invalid.Error())
	default:
		s.logger.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// ─── Shared helpers ───────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeViolations(w http.ResponseWriter, violations []Violation) {
	writeJSON(w, http.StatusBadRequest, map[string]any{"errors": violations})
}
