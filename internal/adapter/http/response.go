package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"influence-nexus/internal/core/domain"
)

type errorResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeRedirect(w http.ResponseWriter, status int, msg, location string) {
	w.Header().Set("Location", location)
	h.writeJSON(w, status, errorResponse{Error: msg, Redirect: location})
}

// writeError maps the error taxonomy onto status codes. Unclassified errors
// are logged and reported as 500 without their message.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var (
		validation *domain.ValidationError
		config     *domain.ConfigurationError
		authErr    *domain.AuthError
		notFound   *domain.NotFoundError
		conflict   *domain.ConflictError
		remote     *domain.RemoteError
	)
	switch {
	case errors.As(err, &validation):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: validation.Error()})
	case errors.As(err, &authErr):
		if authErr.Redirect != "" {
			h.writeRedirect(w, http.StatusUnauthorized, authErr.Message, authErr.Redirect)
			return
		}
		h.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: authErr.Message})
	case errors.As(err, &notFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: notFound.Error()})
	case errors.As(err, &conflict):
		h.writeJSON(w, http.StatusConflict, errorResponse{Error: conflict.Message})
	case errors.As(err, &config):
		h.logger.Warn("service not configured", slog.String("setting", config.Setting))
		h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: config.Error()})
	case errors.As(err, &remote):
		h.logger.Error("remote service error",
			slog.String("service", remote.Service),
			slog.Int("status", remote.StatusCode),
			slog.Any("error", err))
		h.writeJSON(w, http.StatusBadGateway, errorResponse{Error: remote.Error()})
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
