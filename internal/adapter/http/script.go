package httpadapter

import (
	"net/http"
	"strings"

	"influence-nexus/internal/core/port"
)

type scriptRequest struct {
	Topic    string `json:"topic"`
	Length   string `json:"length"`
	Tone     string `json:"tone"`
	Audience string `json:"audience"`
}

func (h *Handler) handleGenerateScript(w http.ResponseWriter, r *http.Request) {
	var req scriptRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	script, err := h.svc.Scripts.Generate(r.Context(), port.ScriptRequest{
		Topic:    req.Topic,
		Length:   req.Length,
		Tone:     req.Tone,
		Audience: req.Audience,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"script": strings.TrimSpace(script)})
}
