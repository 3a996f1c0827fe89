package httpadapter

import (
	"net/http"

	"influence-nexus/internal/core/domain"
)

func (h *Handler) handleListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.Events.ListEvents(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if events == nil {
		events = []domain.Event{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"events": events})
}

// handleRegister passes a nil session through when the caller is anonymous;
// the use case owns the "please login" answer. A repeat registration is 200.
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}
	var sess *domain.Session
	if s, ok := sessionFrom(r.Context()); ok {
		sess = &s
	}
	res, err := h.svc.Events.Register(r.Context(), sess, eventID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	h.writeJSON(w, status, res.Registration)
}
