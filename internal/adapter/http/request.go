package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"influence-nexus/internal/core/domain"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into v. Malformed JSON is a
// ValidationError so it maps to 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("", "request body is required")
		}
		return domain.NewValidationError("", "invalid JSON")
	}
	return nil
}

// pathID parses a uuid path parameter bound by the router.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a valid id")
	}
	return id, nil
}
