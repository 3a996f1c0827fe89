package httpadapter

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"influence-nexus/internal/core/domain"
)

type sessionKey struct{}

const (
	roleAny     domain.Role = ""
	roleBrand               = domain.RoleBrand
	roleCreator             = domain.RoleCreator
)

// withSession stores the resolved session on the request context.
func withSession(ctx context.Context, sess domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// sessionFrom returns the session placed by one of the guards.
func sessionFrom(ctx context.Context) (domain.Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(domain.Session)
	return sess, ok
}

// bearerToken extracts the access token from the Authorization header.
func bearerToken(r *http.Request) string {
	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(auth) < 7 || !strings.EqualFold(auth[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(auth[7:])
}

// requireSession resolves the bearer token into a Session. Callers without a
// valid session get 401 pointing at the auth page for the wanted role; a
// session of the other role gets 403 pointing at its own dashboard.
func (h *Handler) requireSession(want domain.Role) func(http.Handler) http.Handler {
	authPath := "/auth"
	if want != roleAny {
		authPath = want.AuthPath()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				h.writeRedirect(w, http.StatusUnauthorized, "please login to continue", authPath)
				return
			}
			sess, err := h.svc.Auth.CurrentSession(r.Context(), token)
			if err != nil {
				if isRejectedToken(err) {
					h.logger.Debug("session rejected", slog.Any("error", err))
					h.writeRedirect(w, http.StatusUnauthorized, "please login to continue", authPath)
					return
				}
				h.writeError(w, err)
				return
			}
			if want != roleAny {
				if err = sess.RequireRole(want); err != nil {
					h.writeRedirect(w, http.StatusForbidden, err.Error(), sess.Role().DashboardPath())
					return
				}
			}
			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), sess)))
		})
	}
}

// optionalSession attaches a session when a valid token is present. A missing
// or rejected token continues as anonymous; any other failure resolving the
// token is answered here.
func (h *Handler) optionalSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := bearerToken(r); token != "" {
			sess, err := h.svc.Auth.CurrentSession(r.Context(), token)
			switch {
			case err == nil:
				r = r.WithContext(withSession(r.Context(), sess))
			case isRejectedToken(err):
				h.logger.Debug("ignoring invalid session", slog.Any("error", err))
			default:
				h.writeError(w, err)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// isRejectedToken reports whether err means the token itself is bad, as
// opposed to the identity gateway failing.
func isRejectedToken(err error) bool {
	var authErr *domain.AuthError
	var validation *domain.ValidationError
	return errors.As(err, &authErr) || errors.As(err, &validation)
}
