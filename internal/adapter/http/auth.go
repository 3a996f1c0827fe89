package httpadapter

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"influence-nexus/internal/core/domain"
	"influence-nexus/internal/core/port"
)

type signUpRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	CompanyName string `json:"company_name"`
	UserType    string `json:"user_type"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	UserID       uuid.UUID      `json:"user_id"`
	Email        string         `json:"email"`
	Profile      domain.Profile `json:"profile"`
	AccessToken  string         `json:"access_token,omitempty"`
	RefreshToken string         `json:"refresh_token,omitempty"`
	ExpiresAt    *time.Time     `json:"expires_at,omitempty"`
	RedirectTo   string         `json:"redirect_to"`
}

func newSessionResponse(sess domain.Session) sessionResponse {
	return sessionResponse{
		UserID:     sess.UserID,
		Email:      sess.Email,
		Profile:    sess.Profile,
		RedirectTo: sess.Role().DashboardPath(),
	}
}

func newAuthResponse(res *port.AuthResult) sessionResponse {
	out := newSessionResponse(res.Session)
	out.AccessToken = res.Session.AccessToken
	out.RefreshToken = res.RefreshToken
	out.RedirectTo = res.RedirectTo
	if !res.ExpiresAt.IsZero() {
		out.ExpiresAt = &res.ExpiresAt
	}
	return out
}

func (h *Handler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	res, err := h.svc.Auth.SignUp(r.Context(), port.SignUpInput{
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		CompanyName: req.CompanyName,
		UserType:    req.UserType,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newAuthResponse(res))
}

func (h *Handler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	res, err := h.svc.Auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newAuthResponse(res))
}

func (h *Handler) handleSignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Auth.SignOut(r.Context(), bearerToken(r)); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSession(w http.ResponseWriter, r *http.Request) {
	sess, _ := sessionFrom(r.Context())
	h.writeJSON(w, http.StatusOK, newSessionResponse(sess))
}
