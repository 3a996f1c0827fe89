package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"influence-nexus/internal/core/port"
	"influence-nexus/internal/marketing"
	"influence-nexus/internal/metrics"
)

// Services bundles the use cases the HTTP adapter drives.
type Services struct {
	Auth    port.AuthUseCase
	Brand   port.BrandUseCase
	Creator port.CreatorUseCase
	Events  port.EventUseCase
	Scripts port.ScriptUseCase
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// Brand and creator routes live in separate groups, each behind a guard that
// checks the session role once.
type Handler struct {
	svc    Services
	site   *marketing.Site
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, site *marketing.Site, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, site: site, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(metrics.InstrumentHandler)

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/site", h.handleSite)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.handleSignUp)
			r.Post("/signin", h.handleSignIn)
			r.Post("/signout", h.handleSignOut)
			r.With(h.requireSession(roleAny)).Get("/session", h.handleSession)
		})

		r.Route("/brand", func(r chi.Router) {
			r.Use(h.requireSession(roleBrand))
			r.Get("/dashboard", h.handleBrandDashboard)
			r.Post("/campaigns", h.handleCreateCampaign)
			r.Post("/applications/{id}/decision", h.handleDecide)
		})

		r.Route("/creator", func(r chi.Router) {
			r.Use(h.requireSession(roleCreator))
			r.Get("/dashboard", h.handleCreatorDashboard)
			r.Post("/campaigns/{id}/applications", h.handleSubmit)
		})

		r.Get("/events", h.handleListEvents)
		r.With(h.optionalSession).Post("/events/{id}/registrations", h.handleRegister)

		r.Post("/scripts", h.handleGenerateScript)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleSite(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.site)
}
