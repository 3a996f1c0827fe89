package httpadapter

import (
	"net/http"
	"time"

	"influence-nexus/internal/core/dashboard"
	"influence-nexus/internal/core/domain"
	"influence-nexus/internal/core/port"
)

type brandDashboardResponse struct {
	Profile      domain.Profile       `json:"profile"`
	Campaigns    []domain.Campaign    `json:"campaigns"`
	Applications []domain.Application `json:"applications"`
	Stats        dashboard.BrandStats `json:"stats"`
}

// creatorCampaign is an active campaign as the creator sees it. HasApplied
// decides whether the "Apply" action is offered.
type creatorCampaign struct {
	domain.Campaign
	HasApplied bool `json:"has_applied"`
}

type creatorDashboardResponse struct {
	Profile      domain.Profile         `json:"profile"`
	Campaigns    []creatorCampaign      `json:"campaigns"`
	Applications []domain.Application   `json:"applications"`
	Stats        dashboard.CreatorStats `json:"stats"`
}

type createCampaignRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Budget       float64 `json:"budget"`
	Category     string  `json:"category"`
	Deadline     string  `json:"deadline"`
	Requirements string  `json:"requirements"`
}

type decisionRequest struct {
	Status string `json:"status"`
}

type submitRequest struct {
	Pitch        string   `json:"pitch"`
	ProposedRate *float64 `json:"proposed_rate"`
}

func newBrandDashboardResponse(d port.BrandDashboard) brandDashboardResponse {
	out := brandDashboardResponse{
		Profile:      d.Snapshot.Profile,
		Campaigns:    d.Snapshot.Campaigns,
		Applications: d.Snapshot.Applications,
		Stats:        d.Stats,
	}
	if out.Campaigns == nil {
		out.Campaigns = []domain.Campaign{}
	}
	if out.Applications == nil {
		out.Applications = []domain.Application{}
	}
	return out
}

func newCreatorDashboardResponse(d port.CreatorDashboard) creatorDashboardResponse {
	out := creatorDashboardResponse{
		Profile:      d.Snapshot.Profile,
		Campaigns:    make([]creatorCampaign, 0, len(d.Snapshot.Campaigns)),
		Applications: d.Snapshot.Applications,
		Stats:        d.Stats,
	}
	for _, c := range d.Snapshot.Campaigns {
		out.Campaigns = append(out.Campaigns, creatorCampaign{Campaign: c, HasApplied: d.Snapshot.HasApplied(c.ID)})
	}
	if out.Applications == nil {
		out.Applications = []domain.Application{}
	}
	return out
}

func (h *Handler) handleBrandDashboard(w http.ResponseWriter, r *http.Request) {
	sess, _ := sessionFrom(r.Context())
	dash, err := h.svc.Brand.LoadBrandDashboard(r.Context(), sess)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newBrandDashboardResponse(*dash))
}

// handleCreateCampaign expects the deadline as a calendar date (YYYY-MM-DD).
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	sess, _ := sessionFrom(r.Context())
	var req createCampaignRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	var deadline time.Time
	if req.Deadline != "" {
		var err error
		deadline, err = time.Parse(time.DateOnly, req.Deadline)
		if err != nil {
			h.writeError(w, domain.NewValidationError("deadline", "deadline must be a date (YYYY-MM-DD)"))
			return
		}
	}
	res, err := h.svc.Brand.CreateCampaign(r.Context(), sess, domain.CampaignDraft{
		Title:        req.Title,
		Description:  req.Description,
		Budget:       req.Budget,
		Category:     req.Category,
		Deadline:     deadline,
		Requirements: req.Requirements,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]any{
		"campaign":  res.Campaign,
		"dashboard": newBrandDashboardResponse(res.Dashboard),
	})
}

func (h *Handler) handleDecide(w http.ResponseWriter, r *http.Request) {
	sess, _ := sessionFrom(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}
	var req decisionRequest
	if err = decodeJSON(w, r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	outcome, err := domain.ParseOutcome(req.Status)
	if err != nil {
		h.writeError(w, err)
		return
	}
	res, err := h.svc.Brand.Decide(r.Context(), sess, id, outcome)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"application": res.Application,
		"dashboard":   newBrandDashboardResponse(res.Dashboard),
	})
}

func (h *Handler) handleCreatorDashboard(w http.ResponseWriter, r *http.Request) {
	sess, _ := sessionFrom(r.Context())
	dash, err := h.svc.Creator.LoadCreatorDashboard(r.Context(), sess)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCreatorDashboardResponse(*dash))
}

// handleSubmit answers 201 for a new application and 200 when the creator
// had already applied.
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	sess, _ := sessionFrom(r.Context())
	campaignID, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}
	var req submitRequest
	if err = decodeJSON(w, r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	res, err := h.svc.Creator.Submit(r.Context(), sess, port.SubmitInput{
		CampaignID:   campaignID,
		Pitch:        req.Pitch,
		ProposedRate: req.ProposedRate,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	h.writeJSON(w, status, map[string]any{
		"application": res.Application,
		"created":     res.Created,
		"dashboard":   newCreatorDashboardResponse(res.Dashboard),
	})
}
