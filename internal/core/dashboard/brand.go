package dashboard

import (
	"slices"

	"github.com/google/uuid"

	"influence-nexus/internal/core/domain"
)

// BrandSnapshot is the brand dashboard's view of the store: the brand's own
// campaigns, newest first, and the applications submitted to them. Values are
// never mutated; every With method returns a new snapshot.
type BrandSnapshot struct {
	Profile      domain.Profile
	Campaigns    []domain.Campaign
	Applications []domain.Application
}

// BrandStats are the aggregates shown on the brand dashboard.
type BrandStats struct {
	ActiveCampaigns   int     `json:"active_campaigns"`
	TotalApplications int     `json:"total_applications"`
	TotalBudget       float64 `json:"total_budget"`
	TotalBudgetLabel  string  `json:"total_budget_label"`
}

// NewBrandSnapshot copies the collections so later changes by the caller do
// not leak into the snapshot.
func NewBrandSnapshot(profile domain.Profile, campaigns []domain.Campaign, applications []domain.Application) BrandSnapshot {
	return BrandSnapshot{
		Profile:      profile,
		Campaigns:    slices.Clone(campaigns),
		Applications: slices.Clone(applications),
	}
}

// BrandID is the owner every campaign in the snapshot must belong to.
func (s BrandSnapshot) BrandID() uuid.UUID {
	return s.Profile.ID
}

// WithCampaign returns a snapshot with c prepended, matching the newest-first
// ordering of the initial load.
func (s BrandSnapshot) WithCampaign(c domain.Campaign) BrandSnapshot {
	campaigns := make([]domain.Campaign, 0, len(s.Campaigns)+1)
	campaigns = append(campaigns, c)
	campaigns = append(campaigns, s.Campaigns...)
	return BrandSnapshot{Profile: s.Profile, Campaigns: campaigns, Applications: slices.Clone(s.Applications)}
}

// WithApplicationStatus returns a snapshot where the application with the given
// id carries status. Unknown ids leave the snapshot unchanged.
func (s BrandSnapshot) WithApplicationStatus(id uuid.UUID, status domain.ApplicationStatus) BrandSnapshot {
	apps := slices.Clone(s.Applications)
	for i := range apps {
		if apps[i].ID == id {
			apps[i].Status = status
		}
	}
	return BrandSnapshot{Profile: s.Profile, Campaigns: slices.Clone(s.Campaigns), Applications: apps}
}

// Application looks up an application visible to the brand.
func (s BrandSnapshot) Application(id uuid.UUID) (domain.Application, bool) {
	for _, a := range s.Applications {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Application{}, false
}

// OwnsCampaign reports whether the campaign belongs to the snapshot's brand.
func (s BrandSnapshot) OwnsCampaign(id uuid.UUID) bool {
	for _, c := range s.Campaigns {
		if c.ID == id {
			return c.BrandID == s.BrandID()
		}
	}
	return false
}

// Stats recomputes the brand aggregates from the current collections.
func (s BrandSnapshot) Stats() BrandStats {
	var stats BrandStats
	for _, c := range s.Campaigns {
		if c.BrandID != s.BrandID() {
			continue
		}
		if c.IsActive() {
			stats.ActiveCampaigns++
		}
		stats.TotalBudget += c.Budget
	}
	for _, a := range s.Applications {
		if s.OwnsCampaign(a.CampaignID) {
			stats.TotalApplications++
		}
	}
	stats.TotalBudgetLabel = FormatRupees(stats.TotalBudget)
	return stats
}
