package dashboard

import (
	"slices"

	"github.com/google/uuid"

	"influence-nexus/internal/core/domain"
)

// CreatorSnapshot is the creator dashboard's view: every active campaign and
// the creator's own applications.
type CreatorSnapshot struct {
	Profile      domain.Profile
	Campaigns    []domain.Campaign
	Applications []domain.Application
}

// CreatorStats are the aggregates shown on the creator dashboard.
type CreatorStats struct {
	Applications int `json:"applications"`
	Accepted     int `json:"accepted"`
	Pending      int `json:"pending"`
}

// NewCreatorSnapshot copies campaigns and applications so later changes to
// the caller's slices do not leak into the snapshot.
func NewCreatorSnapshot(profile domain.Profile, campaigns []domain.Campaign, applications []domain.Application) CreatorSnapshot {
	return CreatorSnapshot{
		Profile:      profile,
		Campaigns:    slices.Clone(campaigns),
		Applications: slices.Clone(applications),
	}
}

// CreatorID is the creator all applications in the snapshot belong to.
func (s CreatorSnapshot) CreatorID() uuid.UUID {
	return s.Profile.ID
}

// HasApplied reports whether the creator already bid on the campaign. The
// dashboard offers "Apply" only when it returns false.
func (s CreatorSnapshot) HasApplied(campaignID uuid.UUID) bool {
	_, ok := s.ApplicationFor(campaignID)
	return ok
}

// ApplicationFor returns the creator's application to the campaign, if any.
func (s CreatorSnapshot) ApplicationFor(campaignID uuid.UUID) (domain.Application, bool) {
	for _, a := range s.Applications {
		if a.CampaignID == campaignID && a.CreatorID == s.CreatorID() {
			return a, true
		}
	}
	return domain.Application{}, false
}

// Campaign looks up an active campaign by id.
func (s CreatorSnapshot) Campaign(id uuid.UUID) (domain.Campaign, bool) {
	for _, c := range s.Campaigns {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Campaign{}, false
}

// WithApplication returns a snapshot with app appended.
func (s CreatorSnapshot) WithApplication(app domain.Application) CreatorSnapshot {
	apps := make([]domain.Application, 0, len(s.Applications)+1)
	apps = append(apps, s.Applications...)
	apps = append(apps, app)
	return CreatorSnapshot{Profile: s.Profile, Campaigns: slices.Clone(s.Campaigns), Applications: apps}
}

// Stats recomputes the creator aggregates.
func (s CreatorSnapshot) Stats() CreatorStats {
	var stats CreatorStats
	for _, a := range s.Applications {
		if a.CreatorID != s.CreatorID() {
			continue
		}
		stats.Applications++
		switch a.Status {
		case domain.ApplicationAccepted:
			stats.Accepted++
		case domain.ApplicationPending:
			stats.Pending++
		}
	}
	return stats
}
