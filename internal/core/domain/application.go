package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus is the state of a creator's bid on a campaign.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// IsTerminal reports whether no further transition is allowed.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationAccepted || s == ApplicationRejected
}

// ParseOutcome converts a brand decision into a terminal status. Pending is not
// an outcome.
func ParseOutcome(raw string) (ApplicationStatus, error) {
	switch s := ApplicationStatus(strings.ToLower(strings.TrimSpace(raw))); s {
	case ApplicationAccepted, ApplicationRejected:
		return s, nil
	default:
		return "", NewValidationError("status", fmt.Sprintf("status must be %s or %s", ApplicationAccepted, ApplicationRejected))
	}
}

// Application is a creator's bid on a campaign.
// ProposedRate is optional and expressed in rupees.
type Application struct {
	ID           uuid.UUID         `json:"id"`
	CampaignID   uuid.UUID         `json:"campaign_id"`
	CreatorID    uuid.UUID         `json:"creator_id"`
	Pitch        string            `json:"pitch"`
	ProposedRate *float64          `json:"proposed_rate,omitempty"`
	Status       ApplicationStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`

	// Read-only joins.
	CampaignTitle string `json:"campaign_title,omitempty"`
	CreatorName   string `json:"creator_name,omitempty"`
}

// NewApplication validates a submission and returns a pending application.
func NewApplication(campaign Campaign, creatorID uuid.UUID, pitch string, proposedRate *float64) (Application, error) {
	if !campaign.IsActive() {
		return Application{}, NewValidationError("campaign_id", "campaign is not accepting applications")
	}
	if creatorID == uuid.Nil {
		return Application{}, NewValidationError("creator_id", "creator is required")
	}
	pitch = strings.TrimSpace(pitch)
	if pitch == "" {
		return Application{}, NewValidationError("pitch", "pitch is required")
	}
	if proposedRate != nil && *proposedRate < 0 {
		return Application{}, NewValidationError("proposed_rate", "proposed rate must not be negative")
	}
	return Application{
		CampaignID:    campaign.ID,
		CreatorID:     creatorID,
		Pitch:         pitch,
		ProposedRate:  proposedRate,
		Status:        ApplicationPending,
		CampaignTitle: campaign.Title,
	}, nil
}

// Decide moves a pending application to the given outcome and returns the
// updated copy. A terminal application cannot be decided again.
func (a Application) Decide(outcome ApplicationStatus) (Application, error) {
	if !outcome.IsTerminal() {
		return a, NewValidationError("status", fmt.Sprintf("status must be %s or %s", ApplicationAccepted, ApplicationRejected))
	}
	if a.Status.IsTerminal() {
		return a, &ConflictError{Message: fmt.Sprintf("application already %s", a.Status)}
	}
	if a.Status != ApplicationPending {
		return a, &ConflictError{Message: fmt.Sprintf("application in unknown status %q", a.Status)}
	}
	a.Status = outcome
	return a, nil
}
