package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CampaignStatus is the lifecycle status of a campaign. Only active is ever
// written.
type CampaignStatus string

const CampaignActive CampaignStatus = "active"

// Campaign is a unit of work a brand offers to creators.
// Budget is expressed in rupees.
type Campaign struct {
	ID           uuid.UUID      `json:"id"`
	BrandID      uuid.UUID      `json:"brand_id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Budget       float64        `json:"budget"`
	Category     string         `json:"category"`
	Deadline     time.Time      `json:"deadline"`
	Requirements string         `json:"requirements,omitempty"`
	Status       CampaignStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`

	// BrandName is joined from the owner's profile on reads.
	BrandName string `json:"brand_name,omitempty"`
}

// IsActive reports whether creators may apply to the campaign.
func (c Campaign) IsActive() bool {
	return c.Status == CampaignActive
}

// CampaignDraft is the brand-supplied part of a new campaign.
type CampaignDraft struct {
	Title        string
	Description  string
	Budget       float64
	Category     string
	Deadline     time.Time
	Requirements string
}

// NewCampaign validates a draft and returns an active campaign owned by
// brandID. ID and CreatedAt are assigned by the store.
func NewCampaign(brandID uuid.UUID, d CampaignDraft) (Campaign, error) {
	if brandID == uuid.Nil {
		return Campaign{}, NewValidationError("brand_id", "owning brand is required")
	}
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return Campaign{}, NewValidationError("title", "title is required")
	}
	description := strings.TrimSpace(d.Description)
	if description == "" {
		return Campaign{}, NewValidationError("description", "description is required")
	}
	category := strings.TrimSpace(d.Category)
	if category == "" {
		return Campaign{}, NewValidationError("category", "category is required")
	}
	if d.Budget < 0 {
		return Campaign{}, NewValidationError("budget", "budget must not be negative")
	}
	if d.Deadline.IsZero() {
		return Campaign{}, NewValidationError("deadline", "deadline is required")
	}
	return Campaign{
		BrandID:      brandID,
		Title:        title,
		Description:  description,
		Budget:       d.Budget,
		Category:     category,
		Deadline:     d.Deadline,
		Requirements: strings.TrimSpace(d.Requirements),
		Status:       CampaignActive,
	}, nil
}
