package supabase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"influence-nexus/internal/core/domain"
)

const dateLayout = "2006-01-02"

// PostgREST returns timestamptz as RFC 3339 with fractional seconds and date
// columns as plain dates; both arrive as strings.

type profileRow struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	CompanyName   *string   `json:"company_name"`
	UserType      string    `json:"user_type"`
	Niche         *string   `json:"niche"`
	FollowerCount *int64    `json:"follower_count"`
	CreatedAt     string    `json:"created_at,omitempty"`
}

func (r profileRow) toDomain() (domain.Profile, error) {
	role, err := domain.ParseRole(r.UserType)
	if err != nil {
		return domain.Profile{}, err
	}
	created, err := parseTimestamp(r.CreatedAt)
	if err != nil {
		return domain.Profile{}, err
	}
	return domain.Profile{
		ID:            r.ID,
		Email:         r.Email,
		FullName:      r.FullName,
		CompanyName:   r.CompanyName,
		Role:          role,
		Niche:         r.Niche,
		FollowerCount: r.FollowerCount,
		CreatedAt:     created,
	}, nil
}

type nameRef struct {
	FullName    *string `json:"full_name"`
	CompanyName *string `json:"company_name"`
}

type campaignRow struct {
	ID           uuid.UUID `json:"id"`
	BrandID      uuid.UUID `json:"brand_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Budget       float64   `json:"budget"`
	Category     string    `json:"category"`
	Deadline     string    `json:"deadline"`
	Requirements *string   `json:"requirements"`
	Status       string    `json:"status"`
	CreatedAt    string    `json:"created_at,omitempty"`
	Brand        *nameRef  `json:"brand,omitempty"`
}

// campaignInsert leaves id and created_at to column defaults.
func campaignInsert(c domain.Campaign) map[string]any {
	return map[string]any{
		"brand_id":     c.BrandID,
		"title":        c.Title,
		"description":  c.Description,
		"budget":       c.Budget,
		"category":     c.Category,
		"deadline":     c.Deadline.Format(dateLayout),
		"requirements": c.Requirements,
		"status":       c.Status,
	}
}

func (r campaignRow) toDomain() (domain.Campaign, error) {
	deadline, err := time.Parse(dateLayout, r.Deadline)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("parse deadline %q: %w", r.Deadline, err)
	}
	created, err := parseTimestamp(r.CreatedAt)
	if err != nil {
		return domain.Campaign{}, err
	}
	c := domain.Campaign{
		ID:          r.ID,
		BrandID:     r.BrandID,
		Title:       r.Title,
		Description: r.Description,
		Budget:      r.Budget,
		Category:    r.Category,
		Deadline:    deadline,
		Status:      domain.CampaignStatus(r.Status),
		CreatedAt:   created,
	}
	if r.Requirements != nil {
		c.Requirements = *r.Requirements
	}
	if r.Brand != nil {
		switch {
		case r.Brand.CompanyName != nil:
			c.BrandName = *r.Brand.CompanyName
		case r.Brand.FullName != nil:
			c.BrandName = *r.Brand.FullName
		}
	}
	return c, nil
}

type campaignRef struct {
	Title   string    `json:"title"`
	BrandID uuid.UUID `json:"brand_id"`
}

type applicationRow struct {
	ID           uuid.UUID    `json:"id"`
	CampaignID   uuid.UUID    `json:"campaign_id"`
	CreatorID    uuid.UUID    `json:"creator_id"`
	Pitch        string       `json:"pitch"`
	ProposedRate *float64     `json:"proposed_rate"`
	Status       string       `json:"status"`
	CreatedAt    string       `json:"created_at,omitempty"`
	Campaign     *campaignRef `json:"campaigns,omitempty"`
	Creator      *nameRef     `json:"creator,omitempty"`
}

func applicationInsert(a domain.Application) map[string]any {
	return map[string]any{
		"campaign_id":   a.CampaignID,
		"creator_id":    a.CreatorID,
		"pitch":         a.Pitch,
		"proposed_rate": a.ProposedRate,
		"status":        a.Status,
	}
}

func (r applicationRow) toDomain() (domain.Application, error) {
	created, err := parseTimestamp(r.CreatedAt)
	if err != nil {
		return domain.Application{}, err
	}
	a := domain.Application{
		ID:           r.ID,
		CampaignID:   r.CampaignID,
		CreatorID:    r.CreatorID,
		Pitch:        r.Pitch,
		ProposedRate: r.ProposedRate,
		Status:       domain.ApplicationStatus(r.Status),
		CreatedAt:    created,
	}
	if r.Campaign != nil {
		a.CampaignTitle = r.Campaign.Title
	}
	if r.Creator != nil && r.Creator.FullName != nil {
		a.CreatorName = *r.Creator.FullName
	}
	return a, nil
}

type eventRow struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   string    `json:"event_date"`
	Location    string    `json:"location"`
	Price       float64   `json:"price"`
	Capacity    int       `json:"capacity"`
	ImageURL    *string   `json:"image_url"`
}

func (r eventRow) toDomain() (domain.Event, error) {
	date, err := parseTimestamp(r.EventDate)
	if err != nil {
		return domain.Event{}, err
	}
	return domain.Event{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		EventDate:   date,
		Location:    r.Location,
		Price:       r.Price,
		Capacity:    r.Capacity,
		ImageURL:    r.ImageURL,
	}, nil
}

type registrationRow struct {
	ID            uuid.UUID `json:"id"`
	EventID       uuid.UUID `json:"event_id"`
	UserID        uuid.UUID `json:"user_id"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     string    `json:"created_at,omitempty"`
}

func (r registrationRow) toDomain() (domain.EventRegistration, error) {
	created, err := parseTimestamp(r.CreatedAt)
	if err != nil {
		return domain.EventRegistration{}, err
	}
	return domain.EventRegistration{
		ID:            r.ID,
		EventID:       r.EventID,
		UserID:        r.UserID,
		PaymentStatus: domain.PaymentStatus(r.PaymentStatus),
		CreatedAt:     created,
	}, nil
}

func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", dateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse timestamp %q", s)
}
