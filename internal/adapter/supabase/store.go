package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"influence-nexus/internal/core/domain"
)

const (
	campaignSelect          = "*,brand:profiles(full_name,company_name)"
	applicationSelect       = "*,campaigns!inner(title,brand_id)"
	brandApplicationsSelect = "*,campaigns!inner(title,brand_id),creator:profiles(full_name)"
)

// RESTStore implements port.CampaignStore through PostgREST using the service
// key. Row-level scoping is expressed with explicit filters rather than
// relying on the caller's token.
type RESTStore struct {
	client *Client
}

// NewRESTStore returns a store backed by the Supabase table API.
func NewRESTStore(client *Client) *RESTStore {
	return &RESTStore{client: client}
}

// decodeRows unmarshals a JSON array and converts each row.
func decodeRows[R any, T any](body []byte, convert func(R) (T, error)) ([]T, error) {
	var rows []R
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decode rows: %w", err)
	}
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		v, err := convert(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// first returns the first row or nil when the array is empty.
func first[R any, T any](body []byte, convert func(R) (T, error)) (*T, error) {
	items, err := decodeRows(body, convert)
	if err != nil || len(items) == 0 {
		return nil, err
	}
	return &items[0], nil
}

// conflictOr maps PostgREST 409 answers (unique violations) to ConflictError.
func conflictOr(err error, msg string) error {
	var remote *domain.RemoteError
	if errors.As(err, &remote) && remote.StatusCode == http.StatusConflict {
		return &domain.ConflictError{Message: msg}
	}
	return err
}

func (s *RESTStore) CreateProfile(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	body, err := s.client.From("profiles").Insert(ctx, profileRow{
		ID:            p.ID,
		Email:         p.Email,
		FullName:      p.FullName,
		CompanyName:   p.CompanyName,
		UserType:      string(p.Role),
		Niche:         p.Niche,
		FollowerCount: p.FollowerCount,
	})
	if err != nil {
		return nil, conflictOr(err, "profile already exists")
	}
	return first(body, profileRow.toDomain)
}

func (s *RESTStore) GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	body, err := s.client.From("profiles").Select("*").Eq("id", id).Limit(1).Execute(ctx)
	if err != nil {
		return nil, err
	}
	return first(body, profileRow.toDomain)
}

func (s *RESTStore) CreateCampaign(ctx context.Context, c domain.Campaign) (*domain.Campaign, error) {
	body, err := s.client.From("campaigns").Select(campaignSelect).Insert(ctx, campaignInsert(c))
	if err != nil {
		return nil, err
	}
	created, err := first(body, campaignRow.toDomain)
	if err == nil && created == nil {
		err = fmt.Errorf("insert campaign returned no row")
	}
	return created, err
}

func (s *RESTStore) ListCampaignsByBrand(ctx context.Context, brandID uuid.UUID) ([]domain.Campaign, error) {
	body, err := s.client.From("campaigns").
		Select(campaignSelect).
		Eq("brand_id", brandID).
		Order("created_at", false).
		Execute(ctx)
	if err != nil {
		return nil, err
	}
	return decodeRows(body, campaignRow.toDomain)
}

func (s *RESTStore) ListActiveCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	body, err := s.client.From("campaigns").
		Select(campaignSelect).
		Eq("status", domain.CampaignActive).
		Order("created_at", false).
		Execute(ctx)
	if err != nil {
		return nil, err
	}
	return decodeRows(body, campaignRow.toDomain)
}

func (s *RESTStore) CreateApplication(ctx context.Context, a domain.Application) (*domain.Application, error) {
	body, err := s.client.From("campaign_applications").Select(applicationSelect).Insert(ctx, applicationInsert(a))
	if err != nil {
		return nil, conflictOr(err, "already applied to this campaign")
	}
	created, err := first(body, applicationRow.toDomain)
	if err == nil && created == nil {
		err = fmt.Errorf("insert application returned no row")
	}
	return created, err
}

func (s *RESTStore) FindApplication(ctx context.Context, campaignID, creatorID uuid.UUID) (*domain.Application, error) {
	body, err := s.client.From("campaign_applications").
		Select(applicationSelect).
		Eq("campaign_id", campaignID).
		Eq("creator_id", creatorID).
		Limit(1).
		Execute(ctx)
	if err != nil {
		return nil, err
	}
	return first(body, applicationRow.toDomain)
}

func (s *RESTStore) ListApplicationsByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Application, error) {
	body, err := s.client.From("campaign_applications").
		Select(applicationSelect).
		Eq("creator_id", creatorID).
		Order("created_at", true).
		Execute(ctx)
	if err != nil {
		return nil, err
	}
	return decodeRows(body, applicationRow.toDomain)
}

func (s *RESTStore) ListApplicationsByBrand(ctx context.Context, brandID uuid.UUID) ([]domain.Application, error) {
	body, err := s.client.From("campaign_applications").
		Select(brandApplicationsSelect).
		Eq("campaigns.brand_id", brandID).
		Order("created_at", false).
		Execute(ctx)
	if err != nil {
		return nil, err
	}
	return decodeRows(body, applicationRow.toDomain)
}

// UpdateApplicationStatus checks ownership through the inner-joined campaign,
// then patches with a status filter so a row that already left from is not
// touched.
func (s *RESTStore) UpdateApplicationStatus(ctx context.Context, id, brandID uuid.UUID, from, to domain.ApplicationStatus) (*domain.Application, error) {
	body, err := s.client.From("campaign_applications").
		Select("id,campaigns!inner(brand_id)").
		Eq("id", id).
		Eq("campaigns.brand_id", brandID).
		Execute(ctx)
	if err != nil {
		return nil, err
	}
	var owned []struct{ ID uuid.UUID }
	if err = json.Unmarshal(body, &owned); err != nil {
		return nil, fmt.Errorf("decode ownership check: %w", err)
	}
	if len(owned) == 0 {
		return nil, nil
	}

	body, err = s.client.From("campaign_applications").
		Select(applicationSelect).
		Eq("id", id).
		Eq("status", from).
		Update(ctx, map[string]any{"status": to})
	if err != nil {
		return nil, err
	}
	return first(body, applicationRow.toDomain)
}

func (s *RESTStore) ListEvents(ctx context.Context) ([]domain.Event, error) {
	body, err := s.client.From("events").Select("*").Order("event_date", true).Execute(ctx)
	if err != nil {
		return nil, err
	}
	return decodeRows(body, eventRow.toDomain)
}

func (s *RESTStore) GetEvent(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	body, err := s.client.From("events").Select("*").Eq("id", id).Limit(1).Execute(ctx)
	if err != nil {
		return nil, err
	}
	return first(body, eventRow.toDomain)
}

// CreateRegistration upserts on (event_id, user_id) so a repeated registration
// returns the existing row.
func (s *RESTStore) CreateRegistration(ctx context.Context, r domain.EventRegistration) (*domain.EventRegistration, bool, error) {
	q := s.client.From("event_registrations")
	q.filters.Set("on_conflict", "event_id,user_id")
	body, err := q.Insert(ctx, map[string]any{
		"event_id":       r.EventID,
		"user_id":        r.UserID,
		"payment_status": r.PaymentStatus,
	}, "resolution=ignore-duplicates")
	if err != nil {
		return nil, false, err
	}
	created, err := first(body, registrationRow.toDomain)
	if err != nil {
		return nil, false, err
	}
	if created != nil {
		return created, true, nil
	}
	// ignore-duplicates returns nothing for an existing row.
	body, err = s.client.From("event_registrations").
		Select("*").
		Eq("event_id", r.EventID).
		Eq("user_id", r.UserID).
		Limit(1).
		Execute(ctx)
	if err != nil {
		return nil, false, err
	}
	existing, err := first(body, registrationRow.toDomain)
	return existing, false, err
}
