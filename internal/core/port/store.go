package port

import (
	"context"

	"github.com/google/uuid"

	"influence-nexus/internal/core/domain"
)

// CampaignStore is the persistence layer behind the dashboards. It is an
// outbound port in hexagonal architecture. Lookups of a single row return
// nil, nil when the row is absent. Unique violations are reported as
// *domain.ConflictError.
type CampaignStore interface {
	// CreateProfile stores the profile created at sign-up.
	CreateProfile(ctx context.Context, p domain.Profile) (*domain.Profile, error)
	// GetProfile returns the profile of a gateway user.
	GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error)

	// CreateCampaign inserts a campaign and returns it with id and timestamp.
	CreateCampaign(ctx context.Context, c domain.Campaign) (*domain.Campaign, error)
	// ListCampaignsByBrand returns the brand's campaigns, newest first.
	ListCampaignsByBrand(ctx context.Context, brandID uuid.UUID) ([]domain.Campaign, error)
	// ListActiveCampaigns returns every active campaign with its brand name,
	// newest first.
	ListActiveCampaigns(ctx context.Context) ([]domain.Campaign, error)

	// CreateApplication inserts a pending application.
	CreateApplication(ctx context.Context, a domain.Application) (*domain.Application, error)
	// FindApplication returns the creator's application to a campaign.
	FindApplication(ctx context.Context, campaignID, creatorID uuid.UUID) (*domain.Application, error)
	// ListApplicationsByCreator returns the creator's applications.
	ListApplicationsByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Application, error)
	// ListApplicationsByBrand returns applications to campaigns owned by the
	// brand, newest first.
	ListApplicationsByBrand(ctx context.Context, brandID uuid.UUID) ([]domain.Application, error)
	// UpdateApplicationStatus moves an application from one status to another
	// only while it is still in from and its campaign belongs to brandID. It
	// returns nil, nil when no row matched.
	UpdateApplicationStatus(ctx context.Context, id, brandID uuid.UUID, from, to domain.ApplicationStatus) (*domain.Application, error)

	// ListEvents returns every event ordered by date, soonest first.
	ListEvents(ctx context.Context) ([]domain.Event, error)
	// GetEvent returns an event by id.
	GetEvent(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	// CreateRegistration records a registration. Registering twice returns the
	// existing row with created set to false.
	CreateRegistration(ctx context.Context, r domain.EventRegistration) (reg *domain.EventRegistration, created bool, err error)
}
