package usecase

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influence-nexus/internal/core/domain"
	"influence-nexus/internal/core/port"
)

// memStore is an in-memory CampaignStore used to run the brand and creator
// flows against shared state.
type memStore struct {
	mu           sync.Mutex
	profiles     map[uuid.UUID]domain.Profile
	campaigns    []domain.Campaign
	applications []domain.Application
}

var _ port.CampaignStore = (*memStore)(nil)

func newMemStore(profiles ...domain.Profile) *memStore {
	s := &memStore{profiles: map[uuid.UUID]domain.Profile{}}
	for _, p := range profiles {
		s.profiles[p.ID] = p
	}
	return s
}

func (s *memStore) CreateProfile(_ context.Context, p domain.Profile) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.ID] = p
	return &p, nil
}

func (s *memStore) GetProfile(_ context.Context, id uuid.UUID) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *memStore) CreateCampaign(_ context.Context, c domain.Campaign) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	s.campaigns = append([]domain.Campaign{c}, s.campaigns...)
	return &c, nil
}

func (s *memStore) ListCampaignsByBrand(_ context.Context, brandID uuid.UUID) ([]domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Campaign
	for _, c := range s.campaigns {
		if c.BrandID == brandID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *memStore) ListActiveCampaigns(_ context.Context) ([]domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Campaign
	for _, c := range s.campaigns {
		if c.IsActive() {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *memStore) CreateApplication(_ context.Context, a domain.Application) (*domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.applications {
		if existing.CampaignID == a.CampaignID && existing.CreatorID == a.CreatorID {
			return nil, &domain.ConflictError{Message: "already applied to this campaign"}
		}
	}
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	s.applications = append(s.applications, a)
	return &a, nil
}

func (s *memStore) FindApplication(_ context.Context, campaignID, creatorID uuid.UUID) (*domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.applications {
		if a.CampaignID == campaignID && a.CreatorID == creatorID {
			return &a, nil
		}
	}
	return nil, nil
}

func (s *memStore) ListApplicationsByCreator(_ context.Context, creatorID uuid.UUID) ([]domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Application
	for _, a := range s.applications {
		if a.CreatorID == creatorID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *memStore) ListApplicationsByBrand(_ context.Context, brandID uuid.UUID) ([]domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Application
	for _, a := range s.applications {
		if s.ownerLocked(a.CampaignID) == brandID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *memStore) UpdateApplicationStatus(_ context.Context, id, brandID uuid.UUID, from, to domain.ApplicationStatus) (*domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.applications {
		if a.ID == id && a.Status == from && s.ownerLocked(a.CampaignID) == brandID {
			s.applications[i].Status = to
			updated := s.applications[i]
			return &updated, nil
		}
	}
	return nil, nil
}

func (s *memStore) ownerLocked(campaignID uuid.UUID) uuid.UUID {
	i := slices.IndexFunc(s.campaigns, func(c domain.Campaign) bool { return c.ID == campaignID })
	if i < 0 {
		return uuid.Nil
	}
	return s.campaigns[i].BrandID
}

func (s *memStore) ListEvents(context.Context) ([]domain.Event, error) { return nil, nil }

func (s *memStore) GetEvent(context.Context, uuid.UUID) (*domain.Event, error) { return nil, nil }

func (s *memStore) CreateRegistration(_ context.Context, r domain.EventRegistration) (*domain.EventRegistration, bool, error) {
	return &r, true, nil
}

func TestBrandCreatorLifecycle(t *testing.T) {
	ctx := context.Background()
	brand, creator := brandSession(), creatorSession()
	store := newMemStore(brand.Profile, creator.Profile)
	brands := NewBrandUseCase(store, discardLogger())
	creators := NewCreatorUseCase(store, discardLogger())

	created, err := brands.CreateCampaign(ctx, brand, domain.CampaignDraft{
		Title:       "Monsoon sale",
		Description: "Three reels",
		Budget:      5000,
		Category:    "fashion",
		Deadline:    time.Date(2026, 12, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.Dashboard.Stats.ActiveCampaigns)
	assert.Equal(t, "₹5,000", created.Dashboard.Stats.TotalBudgetLabel)

	cdash, err := creators.LoadCreatorDashboard(ctx, creator)
	require.NoError(t, err)
	require.Len(t, cdash.Snapshot.Campaigns, 1)
	assert.False(t, cdash.Snapshot.HasApplied(created.Campaign.ID))

	submitted, err := creators.Submit(ctx, creator, port.SubmitInput{CampaignID: created.Campaign.ID, Pitch: "X"})
	require.NoError(t, err)
	assert.True(t, submitted.Created)
	assert.True(t, submitted.Dashboard.Snapshot.HasApplied(created.Campaign.ID))

	again, err := creators.Submit(ctx, creator, port.SubmitInput{CampaignID: created.Campaign.ID, Pitch: "X"})
	require.NoError(t, err)
	assert.False(t, again.Created)
	assert.Equal(t, submitted.Application.ID, again.Application.ID)

	bdash, err := brands.LoadBrandDashboard(ctx, brand)
	require.NoError(t, err)
	assert.Equal(t, 1, bdash.Stats.TotalApplications)

	decided, err := brands.Decide(ctx, brand, submitted.Application.ID, domain.ApplicationAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationAccepted, decided.Application.Status)

	cdash, err = creators.LoadCreatorDashboard(ctx, creator)
	require.NoError(t, err)
	app, ok := cdash.Snapshot.ApplicationFor(created.Campaign.ID)
	require.True(t, ok)
	assert.Equal(t, domain.ApplicationAccepted, app.Status)
	assert.Equal(t, 1, cdash.Stats.Accepted)
	assert.Zero(t, cdash.Stats.Pending)

	_, err = brands.Decide(ctx, brand, submitted.Application.ID, domain.ApplicationRejected)
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestOtherBrandCannotDecide(t *testing.T) {
	ctx := context.Background()
	owner, other, creator := brandSession(), brandSession(), creatorSession()
	store := newMemStore(owner.Profile, other.Profile, creator.Profile)
	brands := NewBrandUseCase(store, discardLogger())

	created, err := brands.CreateCampaign(ctx, owner, domain.CampaignDraft{
		Title: "t", Description: "d", Budget: 10, Category: "c", Deadline: time.Now(),
	})
	require.NoError(t, err)
	submitted, err := NewCreatorUseCase(store, discardLogger()).Submit(ctx, creator, port.SubmitInput{CampaignID: created.Campaign.ID, Pitch: "p"})
	require.NoError(t, err)

	_, err = brands.Decide(ctx, other, submitted.Application.ID, domain.ApplicationAccepted)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)

	odash, err := brands.LoadBrandDashboard(ctx, other)
	require.NoError(t, err)
	assert.Zero(t, odash.Stats.TotalApplications)
	assert.Equal(t, "₹0", odash.Stats.TotalBudgetLabel)
}

func TestConcurrentDecisionsOnlyOneWins(t *testing.T) {
	ctx := context.Background()
	brand, creator := brandSession(), creatorSession()
	store := newMemStore(brand.Profile, creator.Profile)
	brands := NewBrandUseCase(store, discardLogger())

	created, err := brands.CreateCampaign(ctx, brand, domain.CampaignDraft{
		Title: "t", Description: "d", Budget: 10, Category: "c", Deadline: time.Now(),
	})
	require.NoError(t, err)
	submitted, err := NewCreatorUseCase(store, discardLogger()).Submit(ctx, creator, port.SubmitInput{CampaignID: created.Campaign.ID, Pitch: "p"})
	require.NoError(t, err)

	outcomes := []domain.ApplicationStatus{domain.ApplicationAccepted, domain.ApplicationRejected}
	errs := make([]error, 8)
	var wg sync.WaitGroup
	for i := range errs {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = brands.Decide(ctx, brand, submitted.Application.ID, outcomes[i%2])
		}()
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		var conflict *domain.ConflictError
		assert.ErrorAs(t, err, &conflict)
	}
	assert.Equal(t, 1, wins)
}
