package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"influence-nexus/internal/core/dashboard"
	"influence-nexus/internal/core/domain"
	"influence-nexus/internal/core/port"
	"influence-nexus/internal/metrics"
)

// CreatorUseCase is the creator side of the lifecycle: browsing active
// campaigns and submitting applications.
type CreatorUseCase struct {
	store  port.CampaignStore
	logger *slog.Logger
}

// NewCreatorUseCase creates a CreatorUseCase backed by store.
func NewCreatorUseCase(store port.CampaignStore, logger *slog.Logger) *CreatorUseCase {
	return &CreatorUseCase{store: store, logger: logger}
}

// LoadCreatorDashboard reads every active campaign and the creator's own
// applications.
func (u *CreatorUseCase) LoadCreatorDashboard(ctx context.Context, sess domain.Session) (*port.CreatorDashboard, error) {
	if err := sess.RequireRole(domain.RoleCreator); err != nil {
		return nil, err
	}
	snap, err := u.snapshot(ctx, sess)
	if err != nil {
		return nil, err
	}
	return creatorDashboard(snap), nil
}

// Submit applies to an active campaign. Applying twice is not an error: the
// existing application is returned with Created false and nothing is written.
func (u *CreatorUseCase) Submit(ctx context.Context, sess domain.Session, in port.SubmitInput) (*port.ApplicationSubmitted, error) {
	if err := sess.RequireRole(domain.RoleCreator); err != nil {
		return nil, err
	}
	snap, err := u.snapshot(ctx, sess)
	if err != nil {
		return nil, err
	}
	if existing, ok := snap.ApplicationFor(in.CampaignID); ok {
		return &port.ApplicationSubmitted{Application: existing, Dashboard: *creatorDashboard(snap)}, nil
	}
	campaign, ok := snap.Campaign(in.CampaignID)
	if !ok {
		return nil, &domain.NotFoundError{Entity: "campaign", ID: in.CampaignID.String()}
	}
	app, err := domain.NewApplication(campaign, sess.UserID, in.Pitch, in.ProposedRate)
	if err != nil {
		return nil, err
	}

	created, err := u.store.CreateApplication(ctx, app)
	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		// Lost a race with another submit from the same creator.
		existing, findErr := u.store.FindApplication(ctx, in.CampaignID, sess.UserID)
		if findErr != nil {
			return nil, fmt.Errorf("find application: %w", findErr)
		}
		if existing == nil {
			return nil, err
		}
		snap = snap.WithApplication(*existing)
		return &port.ApplicationSubmitted{Application: *existing, Dashboard: *creatorDashboard(snap)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}
	if created.CampaignTitle == "" {
		created.CampaignTitle = campaign.Title
	}
	snap = snap.WithApplication(*created)

	metrics.RecordTransition(string(created.Status))
	u.logger.Info("application submitted",
		slog.String("application_id", created.ID.String()),
		slog.String("campaign_id", campaign.ID.String()),
		slog.String("creator_id", sess.UserID.String()))

	return &port.ApplicationSubmitted{Application: *created, Created: true, Dashboard: *creatorDashboard(snap)}, nil
}

func (u *CreatorUseCase) snapshot(ctx context.Context, sess domain.Session) (dashboard.CreatorSnapshot, error) {
	campaigns, err := u.store.ListActiveCampaigns(ctx)
	if err != nil {
		return dashboard.CreatorSnapshot{}, fmt.Errorf("list campaigns: %w", err)
	}
	apps, err := u.store.ListApplicationsByCreator(ctx, sess.UserID)
	if err != nil {
		return dashboard.CreatorSnapshot{}, fmt.Errorf("list applications: %w", err)
	}
	return dashboard.NewCreatorSnapshot(sess.Profile, campaigns, apps), nil
}

func creatorDashboard(snap dashboard.CreatorSnapshot) *port.CreatorDashboard {
	return &port.CreatorDashboard{Snapshot: snap, Stats: snap.Stats()}
}
