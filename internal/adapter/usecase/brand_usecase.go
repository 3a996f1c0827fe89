package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"influence-nexus/internal/core/dashboard"
	"influence-nexus/internal/core/domain"
	"influence-nexus/internal/core/port"
	"influence-nexus/internal/metrics"
)

// BrandUseCase is the brand side of the application lifecycle: campaign
// creation and accept/reject decisions, each merged into the dashboard
// snapshot loaded for the request.
type BrandUseCase struct {
	store  port.CampaignStore
	logger *slog.Logger
}

// NewBrandUseCase creates a BrandUseCase that reads and writes through store.
func NewBrandUseCase(store port.CampaignStore, logger *slog.Logger) *BrandUseCase {
	return &BrandUseCase{store: store, logger: logger}
}

// LoadBrandDashboard reads the brand's campaigns and the applications to them.
func (u *BrandUseCase) LoadBrandDashboard(ctx context.Context, sess domain.Session) (*port.BrandDashboard, error) {
	if err := sess.RequireRole(domain.RoleBrand); err != nil {
		return nil, err
	}
	snap, err := u.snapshot(ctx, sess)
	if err != nil {
		return nil, err
	}
	return brandDashboard(snap), nil
}

// CreateCampaign stores a new active campaign owned by the session user and
// prepends it to the dashboard.
func (u *BrandUseCase) CreateCampaign(ctx context.Context, sess domain.Session, draft domain.CampaignDraft) (*port.CampaignCreated, error) {
	if err := sess.RequireRole(domain.RoleBrand); err != nil {
		return nil, err
	}
	campaign, err := domain.NewCampaign(sess.UserID, draft)
	if err != nil {
		return nil, err
	}
	snap, err := u.snapshot(ctx, sess)
	if err != nil {
		return nil, err
	}

	created, err := u.store.CreateCampaign(ctx, campaign)
	if err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	if created.BrandName == "" {
		created.BrandName = sess.Profile.DisplayName()
	}
	snap = snap.WithCampaign(*created)

	metrics.RecordCampaignCreated()
	u.logger.Info("campaign created",
		slog.String("campaign_id", created.ID.String()),
		slog.String("brand_id", sess.UserID.String()),
		slog.Float64("budget", created.Budget))

	return &port.CampaignCreated{Campaign: *created, Dashboard: *brandDashboard(snap)}, nil
}

// Decide accepts or rejects a pending application to one of the brand's
// campaigns. The store write only succeeds while the row is still pending,
// so of two concurrent decisions the second gets a ConflictError.
func (u *BrandUseCase) Decide(ctx context.Context, sess domain.Session, applicationID uuid.UUID, outcome domain.ApplicationStatus) (*port.ApplicationDecided, error) {
	if err := sess.RequireRole(domain.RoleBrand); err != nil {
		return nil, err
	}
	snap, err := u.snapshot(ctx, sess)
	if err != nil {
		return nil, err
	}
	app, ok := snap.Application(applicationID)
	if !ok {
		return nil, &domain.NotFoundError{Entity: "application", ID: applicationID.String()}
	}
	decided, err := app.Decide(outcome)
	if err != nil {
		return nil, err
	}

	updated, err := u.store.UpdateApplicationStatus(ctx, app.ID, sess.UserID, app.Status, decided.Status)
	if err != nil {
		return nil, fmt.Errorf("update application status: %w", err)
	}
	if updated == nil {
		return nil, &domain.ConflictError{Message: "application was already decided"}
	}
	snap = snap.WithApplicationStatus(app.ID, updated.Status)
	decided.Status = updated.Status

	metrics.RecordTransition(string(decided.Status))
	u.logger.Info("application decided",
		slog.String("application_id", app.ID.String()),
		slog.String("status", string(decided.Status)))

	return &port.ApplicationDecided{Application: decided, Dashboard: *brandDashboard(snap)}, nil
}

func (u *BrandUseCase) snapshot(ctx context.Context, sess domain.Session) (dashboard.BrandSnapshot, error) {
	campaigns, err := u.store.ListCampaignsByBrand(ctx, sess.UserID)
	if err != nil {
		return dashboard.BrandSnapshot{}, fmt.Errorf("list campaigns: %w", err)
	}
	apps, err := u.store.ListApplicationsByBrand(ctx, sess.UserID)
	if err != nil {
		return dashboard.BrandSnapshot{}, fmt.Errorf("list applications: %w", err)
	}
	return dashboard.NewBrandSnapshot(sess.Profile, campaigns, apps), nil
}

func brandDashboard(snap dashboard.BrandSnapshot) *port.BrandDashboard {
	return &port.BrandDashboard{Snapshot: snap, Stats: snap.Stats()}
}
