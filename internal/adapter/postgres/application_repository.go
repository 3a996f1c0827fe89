package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"influence-nexus/internal/core/domain"
)

func scanApplication(row pgx.Row, extra ...any) (domain.Application, error) {
	var a domain.Application
	dest := []any{&a.ID, &a.CampaignID, &a.CreatorID, &a.Pitch, &a.ProposedRate, &a.Status, &a.CreatedAt, &a.CampaignTitle}
	dest = append(dest, extra...)
	err := row.Scan(dest...)
	return a, err
}

// CreateApplication inserts a pending application. A second application by
// the same creator to the same campaign violates the unique index and is
// reported as a ConflictError.
func (s *CampaignStore) CreateApplication(ctx context.Context, a domain.Application) (*domain.Application, error) {
	err := s.pool.QueryRow(ctx, `INSERT INTO campaign_applications
    (campaign_id, creator_id, pitch, proposed_rate, status)
VALUES ($1,$2,$3,$4,$5) RETURNING id, created_at`,
		a.CampaignID, a.CreatorID, a.Pitch, a.ProposedRate, a.Status).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return nil, conflictOr(err, "already applied to this campaign")
	}
	return &a, nil
}

// FindApplication returns the creator's application to a campaign.
func (s *CampaignStore) FindApplication(ctx context.Context, campaignID, creatorID uuid.UUID) (*domain.Application, error) {
	a, err := scanApplication(s.pool.QueryRow(ctx, `
        SELECT a.id, a.campaign_id, a.creator_id, a.pitch, a.proposed_rate, a.status, a.created_at, c.title
        FROM campaign_applications a
        JOIN campaigns c ON c.id = a.campaign_id
        WHERE a.campaign_id = $1 AND a.creator_id = $2`, campaignID, creatorID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find application: %w", err)
	}
	return &a, nil
}

// ListApplicationsByCreator returns the creator's applications.
func (s *CampaignStore) ListApplicationsByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Application, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT a.id, a.campaign_id, a.creator_id, a.pitch, a.proposed_rate, a.status, a.created_at, c.title
        FROM campaign_applications a
        JOIN campaigns c ON c.id = a.campaign_id
        WHERE a.creator_id = $1
        ORDER BY a.created_at`, creatorID)
	if err != nil {
		return nil, fmt.Errorf("list creator applications: %w", err)
	}
	apps, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Application, error) {
		return scanApplication(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan applications: %w", err)
	}
	return apps, nil
}

// ListApplicationsByBrand returns applications to campaigns owned by the brand.
func (s *CampaignStore) ListApplicationsByBrand(ctx context.Context, brandID uuid.UUID) ([]domain.Application, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT a.id, a.campaign_id, a.creator_id, a.pitch, a.proposed_rate, a.status, a.created_at, c.title,
               COALESCE(p.full_name, '')
        FROM campaign_applications a
        JOIN campaigns c ON c.id = a.campaign_id
        LEFT JOIN profiles p ON p.id = a.creator_id
        WHERE c.brand_id = $1
        ORDER BY a.created_at DESC`, brandID)
	if err != nil {
		return nil, fmt.Errorf("list brand applications: %w", err)
	}
	apps, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Application, error) {
		var creatorName string
		a, err := scanApplication(row, &creatorName)
		a.CreatorName = creatorName
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan applications: %w", err)
	}
	return apps, nil
}

// UpdateApplicationStatus is a compare-and-set on the status column. The
// update only matches while the row is still in from and its campaign belongs
// to brandID, so of two concurrent decisions only the first one lands.
func (s *CampaignStore) UpdateApplicationStatus(ctx context.Context, id, brandID uuid.UUID, from, to domain.ApplicationStatus) (*domain.Application, error) {
	a, err := scanApplication(s.pool.QueryRow(ctx, `
        UPDATE campaign_applications a
        SET status = $4
        FROM campaigns c
        WHERE a.id = $1 AND a.campaign_id = c.id AND c.brand_id = $2 AND a.status = $3
        RETURNING a.id, a.campaign_id, a.creator_id, a.pitch, a.proposed_rate, a.status, a.created_at, c.title`,
		id, brandID, from, to))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update application status: %w", err)
	}
	return &a, nil
}
