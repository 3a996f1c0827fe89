package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"influence-nexus/internal/core/domain"
)

// CreateCampaign inserts a campaign. The store assigns id and created_at.
func (s *CampaignStore) CreateCampaign(ctx context.Context, c domain.Campaign) (*domain.Campaign, error) {
	err := s.pool.QueryRow(ctx, `INSERT INTO campaigns
    (brand_id, title, description, budget, category, deadline, requirements, status)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id, created_at`,
		c.BrandID, c.Title, c.Description, c.Budget, c.Category, c.Deadline, c.Requirements, c.Status).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert campaign: %w", err)
	}
	return &c, nil
}

// ListCampaignsByBrand returns the brand's campaigns, newest first.
func (s *CampaignStore) ListCampaignsByBrand(ctx context.Context, brandID uuid.UUID) ([]domain.Campaign, error) {
	return s.listCampaigns(ctx, `
        SELECT c.id, c.brand_id, c.title, c.description, c.budget, c.category, c.deadline,
               COALESCE(c.requirements, ''), c.status, c.created_at, COALESCE(p.company_name, p.full_name, '')
        FROM campaigns c
        LEFT JOIN profiles p ON p.id = c.brand_id
        WHERE c.brand_id = $1
        ORDER BY c.created_at DESC`, brandID)
}

// ListActiveCampaigns returns every active campaign with its brand name.
func (s *CampaignStore) ListActiveCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return s.listCampaigns(ctx, `
        SELECT c.id, c.brand_id, c.title, c.description, c.budget, c.category, c.deadline,
               COALESCE(c.requirements, ''), c.status, c.created_at, COALESCE(p.company_name, p.full_name, '')
        FROM campaigns c
        LEFT JOIN profiles p ON p.id = c.brand_id
        WHERE c.status = $1
        ORDER BY c.created_at DESC`, domain.CampaignActive)
}

func (s *CampaignStore) listCampaigns(ctx context.Context, query string, args ...any) ([]domain.Campaign, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err := row.Scan(
			&c.ID,
			&c.BrandID,
			&c.Title,
			&c.Description,
			&c.Budget,
			&c.Category,
			&c.Deadline,
			&c.Requirements,
			&c.Status,
			&c.CreatedAt,
			&c.BrandName,
		)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan campaigns: %w", err)
	}
	return campaigns, nil
}
