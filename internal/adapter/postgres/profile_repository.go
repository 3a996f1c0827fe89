package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"influence-nexus/internal/core/domain"
)

const profileColumns = `id, email, full_name, company_name, user_type, niche, follower_count, created_at`

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(&p.ID, &p.Email, &p.FullName, &p.CompanyName, &p.Role, &p.Niche, &p.FollowerCount, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProfile inserts the profile created at sign-up.
func (s *CampaignStore) CreateProfile(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	row := s.pool.QueryRow(ctx, `INSERT INTO profiles (id, email, full_name, company_name, user_type, niche, follower_count)
VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING `+profileColumns,
		p.ID, p.Email, p.FullName, p.CompanyName, p.Role, p.Niche, p.FollowerCount)
	created, err := scanProfile(row)
	if err != nil {
		return nil, conflictOr(err, "profile already exists")
	}
	return created, nil
}

// GetProfile returns a profile by user id.
func (s *CampaignStore) GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	p, err := scanProfile(s.pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}
