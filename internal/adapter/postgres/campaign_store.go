package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"influence-nexus/internal/core/domain"
)

const uniqueViolation = "23505"

// CampaignStore implements port.CampaignStore using pgxpool for PostgreSQL.
// Ownership scoping is done in SQL: brand reads and writes always filter on
// campaigns.brand_id.
type CampaignStore struct {
	pool Querier
}

// Querier is the part of *pgxpool.Pool the store uses.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewCampaignStore returns a new store instance. pool is normally a
// *pgxpool.Pool.
func NewCampaignStore(pool Querier) *CampaignStore {
	return &CampaignStore{pool: pool}
}

// conflictOr maps unique violations to a ConflictError and returns any other
// error unchanged.
func conflictOr(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return &domain.ConflictError{Message: msg}
	}
	return err
}
