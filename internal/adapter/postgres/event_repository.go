package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"influence-nexus/internal/core/domain"
)

const eventColumns = `id, title, description, event_date, location, price, capacity, image_url`

func scanEvent(row pgx.Row) (domain.Event, error) {
	var e domain.Event
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.EventDate, &e.Location, &e.Price, &e.Capacity, &e.ImageURL)
	return e, err
}

// ListEvents returns all events, soonest first.
func (s *CampaignStore) ListEvents(ctx context.Context) ([]domain.Event, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+eventColumns+` FROM events ORDER BY event_date ASC`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Event, error) {
		return scanEvent(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan events: %w", err)
	}
	return events, nil
}

// GetEvent returns an event by id.
func (s *CampaignStore) GetEvent(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	e, err := scanEvent(s.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}

// CreateRegistration records a registration. The no-op DO UPDATE makes
// RETURNING yield the existing row when the user registered before; xmax is
// zero only for a freshly inserted tuple.
func (s *CampaignStore) CreateRegistration(ctx context.Context, r domain.EventRegistration) (*domain.EventRegistration, bool, error) {
	var created bool
	err := s.pool.QueryRow(ctx, `INSERT INTO event_registrations (event_id, user_id, payment_status)
VALUES ($1,$2,$3)
ON CONFLICT (event_id, user_id) DO UPDATE SET payment_status = event_registrations.payment_status
RETURNING id, event_id, user_id, payment_status, created_at, (xmax = 0) AS created`,
		r.EventID, r.UserID, r.PaymentStatus).Scan(&r.ID, &r.EventID, &r.UserID, &r.PaymentStatus, &r.CreatedAt, &created)
	if err != nil {
		return nil, false, fmt.Errorf("insert registration: %w", err)
	}
	return &r, created, nil
}
