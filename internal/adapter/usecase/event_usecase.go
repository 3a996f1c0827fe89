package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"influence-nexus/internal/core/domain"
	"influence-nexus/internal/core/port"
	"influence-nexus/internal/metrics"
)

// EventUseCase lists events and records registrations. Capacity is not
// enforced and no payment is taken.
type EventUseCase struct {
	store  port.CampaignStore
	logger *slog.Logger
}

// NewEventUseCase creates an EventUseCase backed by store.
func NewEventUseCase(store port.CampaignStore, logger *slog.Logger) *EventUseCase {
	return &EventUseCase{store: store, logger: logger}
}

// ListEvents returns every event, soonest first.
func (u *EventUseCase) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := u.store.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// Register records a pending registration for any signed-in user. A repeated
// registration returns the existing row.
func (u *EventUseCase) Register(ctx context.Context, sess *domain.Session, eventID uuid.UUID) (*port.RegistrationResult, error) {
	if sess == nil {
		return nil, &domain.AuthError{Message: "please login to register for events", Redirect: "/auth"}
	}
	event, err := u.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event == nil {
		return nil, &domain.NotFoundError{Entity: "event", ID: eventID.String()}
	}
	reg, created, err := u.store.CreateRegistration(ctx, domain.EventRegistration{
		EventID:       event.ID,
		UserID:        sess.UserID,
		PaymentStatus: domain.PaymentPending,
	})
	if err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}
	if reg == nil {
		return nil, fmt.Errorf("create registration: no row returned")
	}

	if created {
		metrics.RecordEventRegistration()
	}
	u.logger.Info("event registration",
		slog.String("event_id", event.ID.String()),
		slog.String("user_id", sess.UserID.String()),
		slog.Bool("created", created))
	return &port.RegistrationResult{Registration: *reg, Created: created}, nil
}
