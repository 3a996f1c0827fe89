package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus of an event registration. Registration only records intent, so
// pending is the only value written.
type PaymentStatus string

const PaymentPending PaymentStatus = "pending"

// Event is a paid meetup creators and brands can register for.
type Event struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date"`
	Location    string    `json:"location"`
	Price       float64   `json:"price"`
	Capacity    int       `json:"capacity"`
	ImageURL    *string   `json:"image_url,omitempty"`
}

// EventRegistration links a user to an event. Capacity is not enforced.
type EventRegistration struct {
	ID            uuid.UUID     `json:"id"`
	EventID       uuid.UUID     `json:"event_id"`
	UserID        uuid.UUID     `json:"user_id"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
}
