package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the identity record stored next to the gateway user. CompanyName
// is only set for brands; Niche and FollowerCount only for creators.
type Profile struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	CompanyName   *string   `json:"company_name,omitempty"`
	Role          Role      `json:"user_type"`
	Niche         *string   `json:"niche,omitempty"`
	FollowerCount *int64    `json:"follower_count,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// DisplayName prefers the company name for brands.
func (p Profile) DisplayName() string {
	if p.Role == RoleBrand && p.CompanyName != nil && *p.CompanyName != "" {
		return *p.CompanyName
	}
	return p.FullName
}
