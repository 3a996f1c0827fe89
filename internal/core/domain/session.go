package domain

import (
	"github.com/google/uuid"
)

// Session is the authenticated caller. It is built once, when the access token
// is resolved, and passed explicitly to every operation that needs identity.
type Session struct {
	UserID      uuid.UUID
	Email       string
	AccessToken string
	Profile     Profile
}

// NewSession binds a gateway identity to its stored profile. The profile must
// belong to the same user.
func NewSession(userID uuid.UUID, email, accessToken string, profile Profile) (Session, error) {
	if profile.ID != userID {
		return Session{}, &AuthError{Message: "profile does not belong to session user"}
	}
	if _, err := ParseRole(string(profile.Role)); err != nil {
		return Session{}, err
	}
	return Session{
		UserID:      userID,
		Email:       email,
		AccessToken: accessToken,
		Profile:     profile,
	}, nil
}

// Role returns the immutable profile role.
func (s Session) Role() Role {
	return s.Profile.Role
}

// IsBrand reports whether the session belongs to a brand.
func (s Session) IsBrand() bool {
	return s.Profile.Role == RoleBrand
}

// IsCreator reports whether the session belongs to a creator.
func (s Session) IsCreator() bool {
	return s.Profile.Role == RoleCreator
}

// RequireRole returns an AuthError redirecting to the caller's own dashboard
// when the session does not have the wanted role.
func (s Session) RequireRole(want Role) error {
	if s.Profile.Role == want {
		return nil
	}
	return &AuthError{
		Message:  "this area is only available to " + string(want) + " accounts",
		Redirect: s.Profile.Role.DashboardPath(),
	}
}
