package port

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Identity is what the hosted auth service knows about a user.
type Identity struct {
	UserID       uuid.UUID
	Email        string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// IdentityGateway is the hosted authentication service. Rejected credentials
// and invalid tokens are reported as *domain.AuthError; other failures as
// *domain.RemoteError.
type IdentityGateway interface {
	// SignUp creates a user. Metadata is stored on the auth user as-is.
	SignUp(ctx context.Context, email, password string, metadata map[string]any) (*Identity, error)
	// SignIn exchanges email and password for a session.
	SignIn(ctx context.Context, email, password string) (*Identity, error)
	// SignOut revokes the session behind the access token.
	SignOut(ctx context.Context, accessToken string) error
	// GetUser resolves an access token into the user it was issued to.
	GetUser(ctx context.Context, accessToken string) (*Identity, error)
}
