package supabase

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"influence-nexus/internal/core/domain"
	"influence-nexus/internal/core/port"
)

// accessClaims is the subset of a Supabase access token we read.
type accessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// verifyToken checks an HS256 access token against the project JWT secret.
func (c *Client) verifyToken(token string) (*port.Identity, error) {
	var claims accessClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return c.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, &domain.AuthError{Message: "session is invalid or expired"}
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, &domain.AuthError{Message: fmt.Sprintf("token subject %q is not a user id", claims.Subject)}
	}
	id := &port.Identity{UserID: userID, Email: claims.Email, AccessToken: token}
	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
	}
	return id, nil
}
