package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"influence-nexus/internal/core/domain"
	"influence-nexus/internal/core/port"
)

// AuthGateway implements port.IdentityGateway on top of the Supabase auth API.
type AuthGateway struct {
	client *Client
}

// NewAuthGateway wraps a client as an identity gateway.
func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

// SignUp creates a user. Metadata lands in the user's user_metadata. When the
// project requires e-mail confirmation the returned identity has no access
// token.
func (g *AuthGateway) SignUp(ctx context.Context, email, password string, metadata map[string]any) (*port.Identity, error) {
	body, _, err := g.client.do(ctx, "auth", request{
		method: http.MethodPost,
		path:   "/auth/v1/signup",
		apiKey: g.client.anonKey,
		body: map[string]any{
			"email":    email,
			"password": password,
			"data":     metadata,
		},
	})
	if err != nil {
		return nil, authError(err)
	}
	return parseIdentity(body)
}

// SignIn exchanges email and password for a session.
func (g *AuthGateway) SignIn(ctx context.Context, email, password string) (*port.Identity, error) {
	body, _, err := g.client.do(ctx, "auth", request{
		method: http.MethodPost,
		path:   "/auth/v1/token",
		query:  "grant_type=password",
		apiKey: g.client.anonKey,
		body: map[string]string{
			"email":    email,
			"password": password,
		},
	})
	if err != nil {
		return nil, authError(err)
	}
	return parseIdentity(body)
}

// SignOut revokes the session behind the token.
func (g *AuthGateway) SignOut(ctx context.Context, accessToken string) error {
	_, _, err := g.client.do(ctx, "auth", request{
		method: http.MethodPost,
		path:   "/auth/v1/logout",
		apiKey: g.client.anonKey,
		bearer: accessToken,
	})
	if err != nil {
		return authError(err)
	}
	return nil
}

// GetUser resolves an access token. With a JWT secret configured the token is
// verified locally; otherwise the auth API is asked.
func (g *AuthGateway) GetUser(ctx context.Context, accessToken string) (*port.Identity, error) {
	if accessToken == "" {
		return nil, &domain.AuthError{Message: "session is missing"}
	}
	if g.client.jwtSecret != nil {
		return g.client.verifyToken(accessToken)
	}
	body, _, err := g.client.do(ctx, "auth", request{
		method: http.MethodGet,
		path:   "/auth/v1/user",
		apiKey: g.client.anonKey,
		bearer: accessToken,
	})
	if err != nil {
		return nil, authError(err)
	}
	id, err := parseUser(gjson.ParseBytes(body))
	if err != nil {
		return nil, err
	}
	id.AccessToken = accessToken
	return id, nil
}

// parseIdentity reads either a session payload ({access_token, user}) or a bare
// user payload returned by sign-up when confirmation is pending.
func parseIdentity(body []byte) (*port.Identity, error) {
	doc := gjson.ParseBytes(body)
	user := doc.Get("user")
	if !user.Exists() {
		user = doc
	}
	id, err := parseUser(user)
	if err != nil {
		return nil, err
	}
	id.AccessToken = doc.Get("access_token").String()
	id.RefreshToken = doc.Get("refresh_token").String()
	if exp := doc.Get("expires_at").Int(); exp > 0 {
		id.ExpiresAt = time.Unix(exp, 0).UTC()
	} else if in := doc.Get("expires_in").Int(); in > 0 {
		id.ExpiresAt = time.Now().UTC().Add(time.Duration(in) * time.Second)
	}
	return id, nil
}

func parseUser(user gjson.Result) (*port.Identity, error) {
	userID, err := uuid.Parse(user.Get("id").String())
	if err != nil {
		return nil, fmt.Errorf("auth response missing user id: %w", err)
	}
	return &port.Identity{UserID: userID, Email: user.Get("email").String()}, nil
}

// authError turns 400/401/403/422 answers of the auth API into AuthErrors.
func authError(err error) error {
	var remote *domain.RemoteError
	if !errors.As(err, &remote) {
		return err
	}
	switch remote.StatusCode {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusUnprocessableEntity:
		return &domain.AuthError{Message: errorMessage(remote.Body)}
	}
	return err
}
