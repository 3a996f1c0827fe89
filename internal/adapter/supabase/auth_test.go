package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influence-nexus/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, jwtSecret string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(Config{URL: srv.URL, AnonKey: "anon", ServiceKey: "service", JWTSecret: jwtSecret})
	require.NoError(t, err)
	return c
}

func TestNewRequiresURLAndKey(t *testing.T) {
	_, err := New(Config{AnonKey: "anon"})
	require.Error(t, err)

	_, err = New(Config{URL: "http://localhost"})
	require.Error(t, err)
}

func TestSignIn(t *testing.T) {
	userID := uuid.New()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "anon", r.Header.Get("apikey"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.co", body["email"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "tok",
			"refresh_token": "ref",
			"expires_at":    1700000000,
			"user":          map[string]any{"id": userID.String(), "email": "a@b.co"},
		})
	}, "")

	id, err := NewAuthGateway(client).SignIn(context.Background(), "a@b.co", "secret1")
	require.NoError(t, err)
	assert.Equal(t, userID, id.UserID)
	assert.Equal(t, "tok", id.AccessToken)
	assert.Equal(t, "ref", id.RefreshToken)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), id.ExpiresAt)
}

func TestSignInRejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
	}, "")

	_, err := NewAuthGateway(client).SignIn(context.Background(), "a@b.co", "wrong")
	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Invalid login credentials", authErr.Message)
}

func TestSignUpPendingConfirmation(t *testing.T) {
	userID := uuid.New()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/signup", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		data := body["data"].(map[string]any)
		assert.Equal(t, "brand", data["user_type"])
		_, _ = w.Write([]byte(`{"id":"` + userID.String() + `","email":"a@b.co"}`))
	}, "")

	id, err := NewAuthGateway(client).SignUp(context.Background(), "a@b.co", "secret1", map[string]any{"user_type": "brand"})
	require.NoError(t, err)
	assert.Equal(t, userID, id.UserID)
	assert.Empty(t, id.AccessToken)
}

func TestGetUserRemote(t *testing.T) {
	userID := uuid.New()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer good" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"msg":"invalid JWT"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":"` + userID.String() + `","email":"c@d.co"}`))
	}, "")
	gw := NewAuthGateway(client)

	id, err := gw.GetUser(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, userID, id.UserID)
	assert.Equal(t, "good", id.AccessToken)

	_, err = gw.GetUser(context.Background(), "bad")
	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "invalid JWT", authErr.Message)

	_, err = gw.GetUser(context.Background(), "")
	require.ErrorAs(t, err, &authErr)
}

func TestGetUserVerifiesJWTLocally(t *testing.T) {
	const secret = "super-secret-jwt-token"
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request to %s", r.URL.Path)
	}, secret)
	gw := NewAuthGateway(client)

	userID := uuid.New()
	sign := func(key string, exp time.Time) string {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
			Email: "a@b.co",
			Role:  "authenticated",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   userID.String(),
				ExpiresAt: jwt.NewNumericDate(exp),
			},
		})
		s, err := tok.SignedString([]byte(key))
		require.NoError(t, err)
		return s
	}

	good := sign(secret, time.Now().Add(time.Hour))
	id, err := gw.GetUser(context.Background(), good)
	require.NoError(t, err)
	assert.Equal(t, userID, id.UserID)
	assert.Equal(t, "a@b.co", id.Email)

	var authErr *domain.AuthError
	_, err = gw.GetUser(context.Background(), sign("other", time.Now().Add(time.Hour)))
	require.ErrorAs(t, err, &authErr)

	_, err = gw.GetUser(context.Background(), sign(secret, time.Now().Add(-time.Minute)))
	require.ErrorAs(t, err, &authErr)
}

func TestServerErrorStaysRemote(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}, "")

	err := NewAuthGateway(client).SignOut(context.Background(), "tok")
	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusBadGateway, remote.StatusCode)
	assert.Equal(t, "upstream down", remote.Body)
}
