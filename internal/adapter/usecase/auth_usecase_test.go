package usecase

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"influence-nexus/internal/core/domain"
	"influence-nexus/internal/core/port"
	"influence-nexus/internal/core/port/mocks"
)

func TestSignUpBrand(t *testing.T) {
	userID := uuid.New()
	identity := mocks.NewMockIdentityGateway(t)
	store := mocks.NewMockCampaignStore(t)

	identity.EXPECT().
		SignUp(mock.Anything, "owner@acme.in", "secret1", map[string]any{
			"full_name":    "Priya Shah",
			"user_type":    "brand",
			"company_name": "Acme",
		}).
		Return(&port.Identity{UserID: userID, Email: "owner@acme.in", AccessToken: "tok", ExpiresAt: time.Unix(1700000000, 0)}, nil)
	store.EXPECT().
		CreateProfile(mock.Anything, mock.AnythingOfType("domain.Profile")).
		RunAndReturn(func(_ context.Context, p domain.Profile) (*domain.Profile, error) {
			assert.Equal(t, userID, p.ID)
			assert.Equal(t, domain.RoleBrand, p.Role)
			require.NotNil(t, p.CompanyName)
			assert.Equal(t, "Acme", *p.CompanyName)
			return &p, nil
		})

	res, err := NewAuthUseCase(identity, store, discardLogger()).SignUp(context.Background(), port.SignUpInput{
		Email:       " Owner@Acme.in ",
		Password:    "secret1",
		FullName:    "Priya Shah",
		CompanyName: "Acme",
		UserType:    "brand",
	})
	require.NoError(t, err)
	assert.Equal(t, "/brand/dashboard", res.RedirectTo)
	assert.True(t, res.Session.IsBrand())
	assert.Equal(t, "tok", res.Session.AccessToken)
}

func TestSignUpProfileFailureLogsAccount(t *testing.T) {
	userID := uuid.New()
	identity := mocks.NewMockIdentityGateway(t)
	store := mocks.NewMockCampaignStore(t)
	identity.EXPECT().
		SignUp(mock.Anything, "rohan@creator.in", "secret1", mock.Anything).
		Return(&port.Identity{UserID: userID, Email: "rohan@creator.in"}, nil)
	store.EXPECT().
		CreateProfile(mock.Anything, mock.AnythingOfType("domain.Profile")).
		Return(nil, errors.New("connection reset"))

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	_, err := NewAuthUseCase(identity, store, logger).SignUp(context.Background(), port.SignUpInput{
		Email:    "rohan@creator.in",
		Password: "secret1",
		FullName: "Rohan",
		UserType: "creator",
	})
	require.ErrorContains(t, err, "connection reset")
	assert.Contains(t, logs.String(), `"level":"ERROR"`)
	assert.Contains(t, logs.String(), `"user_id":"`+userID.String()+`"`)
}

func TestSignUpCreatorDropsCompany(t *testing.T) {
	userID := uuid.New()
	identity := mocks.NewMockIdentityGateway(t)
	store := mocks.NewMockCampaignStore(t)

	identity.EXPECT().
		SignUp(mock.Anything, "rohan@creator.in", "secret1", map[string]any{"full_name": "Rohan", "user_type": "creator"}).
		Return(&port.Identity{UserID: userID, Email: "rohan@creator.in"}, nil)
	store.EXPECT().
		CreateProfile(mock.Anything, mock.AnythingOfType("domain.Profile")).
		RunAndReturn(func(_ context.Context, p domain.Profile) (*domain.Profile, error) {
			assert.Nil(t, p.CompanyName)
			return &p, nil
		})

	res, err := NewAuthUseCase(identity, store, discardLogger()).SignUp(context.Background(), port.SignUpInput{
		Email:       "rohan@creator.in",
		Password:    "secret1",
		FullName:    "Rohan",
		CompanyName: "ignored",
		UserType:    "creator",
	})
	require.NoError(t, err)
	assert.Equal(t, "/creator/dashboard", res.RedirectTo)
}

func TestSignUpValidation(t *testing.T) {
	cases := map[string]struct {
		in    port.SignUpInput
		field string
	}{
		"unknown role":     {port.SignUpInput{Email: "a@b.co", Password: "secret1", FullName: "A", UserType: "admin"}, "user_type"},
		"missing email":    {port.SignUpInput{Password: "secret1", FullName: "A", UserType: "creator"}, "email"},
		"short password":   {port.SignUpInput{Email: "a@b.co", Password: "12345", FullName: "A", UserType: "creator"}, "password"},
		"missing name":     {port.SignUpInput{Email: "a@b.co", Password: "secret1", UserType: "creator"}, "full_name"},
		"brand no company": {port.SignUpInput{Email: "a@b.co", Password: "secret1", FullName: "A", UserType: "brand"}, "company_name"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			uc := NewAuthUseCase(mocks.NewMockIdentityGateway(t), mocks.NewMockCampaignStore(t), discardLogger())
			_, err := uc.SignUp(context.Background(), tc.in)
			var validation *domain.ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tc.field, validation.Field)
		})
	}
}

func TestSignInWithoutProfile(t *testing.T) {
	userID := uuid.New()
	identity := mocks.NewMockIdentityGateway(t)
	store := mocks.NewMockCampaignStore(t)
	identity.EXPECT().SignIn(mock.Anything, "a@b.co", "secret1").Return(&port.Identity{UserID: userID, AccessToken: "tok"}, nil)
	store.EXPECT().GetProfile(mock.Anything, userID).Return(nil, nil)

	_, err := NewAuthUseCase(identity, store, discardLogger()).SignIn(context.Background(), "a@b.co", "secret1")
	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
}

func TestSignInRejectedCredentials(t *testing.T) {
	identity := mocks.NewMockIdentityGateway(t)
	identity.EXPECT().SignIn(mock.Anything, "a@b.co", "wrong").Return(nil, &domain.AuthError{Message: "Invalid login credentials"})

	_, err := NewAuthUseCase(identity, mocks.NewMockCampaignStore(t), discardLogger()).SignIn(context.Background(), "a@b.co", "wrong")
	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
}

func TestCurrentSession(t *testing.T) {
	creator := creatorSession()
	identity := mocks.NewMockIdentityGateway(t)
	store := mocks.NewMockCampaignStore(t)
	identity.EXPECT().GetUser(mock.Anything, "tok").Return(&port.Identity{UserID: creator.UserID, Email: creator.Email}, nil)
	store.EXPECT().GetProfile(mock.Anything, creator.UserID).Return(&creator.Profile, nil)

	sess, err := NewAuthUseCase(identity, store, discardLogger()).CurrentSession(context.Background(), "tok")
	require.NoError(t, err)
	assert.True(t, sess.IsCreator())
	assert.Equal(t, "tok", sess.AccessToken)
	require.Error(t, sess.RequireRole(domain.RoleBrand))
}

func TestSignOutWithoutToken(t *testing.T) {
	err := NewAuthUseCase(mocks.NewMockIdentityGateway(t), mocks.NewMockCampaignStore(t), discardLogger()).SignOut(context.Background(), "")
	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
}
