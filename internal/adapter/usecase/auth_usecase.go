package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"influence-nexus/internal/core/domain"
	"influence-nexus/internal/core/port"
)

const minPasswordLength = 6

// AuthUseCase signs users up and in against the identity gateway and pairs
// every gateway user with a stored profile.
type AuthUseCase struct {
	identity port.IdentityGateway
	store    port.CampaignStore
	logger   *slog.Logger
}

// NewAuthUseCase creates an AuthUseCase. identity owns credentials and
// store holds the profile created at sign-up.
func NewAuthUseCase(identity port.IdentityGateway, store port.CampaignStore, logger *slog.Logger) *AuthUseCase {
	return &AuthUseCase{identity: identity, store: store, logger: logger}
}

// SignUp validates the form, creates the gateway user and then the profile.
// The company name is kept for brands only.
func (u *AuthUseCase) SignUp(ctx context.Context, in port.SignUpInput) (*port.AuthResult, error) {
	role, err := domain.ParseRole(in.UserType)
	if err != nil {
		return nil, err
	}
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if len(in.Password) < minPasswordLength {
		return nil, domain.NewValidationError("password", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		return nil, domain.NewValidationError("full_name", "full name is required")
	}
	var companyName *string
	if role == domain.RoleBrand {
		name := strings.TrimSpace(in.CompanyName)
		if name == "" {
			return nil, domain.NewValidationError("company_name", "company name is required for brands")
		}
		companyName = &name
	}

	metadata := map[string]any{
		"full_name": fullName,
		"user_type": string(role),
	}
	if companyName != nil {
		metadata["company_name"] = *companyName
	}
	id, err := u.identity.SignUp(ctx, email, in.Password, metadata)
	if err != nil {
		return nil, err
	}

	profile, err := u.store.CreateProfile(ctx, domain.Profile{
		ID:          id.UserID,
		Email:       email,
		FullName:    fullName,
		CompanyName: companyName,
		Role:        role,
	})
	if err != nil {
		// The gateway account exists but cannot sign in until its profile row
		// is inserted by hand.
		u.logger.Error("sign-up left account without profile",
			slog.String("user_id", id.UserID.String()),
			slog.String("email", email),
			slog.String("role", role.String()),
			slog.Any("error", err))
		return nil, fmt.Errorf("create profile: %w", err)
	}
	u.logger.Info("user signed up", slog.String("user_id", id.UserID.String()), slog.String("role", role.String()))

	return u.result(id, *profile)
}

// SignIn exchanges credentials for a session bound to the stored profile.
func (u *AuthUseCase) SignIn(ctx context.Context, email, password string) (*port.AuthResult, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, domain.NewValidationError("password", "password is required")
	}
	id, err := u.identity.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	profile, err := u.profile(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.result(id, *profile)
}

func (u *AuthUseCase) SignOut(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return &domain.AuthError{Message: "session is missing"}
	}
	return u.identity.SignOut(ctx, accessToken)
}

// CurrentSession resolves a token into a Session. The role is validated here
// and nowhere else.
func (u *AuthUseCase) CurrentSession(ctx context.Context, accessToken string) (domain.Session, error) {
	id, err := u.identity.GetUser(ctx, accessToken)
	if err != nil {
		return domain.Session{}, err
	}
	profile, err := u.profile(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}
	return domain.NewSession(id.UserID, id.Email, accessToken, *profile)
}

func (u *AuthUseCase) profile(ctx context.Context, id *port.Identity) (*domain.Profile, error) {
	profile, err := u.store.GetProfile(ctx, id.UserID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return nil, &domain.AuthError{Message: "no profile exists for this account"}
	}
	return profile, nil
}

func (u *AuthUseCase) result(id *port.Identity, profile domain.Profile) (*port.AuthResult, error) {
	sess, err := domain.NewSession(id.UserID, id.Email, id.AccessToken, profile)
	if err != nil {
		return nil, err
	}
	return &port.AuthResult{
		Session:      sess,
		RefreshToken: id.RefreshToken,
		ExpiresAt:    id.ExpiresAt,
		RedirectTo:   sess.Role().DashboardPath(),
	}, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", domain.NewValidationError("email", "email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", domain.NewValidationError("email", "email is invalid")
	}
	return email, nil
}
