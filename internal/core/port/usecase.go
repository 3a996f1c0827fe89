package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"influence-nexus/internal/core/dashboard"
	"influence-nexus/internal/core/domain"
)

// AuthUseCase signs users up and in and resolves access tokens into sessions.
type AuthUseCase interface {
	SignUp(ctx context.Context, in SignUpInput) (*AuthResult, error)
	SignIn(ctx context.Context, email, password string) (*AuthResult, error)
	SignOut(ctx context.Context, accessToken string) error
	// CurrentSession builds the Session for a token. The role variant is
	// checked here once; handlers rely on it afterwards.
	CurrentSession(ctx context.Context, accessToken string) (domain.Session, error)
}

// BrandUseCase backs the brand dashboard.
type BrandUseCase interface {
	LoadBrandDashboard(ctx context.Context, sess domain.Session) (*BrandDashboard, error)
	CreateCampaign(ctx context.Context, sess domain.Session, draft domain.CampaignDraft) (*CampaignCreated, error)
	Decide(ctx context.Context, sess domain.Session, applicationID uuid.UUID, outcome domain.ApplicationStatus) (*ApplicationDecided, error)
}

// CreatorUseCase backs the creator dashboard.
type CreatorUseCase interface {
	LoadCreatorDashboard(ctx context.Context, sess domain.Session) (*CreatorDashboard, error)
	Submit(ctx context.Context, sess domain.Session, in SubmitInput) (*ApplicationSubmitted, error)
}

// EventUseCase lists events and records registrations.
type EventUseCase interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	Register(ctx context.Context, sess *domain.Session, eventID uuid.UUID) (*RegistrationResult, error)
}

// ScriptUseCase turns a brief into a short creator video script.
type ScriptUseCase interface {
	Generate(ctx context.Context, req ScriptRequest) (string, error)
}

// SignUpInput carries the sign-up form.
type SignUpInput struct {
	Email       string
	Password    string
	FullName    string
	CompanyName string
	UserType    string
}

// AuthResult is returned after sign-up or sign-in. RedirectTo is the
// dashboard route for the session's role.
type AuthResult struct {
	Session      domain.Session
	RefreshToken string
	ExpiresAt    time.Time
	RedirectTo   string
}

// BrandDashboard is the brand view with its aggregates.
type BrandDashboard struct {
	Snapshot dashboard.BrandSnapshot
	Stats    dashboard.BrandStats
}

// CreatorDashboard is the creator view with its aggregates.
type CreatorDashboard struct {
	Snapshot dashboard.CreatorSnapshot
	Stats    dashboard.CreatorStats
}

// CampaignCreated is the result of CreateCampaign: the new campaign and the
// dashboard it was merged into.
type CampaignCreated struct {
	Campaign  domain.Campaign
	Dashboard BrandDashboard
}

// ApplicationDecided is the result of Decide.
type ApplicationDecided struct {
	Application domain.Application
	Dashboard   BrandDashboard
}

// SubmitInput carries the apply form.
type SubmitInput struct {
	CampaignID   uuid.UUID
	Pitch        string
	ProposedRate *float64
}

// ApplicationSubmitted is the result of Submit. Created is false when the
// creator had already applied and the existing application was returned.
type ApplicationSubmitted struct {
	Application domain.Application
	Created     bool
	Dashboard   CreatorDashboard
}

// RegistrationResult is the result of Register. Created is false when the
// user was already registered for the event.
type RegistrationResult struct {
	Registration domain.EventRegistration
	Created      bool
}

// ScriptRequest carries the script widget form. Empty optional fields fall
// back to medium length, friendly tone and a general audience.
type ScriptRequest struct {
	Topic    string
	Length   string
	Tone     string
	Audience string
}
