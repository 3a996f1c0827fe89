package usecase

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"influence-nexus/internal/core/domain"
	"influence-nexus/internal/core/port"
)

var (
	_ port.AuthUseCase    = (*AuthUseCase)(nil)
	_ port.BrandUseCase   = (*BrandUseCase)(nil)
	_ port.CreatorUseCase = (*CreatorUseCase)(nil)
	_ port.EventUseCase   = (*EventUseCase)(nil)
	_ port.ScriptUseCase  = (*ScriptUseCase)(nil)
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func brandSession() domain.Session {
	company := "Acme"
	id := uuid.New()
	return domain.Session{
		UserID: id,
		Email:  "brand@acme.in",
		Profile: domain.Profile{
			ID:          id,
			Email:       "brand@acme.in",
			FullName:    "Priya",
			CompanyName: &company,
			Role:        domain.RoleBrand,
		},
	}
}

func creatorSession() domain.Session {
	id := uuid.New()
	return domain.Session{
		UserID: id,
		Email:  "rohan@creator.in",
		Profile: domain.Profile{
			ID:       id,
			Email:    "rohan@creator.in",
			FullName: "Rohan",
			Role:     domain.RoleCreator,
		},
	}
}

func activeCampaign(brandID uuid.UUID, budget float64) domain.Campaign {
	return domain.Campaign{
		ID:        uuid.New(),
		BrandID:   brandID,
		Title:     "Diwali launch",
		Budget:    budget,
		Category:  "lifestyle",
		Deadline:  time.Date(2026, 11, 30, 0, 0, 0, 0, time.UTC),
		Status:    domain.CampaignActive,
		BrandName: "Acme",
	}
}
