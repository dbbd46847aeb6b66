package usecase

import (
	"context"

	"github.com/operatorpuar/gaming-venues/internal/contextkeys"
	"github.com/operatorpuar/gaming-venues/internal/core/domain"
	"github.com/operatorpuar/gaming-venues/internal/core/port"
)

type GetVenueBySlugUseCase struct {
	repo port.VenueRepositoryPort
}

func NewGetVenueBySlugUseCase(repo port.VenueRepositoryPort) *GetVenueBySlugUseCase {
	return &GetVenueBySlugUseCase{repo: repo}
}

func (uc *GetVenueBySlugUseCase) Execute(ctx context.Context, slug string) (*domain.VenueDetail, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetVenueBySlug",
		"slug":     slug,
	})

	ucLogger.Info("Use case started", nil)

	detail, err := uc.repo.GetVenueBySlug(ctx, slug)
	if err != nil {
		// ErrNotFound - ожидаемый исход, не шумим на уровне Error
		if err == domain.ErrNotFound {
			ucLogger.Info("Venue not found", nil)
		} else {
			ucLogger.Error("Storage returned an error", err, nil)
		}
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return detail, nil
}
