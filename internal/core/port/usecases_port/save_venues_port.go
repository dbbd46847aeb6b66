package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/operatorpuar/gaming-venues/internal/core/domain"
)

type SaveVenuesUseCase interface {
	Execute(ctx context.Context, batchID uuid.UUID, records []domain.VenueRecord) (*domain.BatchSaveStats, error)
}
