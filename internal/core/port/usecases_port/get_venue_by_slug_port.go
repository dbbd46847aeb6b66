package usecases_port

import (
	"context"

	"github.com/operatorpuar/gaming-venues/internal/core/domain"
)

type GetVenueBySlugUseCase interface {
	Execute(ctx context.Context, slug string) (*domain.VenueDetail, error)
}
