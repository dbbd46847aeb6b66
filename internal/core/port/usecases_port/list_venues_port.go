package usecases_port

import (
	"context"

	"github.com/operatorpuar/gaming-venues/internal/core/domain"
)

type ListVenuesUseCase interface {
	Execute(ctx context.Context, filters domain.VenueFilters, limit, offset int) (*domain.PaginatedResult, error)
}
