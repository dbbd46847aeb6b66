package usecases_port

import (
	"context"

	"github.com/operatorpuar/gaming-venues/internal/core/domain"
)

type SearchVenuesUseCase interface {
	Execute(ctx context.Context, query string, filters domain.VenueFilters, limit, offset int) (*domain.PaginatedResult, error)
}
