package usecases_port

import (
	"context"

	"github.com/operatorpuar/gaming-venues/internal/core/domain"
)

// CountVenuesUseCase покрывает и countVenues, и countSearch:
// пустой query означает подсчет без текстового ограничения.
type CountVenuesUseCase interface {
	Execute(ctx context.Context, query string, filters domain.VenueFilters) (int, error)
}
