package usecases_port

import (
	"context"

	"github.com/operatorpuar/gaming-venues/internal/core/domain"
)

type ListFacetsUseCase interface {
	Execute(ctx context.Context, names []string, withCounts bool) (*domain.FacetCatalog, error)
}
