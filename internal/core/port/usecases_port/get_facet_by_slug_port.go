package usecases_port

import (
	"context"

	"github.com/operatorpuar/gaming-venues/internal/core/domain"
)

// Возвращает *domain.Category, *domain.Amenity или *domain.Region
// в зависимости от kind.
type GetFacetBySlugUseCase interface {
	Execute(ctx context.Context, kind domain.FacetKind, slug string) (interface{}, error)
}
