package port

import (
	"context"

	"github.com/operatorpuar/gaming-venues/internal/core/domain"
)

// FacetCatalogPort - чтение справочников фасетов.
type FacetCatalogPort interface {
	// withCounts добавляет к каждой записи число различных активных площадок
	ListCategories(ctx context.Context, withCounts bool) ([]domain.Category, error)
	ListAmenities(ctx context.Context, withCounts bool) ([]domain.Amenity, error)
	ListRegions(ctx context.Context, withCounts bool) ([]domain.Region, error)

	GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	GetAmenityBySlug(ctx context.Context, slug string) (*domain.Amenity, error)
	GetRegionBySlug(ctx context.Context, slug string) (*domain.Region, error)

	// Две независимые проекции для сводки по штатам; сливает их use case
	GetVenueStateCounts(ctx context.Context) (map[string]int, error)
	GetRegionStateCounts(ctx context.Context) (map[string]int, error)

	GetRegionsByState(ctx context.Context, state string) ([]domain.Region, error)
}
