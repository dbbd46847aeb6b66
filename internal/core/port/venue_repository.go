package port

import (
	"context"

	"github.com/operatorpuar/gaming-venues/internal/core/domain"
)

// VenueRepositoryPort - порт движка выборки площадок.
//
// ResolveFacets и Find/Count разделены намеренно: use case сначала
// получает допустимое множество id, и если оно заведомо пусто -
// не ходит в хранилище за данными вовсе.
type VenueRepositoryPort interface {
	// ResolveFacets сводит многозначные фасеты фильтра к множеству id площадок.
	// Если ни один фасет не задан, возвращает неограниченный результат.
	ResolveFacets(ctx context.Context, filters domain.VenueFilters) (domain.FacetResolution, error)

	// FindVenues возвращает страницу площадок с общим количеством совпадений.
	// query - необязательная текстовая подстрока; пустая строка - режим списка.
	FindVenues(ctx context.Context, filters domain.VenueFilters, res domain.FacetResolution, query string, limit, offset int) (*domain.PaginatedResult, error)

	// CountVenues считает совпадения по тем же предикатам, что и FindVenues.
	CountVenues(ctx context.Context, filters domain.VenueFilters, res domain.FacetResolution, query string) (int, error)

	// GetVenueBySlug собирает полную карточку. Отсутствие - domain.ErrNotFound.
	GetVenueBySlug(ctx context.Context, slug string) (*domain.VenueDetail, error)
}
