package usecase

import (
	"context"

	"github.com/operatorpuar/gaming-venues/internal/contextkeys"
	"github.com/operatorpuar/gaming-venues/internal/core/domain"
	"github.com/operatorpuar/gaming-venues/internal/core/port"
)

type ListVenuesUseCase struct {
	repo port.VenueRepositoryPort
}

func NewListVenuesUseCase(repo port.VenueRepositoryPort) *ListVenuesUseCase {
	return &ListVenuesUseCase{repo: repo}
}

func (uc *ListVenuesUseCase) Execute(ctx context.Context, filters domain.VenueFilters, limit, offset int) (*domain.PaginatedResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListVenues",
		"limit":    limit,
		"offset":   offset,
	})

	if limit <= 0 || offset < 0 {
		ucLogger.Warn("Rejected invalid pagination", nil)
		return nil, domain.ErrInvalidPagination
	}

	ucLogger.Info("Use case started", nil)

	// Сначала сводим фасеты к множеству id. Если пересечение пусто,
	// за данными не ходим вовсе.
	res, err := uc.repo.ResolveFacets(ctx, filters)
	if err != nil {
		ucLogger.Error("Facet resolver returned an error", err, nil)
		return nil, err
	}
	if res.Empty() {
		ucLogger.Info("Facet intersection is empty, short-circuiting", nil)
		return emptyPage(limit, offset), nil
	}

	result, err := uc.repo.FindVenues(ctx, filters, res, "", limit, offset)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(result.Venues),
	})

	return result, nil
}

// emptyPage - валидная пустая страница с корректными параметрами пагинации.
func emptyPage(limit, offset int) *domain.PaginatedResult {
	return &domain.PaginatedResult{
		Venues:       []domain.Venue{},
		TotalCount:   0,
		CurrentPage:  offset/limit + 1,
		ItemsPerPage: limit,
	}
}
