package usecase

import (
	"context"
	"strings"

	"github.com/operatorpuar/gaming-venues/internal/contextkeys"
	"github.com/operatorpuar/gaming-venues/internal/core/domain"
	"github.com/operatorpuar/gaming-venues/internal/core/port"
)

type SearchVenuesUseCase struct {
	repo port.VenueRepositoryPort
}

func NewSearchVenuesUseCase(repo port.VenueRepositoryPort) *SearchVenuesUseCase {
	return &SearchVenuesUseCase{repo: repo}
}

// Execute - то же, что ListVenues, плюс текстовый поиск по названию,
// описанию, адресу, городу и типу площадки. Пустой query означает
// "без текстового ограничения", а не "ничего не найдено".
func (uc *SearchVenuesUseCase) Execute(ctx context.Context, query string, filters domain.VenueFilters, limit, offset int) (*domain.PaginatedResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchVenues",
		"query":    query,
		"limit":    limit,
		"offset":   offset,
	})

	if limit <= 0 || offset < 0 {
		ucLogger.Warn("Rejected invalid pagination", nil)
		return nil, domain.ErrInvalidPagination
	}

	ucLogger.Info("Use case started", nil)

	res, err := uc.repo.ResolveFacets(ctx, filters)
	if err != nil {
		ucLogger.Error("Facet resolver returned an error", err, nil)
		return nil, err
	}
	if res.Empty() {
		ucLogger.Info("Facet intersection is empty, short-circuiting", nil)
		return emptyPage(limit, offset), nil
	}

	result, err := uc.repo.FindVenues(ctx, filters, res, strings.TrimSpace(query), limit, offset)
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
