package usecase

import (
	"context"
	"strings"

	"github.com/operatorpuar/gaming-venues/internal/contextkeys"
	"github.com/operatorpuar/gaming-venues/internal/core/domain"
	"github.com/operatorpuar/gaming-venues/internal/core/port"
)

type CountVenuesUseCase struct {
	repo port.VenueRepositoryPort
}

func NewCountVenuesUseCase(repo port.VenueRepositoryPort) *CountVenuesUseCase {
	return &CountVenuesUseCase{repo: repo}
}

// Execute строит предикаты ровно так же, как ListVenues/SearchVenues,
// поэтому счетчик всегда согласован со списком.
func (uc *CountVenuesUseCase) Execute(ctx context.Context, query string, filters domain.VenueFilters) (int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CountVenues",
		"query":    query,
	})

	ucLogger.Info("Use case started", nil)

	res, err := uc.repo.ResolveFacets(ctx, filters)
	if err != nil {
		ucLogger.Error("Facet resolver returned an error", err, nil)
		return 0, err
	}
	if res.Empty() {
		return 0, nil
	}

	count, err := uc.repo.CountVenues(ctx, filters, res, strings.TrimSpace(query))
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return 0, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"count": count})
	return count, nil
}
