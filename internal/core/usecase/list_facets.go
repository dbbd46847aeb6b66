package usecase

import (
	"context"
	"strings"

	"github.com/operatorpuar/gaming-venues/internal/contextkeys"
	"github.com/operatorpuar/gaming-venues/internal/core/domain"
	"github.com/operatorpuar/gaming-venues/internal/core/port"
)

type ListFacetsUseCase struct {
	catalog port.FacetCatalogPort
}

func NewListFacetsUseCase(catalog port.FacetCatalogPort) *ListFacetsUseCase {
	return &ListFacetsUseCase{catalog: catalog}
}

// Execute получает список имен справочников ("categories", "amenities",
// "regions") и возвращает их содержимое. Пустой список имен - все сразу.
func (uc *ListFacetsUseCase) Execute(ctx context.Context, names []string, withCounts bool) (*domain.FacetCatalog, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "ListFacets",
		"with_counts": withCounts,
	})

	ucLogger.Info("Use case started", nil)

	// map для удобства проверки, какие справочники запрошены
	namesMap := make(map[string]bool)
	for _, name := range names {
		namesMap[strings.TrimSpace(name)] = true
	}
	all := len(namesMap) == 0

	result := &domain.FacetCatalog{}

	if all || namesMap["categories"] {
		categories, err := uc.catalog.ListCategories(ctx, withCounts)
		if err != nil {
			ucLogger.Error("Storage returned an error while listing categories", err, nil)
			return nil, err
		}
		result.Categories = categories
	}

	if all || namesMap["amenities"] {
		amenities, err := uc.catalog.ListAmenities(ctx, withCounts)
		if err != nil {
			ucLogger.Error("Storage returned an error while listing amenities", err, nil)
			return nil, err
		}
		result.Amenities = amenities
	}

	if all || namesMap["regions"] {
		regions, err := uc.catalog.ListRegions(ctx, withCounts)
		if err != nil {
			ucLogger.Error("Storage returned an error while listing regions", err, nil)
			return nil, err
		}
		result.Regions = regions
	}

	return result, nil
}
