package usecase

import (
	"context"

	"github.com/operatorpuar/gaming-venues/internal/contextkeys"
	"github.com/operatorpuar/gaming-venues/internal/core/domain"
	"github.com/operatorpuar/gaming-venues/internal/core/port"
)

type GetFacetBySlugUseCase struct {
	catalog port.FacetCatalogPort
}

func NewGetFacetBySlugUseCase(catalog port.FacetCatalogPort) *GetFacetBySlugUseCase {
	return &GetFacetBySlugUseCase{catalog: catalog}
}

func (uc *GetFacetBySlugUseCase) Execute(ctx context.Context, kind domain.FacetKind, slug string) (interface{}, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetFacetBySlug",
		"kind":     string(kind),
		"slug":     slug,
	})

	ucLogger.Info("Use case started", nil)

	var (
		entity interface{}
		err    error
	)
	switch kind {
	case domain.FacetCategory:
		entity, err = uc.catalog.GetCategoryBySlug(ctx, slug)
	case domain.FacetAmenity:
		entity, err = uc.catalog.GetAmenityBySlug(ctx, slug)
	case domain.FacetRegion:
		entity, err = uc.catalog.GetRegionBySlug(ctx, slug)
	default:
		return nil, domain.ErrUnknownFacetKind
	}

	if err != nil {
		if err == domain.ErrNotFound {
			ucLogger.Info("Facet not found", nil)
		} else {
			ucLogger.Error("Storage returned an error", err, nil)
		}
		return nil, err
	}

	return entity, nil
}
