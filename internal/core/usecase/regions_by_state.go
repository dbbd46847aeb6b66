package usecase

import (
	"context"
	"strings"

	"github.com/operatorpuar/gaming-venues/internal/contextkeys"
	"github.com/operatorpuar/gaming-venues/internal/core/domain"
	"github.com/operatorpuar/gaming-venues/internal/core/port"
)

type GetRegionsByStateUseCase struct {
	catalog port.FacetCatalogPort
}

func NewGetRegionsByStateUseCase(catalog port.FacetCatalogPort) *GetRegionsByStateUseCase {
	return &GetRegionsByStateUseCase{catalog: catalog}
}

func (uc *GetRegionsByStateUseCase) Execute(ctx context.Context, state string) ([]domain.Region, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetRegionsByState",
		"state":    state,
	})

	ucLogger.Info("Use case started", nil)

	state = strings.TrimSpace(state)
	if state == "" {
		return []domain.Region{}, nil
	}

	regions, err := uc.catalog.GetRegionsByState(ctx, state)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"regions": len(regions)})
	return regions, nil
}
