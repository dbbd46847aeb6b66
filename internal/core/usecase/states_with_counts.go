package usecase

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/operatorpuar/gaming-venues/internal/contextkeys"
	"github.com/operatorpuar/gaming-venues/internal/core/domain"
	"github.com/operatorpuar/gaming-venues/internal/core/port"
)

type GetStatesWithCountsUseCase struct {
	catalog port.FacetCatalogPort
}

func NewGetStatesWithCountsUseCase(catalog port.FacetCatalogPort) *GetStatesWithCountsUseCase {
	return &GetStatesWithCountsUseCase{catalog: catalog}
}

// Execute сводит две независимые проекции (площадки по штатам и регионы
// по штатам) в одну строку на штат. Штат, встречающийся только в одной
// из проекций, попадает в ответ с нулем во второй колонке.
func (uc *GetStatesWithCountsUseCase) Execute(ctx context.Context) ([]domain.StateCount, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetStatesWithCounts",
	})

	ucLogger.Info("Use case started", nil)

	venueCounts, err := uc.catalog.GetVenueStateCounts(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error while counting venues by state", err, nil)
		return nil, err
	}

	regionCounts, err := uc.catalog.GetRegionStateCounts(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error while counting regions by state", err, nil)
		return nil, err
	}

	result := MergeStateCounts(venueCounts, regionCounts)

	ucLogger.Info("Use case finished successfully", port.Fields{"states": len(result)})
	return result, nil
}

// MergeStateCounts сливает обе проекции по нормализованному имени штата.
// Вынесено отдельно, чтобы логика слияния тестировалась без хранилища.
func MergeStateCounts(venueCounts, regionCounts map[string]int) []domain.StateCount {
	caser := cases.Title(language.AmericanEnglish)
	normalize := func(s string) string {
		return caser.String(strings.ToLower(strings.TrimSpace(s)))
	}

	merged := make(map[string]*domain.StateCount)

	for state, count := range venueCounts {
		key := normalize(state)
		if key == "" {
			continue
		}
		merged[key] = &domain.StateCount{State: key, VenueCount: count}
	}

	for state, count := range regionCounts {
		key := normalize(state)
		if key == "" {
			continue
		}
		if row, ok := merged[key]; ok {
			row.RegionCount = count
		} else {
			merged[key] = &domain.StateCount{State: key, RegionCount: count}
		}
	}

	result := make([]domain.StateCount, 0, len(merged))
	for _, row := range merged {
		result = append(result, *row)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].State < result[j].State })

	return result
}
