package postgres

import (
	"context"
	"fmt"
	"sort"

	"github.com/operatorpuar/gaming-venues/internal/core/domain"
)

// ResolveFacets превращает фасетные фильтры в множество id площадок.
// Пустой набор значений фасета означает "без ограничения", а не
// "ничего": такой фасет просто не участвует в пересечении.
// Результат различает "ограничений нет" и "пересечение пусто".
func (a *PostgresVenueAdapter) ResolveFacets(ctx context.Context, filters domain.VenueFilters) (domain.FacetResolution, error) {
	if !filters.HasFacets() {
		return domain.Unconstrained(), nil
	}

	var sets [][]int64

	if len(filters.CategoryIDs) > 0 {
		ids, err := a.venueIDsByMembership(ctx, "venue_categories", "category_id", filters.CategoryIDs)
		if err != nil {
			return domain.FacetResolution{}, err
		}
		sets = append(sets, ids)
	}
	if len(filters.AmenityIDs) > 0 {
		ids, err := a.venueIDsByMembership(ctx, "venue_amenities", "amenity_id", filters.AmenityIDs)
		if err != nil {
			return domain.FacetResolution{}, err
		}
		sets = append(sets, ids)
	}
	if len(filters.RegionIDs) > 0 {
		ids, err := a.venueIDsByMembership(ctx, "venue_regions", "region_id", filters.RegionIDs)
		if err != nil {
			return domain.FacetResolution{}, err
		}
		sets = append(sets, ids)
	}

	result := intersectIDSets(sets)

	// Детерминированный порядок, чтобы ANY($1) в запросах был стабилен
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })

	return domain.ConstrainedTo(result), nil
}

// venueIDsByMembership возвращает id площадок, связанных хотя бы с одним
// из значений фасета (внутри фасета семантика OR).
func (a *PostgresVenueAdapter) venueIDsByMembership(ctx context.Context, table, column string, values []int64) ([]int64, error) {
	query := fmt.Sprintf(`SELECT DISTINCT venue_id FROM %s WHERE %s = ANY($1)`, table, column)

	rows, err := a.pool.Query(ctx, query, values)
	if err != nil {
		return nil, fmt.Errorf("PostgresVenueAdapter: failed to query %s membership: %w", table, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("PostgresVenueAdapter: failed to scan %s membership: %w", table, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("PostgresVenueAdapter: error during %s rows iteration: %w", table, err)
	}

	return ids, nil
}

// intersectIDSets пересекает множества id. Между фасетами семантика AND.
// Пустое входное множество сразу дает пустое пересечение.
func intersectIDSets(sets [][]int64) []int64 {
	if len(sets) == 0 {
		return nil
	}

	counts := make(map[int64]int, len(sets[0]))
	for _, id := range sets[0] {
		counts[id] = 1
	}

	for _, set := range sets[1:] {
		if len(set) == 0 {
			return nil
		}
		seen := make(map[int64]struct{}, len(set))
		for _, id := range set {
			// DISTINCT в запросе дубликаты уже убрал, но на всякий
			// случай считаем каждое множество один раз
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			if _, ok := counts[id]; ok {
				counts[id]++
			}
		}
	}

	result := make([]int64, 0, len(counts))
	for id, n := range counts {
		if n == len(sets) {
			result = append(result, id)
		}
	}
	return result
}
