package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/operatorpuar/gaming-venues/internal/core/domain"
)

// PostgresFacetCatalogAdapter отдает справочники фасетов: категории,
// удобства и регионы, при необходимости вместе со счетчиками
// активных площадок.
type PostgresFacetCatalogAdapter struct {
	pool *pgxpool.Pool
}

func NewPostgresFacetCatalogAdapter(pool *pgxpool.Pool) *PostgresFacetCatalogAdapter {
	return &PostgresFacetCatalogAdapter{pool: pool}
}

func (a *PostgresFacetCatalogAdapter) ListCategories(ctx context.Context, withCounts bool) ([]domain.Category, error) {
	query := `SELECT c.id, c.name, c.slug, c.is_active, 0
			  FROM categories c
			  WHERE c.is_active = true
			  ORDER BY c.name ASC`
	if withCounts {
		// COUNT(DISTINCT v.id): связь многие-ко-многим, иначе площадка
		// с несколькими категориями посчитается несколько раз
		query = `SELECT c.id, c.name, c.slug, c.is_active, COUNT(DISTINCT v.id)
				 FROM categories c
				 LEFT JOIN venue_categories vc ON vc.category_id = c.id
				 LEFT JOIN venues v ON v.id = vc.venue_id AND v.is_active = true
				 WHERE c.is_active = true
				 GROUP BY c.id, c.name, c.slug, c.is_active
				 ORDER BY c.name ASC`
	}

	rows, err := a.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("PostgresFacetCatalogAdapter: failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.IsActive, &c.VenueCount); err != nil {
			return nil, fmt.Errorf("PostgresFacetCatalogAdapter: failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("PostgresFacetCatalogAdapter: error during category rows iteration: %w", err)
	}

	return categories, nil
}

func (a *PostgresFacetCatalogAdapter) ListAmenities(ctx context.Context, withCounts bool) ([]domain.Amenity, error) {
	query := `SELECT am.id, am.name, am.slug, am.label, am.is_active, 0
			  FROM amenities am
			  WHERE am.is_active = true
			  ORDER BY am.label ASC, am.name ASC`
	if withCounts {
		query = `SELECT am.id, am.name, am.slug, am.label, am.is_active, COUNT(DISTINCT v.id)
				 FROM amenities am
				 LEFT JOIN venue_amenities va ON va.amenity_id = am.id
				 LEFT JOIN venues v ON v.id = va.venue_id AND v.is_active = true
				 WHERE am.is_active = true
				 GROUP BY am.id, am.name, am.slug, am.label, am.is_active
				 ORDER BY am.label ASC, am.name ASC`
	}

	rows, err := a.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("PostgresFacetCatalogAdapter: failed to query amenities: %w", err)
	}
	defer rows.Close()

	amenities := []domain.Amenity{}
	for rows.Next() {
		var am domain.Amenity
		if err := rows.Scan(&am.ID, &am.Name, &am.Slug, &am.Label, &am.IsActive, &am.VenueCount); err != nil {
			return nil, fmt.Errorf("PostgresFacetCatalogAdapter: failed to scan amenity: %w", err)
		}
		amenities = append(amenities, am)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("PostgresFacetCatalogAdapter: error during amenity rows iteration: %w", err)
	}

	return amenities, nil
}

func (a *PostgresFacetCatalogAdapter) ListRegions(ctx context.Context, withCounts bool) ([]domain.Region, error) {
	// У регионов флага is_active нет: регион либо есть, либо его нет
	query := `SELECT r.id, r.name, r.slug, r.state, r.country, 0
			  FROM regions r
			  ORDER BY r.name ASC`
	if withCounts {
		query = `SELECT r.id, r.name, r.slug, r.state, r.country, COUNT(DISTINCT v.id)
				 FROM regions r
				 LEFT JOIN venue_regions vr ON vr.region_id = r.id
				 LEFT JOIN venues v ON v.id = vr.venue_id AND v.is_active = true
				 GROUP BY r.id, r.name, r.slug, r.state, r.country
				 ORDER BY r.name ASC`
	}

	rows, err := a.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("PostgresFacetCatalogAdapter: failed to query regions: %w", err)
	}
	defer rows.Close()

	regions := []domain.Region{}
	for rows.Next() {
		var r domain.Region
		if err := rows.Scan(&r.ID, &r.Name, &r.Slug, &r.State, &r.Country, &r.VenueCount); err != nil {
			return nil, fmt.Errorf("PostgresFacetCatalogAdapter: failed to scan region: %w", err)
		}
		regions = append(regions, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("PostgresFacetCatalogAdapter: error during region rows iteration: %w", err)
	}

	return regions, nil
}

func (a *PostgresFacetCatalogAdapter) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	var c domain.Category
	err := a.pool.QueryRow(ctx, `
		SELECT c.id, c.name, c.slug, c.is_active, COUNT(DISTINCT v.id)
		FROM categories c
		LEFT JOIN venue_categories vc ON vc.category_id = c.id
		LEFT JOIN venues v ON v.id = vc.venue_id AND v.is_active = true
		WHERE c.slug = $1 AND c.is_active = true
		GROUP BY c.id, c.name, c.slug, c.is_active`,
		slug,
	).Scan(&c.ID, &c.Name, &c.Slug, &c.IsActive, &c.VenueCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("PostgresFacetCatalogAdapter: failed to query category by slug %s: %w", slug, err)
	}

	return &c, nil
}

func (a *PostgresFacetCatalogAdapter) GetAmenityBySlug(ctx context.Context, slug string) (*domain.Amenity, error) {
	var am domain.Amenity
	err := a.pool.QueryRow(ctx, `
		SELECT am.id, am.name, am.slug, am.label, am.is_active, COUNT(DISTINCT v.id)
		FROM amenities am
		LEFT JOIN venue_amenities va ON va.amenity_id = am.id
		LEFT JOIN venues v ON v.id = va.venue_id AND v.is_active = true
		WHERE am.slug = $1 AND am.is_active = true
		GROUP BY am.id, am.name, am.slug, am.label, am.is_active`,
		slug,
	).Scan(&am.ID, &am.Name, &am.Slug, &am.Label, &am.IsActive, &am.VenueCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("PostgresFacetCatalogAdapter: failed to query amenity by slug %s: %w", slug, err)
	}

	return &am, nil
}

func (a *PostgresFacetCatalogAdapter) GetRegionBySlug(ctx context.Context, slug string) (*domain.Region, error) {
	var r domain.Region
	err := a.pool.QueryRow(ctx, `
		SELECT r.id, r.name, r.slug, r.state, r.country, COUNT(DISTINCT v.id)
		FROM regions r
		LEFT JOIN venue_regions vr ON vr.region_id = r.id
		LEFT JOIN venues v ON v.id = vr.venue_id AND v.is_active = true
		WHERE r.slug = $1
		GROUP BY r.id, r.name, r.slug, r.state, r.country`,
		slug,
	).Scan(&r.ID, &r.Name, &r.Slug, &r.State, &r.Country, &r.VenueCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("PostgresFacetCatalogAdapter: failed to query region by slug %s: %w", slug, err)
	}

	return &r, nil
}

// GetVenueStateCounts группирует активные площадки по штату.
// Пустой штат в справочник не попадает.
func (a *PostgresFacetCatalogAdapter) GetVenueStateCounts(ctx context.Context) (map[string]int, error) {
	rows, err := a.pool.Query(ctx, `
		SELECT state, COUNT(*)
		FROM venues
		WHERE is_active = true AND state <> ''
		GROUP BY state`,
	)
	if err != nil {
		return nil, fmt.Errorf("PostgresFacetCatalogAdapter: failed to query venue state counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var state string
		var count int
		if err := rows.Scan(&state, &count); err != nil {
			return nil, fmt.Errorf("PostgresFacetCatalogAdapter: failed to scan venue state count: %w", err)
		}
		counts[state] = count
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("PostgresFacetCatalogAdapter: error during venue state rows iteration: %w", err)
	}

	return counts, nil
}

func (a *PostgresFacetCatalogAdapter) GetRegionStateCounts(ctx context.Context) (map[string]int, error) {
	rows, err := a.pool.Query(ctx, `
		SELECT state, COUNT(*)
		FROM regions
		WHERE state <> ''
		GROUP BY state`,
	)
	if err != nil {
		return nil, fmt.Errorf("PostgresFacetCatalogAdapter: failed to query region state counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var state string
		var count int
		if err := rows.Scan(&state, &count); err != nil {
			return nil, fmt.Errorf("PostgresFacetCatalogAdapter: failed to scan region state count: %w", err)
		}
		counts[state] = count
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("PostgresFacetCatalogAdapter: error during region state rows iteration: %w", err)
	}

	return counts, nil
}

// GetRegionsByState сравнивает штаты без учета регистра:
// в данных встречаются и "Nevada", и "nevada".
func (a *PostgresFacetCatalogAdapter) GetRegionsByState(ctx context.Context, state string) ([]domain.Region, error) {
	rows, err := a.pool.Query(ctx, `
		SELECT r.id, r.name, r.slug, r.state, r.country, COUNT(DISTINCT v.id)
		FROM regions r
		LEFT JOIN venue_regions vr ON vr.region_id = r.id
		LEFT JOIN venues v ON v.id = vr.venue_id AND v.is_active = true
		WHERE LOWER(r.state) = LOWER($1)
		GROUP BY r.id, r.name, r.slug, r.state, r.country
		ORDER BY r.name ASC`,
		state,
	)
	if err != nil {
		return nil, fmt.Errorf("PostgresFacetCatalogAdapter: failed to query regions for state %s: %w", state, err)
	}
	defer rows.Close()

	regions := []domain.Region{}
	for rows.Next() {
		var r domain.Region
		if err := rows.Scan(&r.ID, &r.Name, &r.Slug, &r.State, &r.Country, &r.VenueCount); err != nil {
			return nil, fmt.Errorf("PostgresFacetCatalogAdapter: failed to scan region for state %s: %w", state, err)
		}
		regions = append(regions, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("PostgresFacetCatalogAdapter: error during region rows iteration for state %s: %w", state, err)
	}

	return regions, nil
}
