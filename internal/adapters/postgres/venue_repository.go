package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/operatorpuar/gaming-venues/internal/core/domain"
)

const venueColumns = `v.id, v.slug, v.name, v.description, v.venue_type,
		v.address, v.city, v.state, v.zip, v.phone, v.website,
		v.latitude, v.longitude,
		v.is_active, v.featured, v.verified,
		v.rating, v.reviews_count,
		v.meta_title, v.meta_description,
		v.created_at, v.updated_at`

// Единый порядок сортировки каталога: сначала featured,
// потом рейтинг, id как детерминированный tie-break.
const venueOrderBy = `ORDER BY v.featured DESC, v.rating DESC, v.id ASC`

type PostgresVenueAdapter struct {
	pool *pgxpool.Pool
}

func NewPostgresVenueAdapter(pool *pgxpool.Pool) *PostgresVenueAdapter {
	return &PostgresVenueAdapter{pool: pool}
}

// FindVenues возвращает страницу площадок и общее количество в одной
// транзакции, чтобы счетчик и выборка видели один снимок данных.
// Предикаты для COUNT и для страницы собираются одним билдером.
func (a *PostgresVenueAdapter) FindVenues(ctx context.Context, filters domain.VenueFilters, res domain.FacetResolution, query string, limit, offset int) (*domain.PaginatedResult, error) {
	whereClause, args := applyVenueFilters(filters, res, query)

	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("PostgresVenueAdapter: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM venues v %s`, whereClause)

	var totalCount int
	if err := tx.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, fmt.Errorf("PostgresVenueAdapter: failed to count venues: %w", err)
	}

	result := &domain.PaginatedResult{
		Venues:       []domain.Venue{},
		TotalCount:   totalCount,
		CurrentPage:  offset/limit + 1,
		ItemsPerPage: limit,
	}

	// Нет смысла гонять основной запрос, если совпадений ноль
	if totalCount == 0 {
		return result, tx.Commit(ctx)
	}

	dataQuery := fmt.Sprintf(`SELECT %s FROM venues v %s %s LIMIT $%d OFFSET $%d`,
		venueColumns, whereClause, venueOrderBy, len(args)+1, len(args)+2)
	dataArgs := append(args, limit, offset)

	rows, err := tx.Query(ctx, dataQuery, dataArgs...)
	if err != nil {
		return nil, fmt.Errorf("PostgresVenueAdapter: failed to query venues: %w", err)
	}

	venues := make([]domain.Venue, 0, limit)
	for rows.Next() {
		var v domain.Venue
		if err := rows.Scan(
			&v.ID, &v.Slug, &v.Name, &v.Description, &v.VenueType,
			&v.Address, &v.City, &v.State, &v.Zip, &v.Phone, &v.Website,
			&v.Latitude, &v.Longitude,
			&v.IsActive, &v.Featured, &v.Verified,
			&v.Rating, &v.ReviewsCount,
			&v.MetaTitle, &v.MetaDescription,
			&v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			rows.Close()
			return nil, fmt.Errorf("PostgresVenueAdapter: failed to scan venue: %w", err)
		}
		venues = append(venues, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("PostgresVenueAdapter: error during venue rows iteration: %w", err)
	}
	rows.Close()

	// Категории для всей страницы одним запросом
	if err := a.attachCategories(ctx, tx, venues); err != nil {
		return nil, err
	}

	result.Venues = venues
	return result, tx.Commit(ctx)
}

// CountVenues использует тот же билдер предикатов, что и FindVenues
func (a *PostgresVenueAdapter) CountVenues(ctx context.Context, filters domain.VenueFilters, res domain.FacetResolution, query string) (int, error) {
	whereClause, args := applyVenueFilters(filters, res, query)

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM venues v %s`, whereClause)

	var totalCount int
	if err := a.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return 0, fmt.Errorf("PostgresVenueAdapter: failed to count venues: %w", err)
	}

	return totalCount, nil
}

// attachCategories подтягивает активные категории для всех площадок
// страницы одним запросом через ANY, без цикла по каждой площадке.
func (a *PostgresVenueAdapter) attachCategories(ctx context.Context, q querier, venues []domain.Venue) error {
	if len(venues) == 0 {
		return nil
	}

	ids := make([]int64, len(venues))
	indexByID := make(map[int64]int, len(venues))
	for i, v := range venues {
		ids[i] = v.ID
		indexByID[v.ID] = i
	}

	rows, err := q.Query(ctx, `
		SELECT vc.venue_id, c.id, c.name, c.slug, c.is_active
		FROM venue_categories vc
		JOIN categories c ON c.id = vc.category_id
		WHERE vc.venue_id = ANY($1) AND c.is_active = true
		ORDER BY c.name ASC`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("PostgresVenueAdapter: failed to query venue categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var venueID int64
		var c domain.Category
		if err := rows.Scan(&venueID, &c.ID, &c.Name, &c.Slug, &c.IsActive); err != nil {
			return fmt.Errorf("PostgresVenueAdapter: failed to scan venue category: %w", err)
		}
		if i, ok := indexByID[venueID]; ok {
			venues[i].Categories = append(venues[i].Categories, c)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("PostgresVenueAdapter: error during category rows iteration: %w", err)
	}

	return nil
}
