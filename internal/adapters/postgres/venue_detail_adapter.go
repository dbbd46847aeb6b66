package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/operatorpuar/gaming-venues/internal/core/domain"
)

// GetVenueBySlug собирает детальную карточку площадки: сама площадка
// плюс ее категории, удобства и регионы. Неактивная площадка для
// внешнего мира не существует.
func (a *PostgresVenueAdapter) GetVenueBySlug(ctx context.Context, slug string) (*domain.VenueDetail, error) {
	query := fmt.Sprintf(`SELECT %s FROM venues v WHERE v.slug = $1 AND v.is_active = true`, venueColumns)

	var v domain.Venue
	err := a.pool.QueryRow(ctx, query, slug).Scan(
		&v.ID, &v.Slug, &v.Name, &v.Description, &v.VenueType,
		&v.Address, &v.City, &v.State, &v.Zip, &v.Phone, &v.Website,
		&v.Latitude, &v.Longitude,
		&v.IsActive, &v.Featured, &v.Verified,
		&v.Rating, &v.ReviewsCount,
		&v.MetaTitle, &v.MetaDescription,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("PostgresVenueAdapter: failed to query venue by slug %s: %w", slug, err)
	}

	detail := &domain.VenueDetail{Venue: v}

	categories, err := a.venueCategories(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	detail.Categories = categories
	detail.Venue.Categories = categories

	amenities, err := a.venueAmenities(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	detail.Amenities = amenities

	regions, err := a.venueRegions(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	detail.Regions = regions

	return detail, nil
}

func (a *PostgresVenueAdapter) venueCategories(ctx context.Context, venueID int64) ([]domain.Category, error) {
	rows, err := a.pool.Query(ctx, `
		SELECT c.id, c.name, c.slug, c.is_active
		FROM venue_categories vc
		JOIN categories c ON c.id = vc.category_id
		WHERE vc.venue_id = $1 AND c.is_active = true
		ORDER BY c.name ASC`,
		venueID,
	)
	if err != nil {
		return nil, fmt.Errorf("PostgresVenueAdapter: failed to query categories for venue %d: %w", venueID, err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.IsActive); err != nil {
			return nil, fmt.Errorf("PostgresVenueAdapter: failed to scan category for venue %d: %w", venueID, err)
		}
		categories = append(categories, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("PostgresVenueAdapter: error during category rows iteration for venue %d: %w", venueID, err)
	}

	return categories, nil
}

func (a *PostgresVenueAdapter) venueAmenities(ctx context.Context, venueID int64) ([]domain.Amenity, error) {
	rows, err := a.pool.Query(ctx, `
		SELECT am.id, am.name, am.slug, am.label, am.is_active
		FROM venue_amenities va
		JOIN amenities am ON am.id = va.amenity_id
		WHERE va.venue_id = $1 AND am.is_active = true
		ORDER BY am.label ASC, am.name ASC`,
		venueID,
	)
	if err != nil {
		return nil, fmt.Errorf("PostgresVenueAdapter: failed to query amenities for venue %d: %w", venueID, err)
	}
	defer rows.Close()

	amenities := []domain.Amenity{}
	for rows.Next() {
		var am domain.Amenity
		if err := rows.Scan(&am.ID, &am.Name, &am.Slug, &am.Label, &am.IsActive); err != nil {
			return nil, fmt.Errorf("PostgresVenueAdapter: failed to scan amenity for venue %d: %w", venueID, err)
		}
		amenities = append(amenities, am)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("PostgresVenueAdapter: error during amenity rows iteration for venue %d: %w", venueID, err)
	}

	return amenities, nil
}

func (a *PostgresVenueAdapter) venueRegions(ctx context.Context, venueID int64) ([]domain.Region, error) {
	rows, err := a.pool.Query(ctx, `
		SELECT r.id, r.name, r.slug, r.state, r.country
		FROM venue_regions vr
		JOIN regions r ON r.id = vr.region_id
		WHERE vr.venue_id = $1
		ORDER BY r.name ASC`,
		venueID,
	)
	if err != nil {
		return nil, fmt.Errorf("PostgresVenueAdapter: failed to query regions for venue %d: %w", venueID, err)
	}
	defer rows.Close()

	regions := []domain.Region{}
	for rows.Next() {
		var r domain.Region
		if err := rows.Scan(&r.ID, &r.Name, &r.Slug, &r.State, &r.Country); err != nil {
			return nil, fmt.Errorf("PostgresVenueAdapter: failed to scan region for venue %d: %w", venueID, err)
		}
		regions = append(regions, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("PostgresVenueAdapter: error during region rows iteration for venue %d: %w", venueID, err)
	}

	return regions, nil
}
