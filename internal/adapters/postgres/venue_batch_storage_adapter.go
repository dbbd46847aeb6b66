package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/operatorpuar/gaming-venues/internal/core/domain"
)

// BatchSave сохраняет пачку записей инжеста. Каждая запись апсертится
// по паре (source, source_venue_id); записи без обязательных полей
// пропускаются, пачка из-за них не падает.
func (a *PostgresVenueAdapter) BatchSave(ctx context.Context, records []domain.VenueRecord) (*domain.BatchSaveStats, error) {
	stats := &domain.BatchSaveStats{}
	if len(records) == 0 {
		return stats, nil
	}

	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return stats, fmt.Errorf("PostgresVenueAdapter: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now().UTC()

	for _, rec := range records {
		if rec.Source == "" || rec.SourceVenueID == "" || rec.Name == "" {
			stats.Skipped++
			continue
		}

		slug := venueSlug(rec.Name, rec.City, rec.Latitude, rec.Longitude)

		var venueID int64
		var inserted bool
		// xmax = 0 только у свежевставленной строки, так отличаем
		// создание от обновления без второго запроса
		err := tx.QueryRow(ctx, `
			INSERT INTO venues (
				source, source_venue_id, slug, name, description, venue_type,
				address, city, state, zip, phone, website,
				latitude, longitude,
				is_active, featured, verified,
				rating, reviews_count,
				meta_title, meta_description,
				created_at, updated_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
					$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $22)
			ON CONFLICT (source, source_venue_id) DO UPDATE SET
				name = EXCLUDED.name,
				description = EXCLUDED.description,
				venue_type = EXCLUDED.venue_type,
				address = EXCLUDED.address,
				city = EXCLUDED.city,
				state = EXCLUDED.state,
				zip = EXCLUDED.zip,
				phone = EXCLUDED.phone,
				website = EXCLUDED.website,
				latitude = EXCLUDED.latitude,
				longitude = EXCLUDED.longitude,
				is_active = EXCLUDED.is_active,
				featured = EXCLUDED.featured,
				verified = EXCLUDED.verified,
				rating = EXCLUDED.rating,
				reviews_count = EXCLUDED.reviews_count,
				meta_title = EXCLUDED.meta_title,
				meta_description = EXCLUDED.meta_description,
				updated_at = EXCLUDED.updated_at
			RETURNING id, (xmax = 0) AS inserted`,
			rec.Source, rec.SourceVenueID, slug, rec.Name, rec.Description, rec.VenueType,
			rec.Address, rec.City, rec.State, rec.Zip, rec.Phone, rec.Website,
			rec.Latitude, rec.Longitude,
			rec.IsActive, rec.Featured, rec.Verified,
			rec.Rating, rec.ReviewsCount,
			rec.MetaTitle, rec.MetaDescription,
			now,
		).Scan(&venueID, &inserted)
		if err != nil {
			return stats, fmt.Errorf("PostgresVenueAdapter: failed to upsert venue %s|%s: %w", rec.Source, rec.SourceVenueID, err)
		}

		if err := a.replaceMemberships(ctx, tx, venueID, rec); err != nil {
			return stats, err
		}

		if inserted {
			stats.Created++
		} else {
			stats.Updated++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return stats, fmt.Errorf("PostgresVenueAdapter: failed to commit batch: %w", err)
	}

	return stats, nil
}

// replaceMemberships полностью пересобирает членства площадки в
// справочниках по slug-ам из записи. Неизвестные slug-и молча
// отбрасываются подзапросом.
func (a *PostgresVenueAdapter) replaceMemberships(ctx context.Context, tx pgx.Tx, venueID int64, rec domain.VenueRecord) error {
	type membership struct {
		link    string
		linkCol string
		dict    string
		slugs   []string
	}

	memberships := []membership{
		{link: "venue_categories", linkCol: "category_id", dict: "categories", slugs: rec.CategorySlugs},
		{link: "venue_amenities", linkCol: "amenity_id", dict: "amenities", slugs: rec.AmenitySlugs},
		{link: "venue_regions", linkCol: "region_id", dict: "regions", slugs: rec.RegionSlugs},
	}

	for _, m := range memberships {
		if _, err := tx.Exec(ctx,
			fmt.Sprintf(`DELETE FROM %s WHERE venue_id = $1`, m.link),
			venueID,
		); err != nil {
			return fmt.Errorf("PostgresVenueAdapter: failed to clear %s for venue %d: %w", m.link, venueID, err)
		}

		if len(m.slugs) == 0 {
			continue
		}

		if _, err := tx.Exec(ctx,
			fmt.Sprintf(`INSERT INTO %s (venue_id, %s)
						 SELECT $1, id FROM %s WHERE slug = ANY($2)
						 ON CONFLICT DO NOTHING`, m.link, m.linkCol, m.dict),
			venueID, m.slugs,
		); err != nil {
			return fmt.Errorf("PostgresVenueAdapter: failed to insert %s for venue %d: %w", m.link, venueID, err)
		}
	}

	return nil
}
