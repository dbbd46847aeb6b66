package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/operatorpuar/gaming-venues/internal/core/domain"
)

func TestForVenue_GeneratedTitleAndCanonical(t *testing.T) {
	detail := &domain.VenueDetail{
		Venue: domain.Venue{
			Slug:  "neon-arcade-austin",
			Name:  "Neon Arcade",
			City:  "austin",
			State: "tx",
		},
	}

	meta := ForVenue(detail, "https://example.com/")

	assert.Equal(t, "Neon Arcade - Austin, TX", meta.Title)
	assert.Equal(t, "https://example.com/venues/neon-arcade-austin", meta.Canonical)
	assert.NotEmpty(t, meta.Description)
}

func TestForVenue_OverridesWin(t *testing.T) {
	detail := &domain.VenueDetail{
		Venue: domain.Venue{
			Slug:            "neon-arcade-austin",
			Name:            "Neon Arcade",
			City:            "austin",
			State:           "tx",
			MetaTitle:       "Custom Title",
			MetaDescription: "Custom description.",
		},
	}

	meta := ForVenue(detail, "https://example.com")

	assert.Equal(t, "Custom Title", meta.Title)
	assert.Equal(t, "Custom description.", meta.Description)
}

func TestForVenue_DescriptionIncludesCategoriesAndRating(t *testing.T) {
	detail := &domain.VenueDetail{
		Venue: domain.Venue{
			Name:         "Neon Arcade",
			City:         "austin",
			State:        "tx",
			Rating:       4.5,
			ReviewsCount: 12,
		},
		Categories: []domain.Category{{Name: "Arcade"}, {Name: "Esports Arena"}},
	}

	meta := ForVenue(detail, "https://example.com")

	assert.Contains(t, meta.Description, "Neon Arcade in Austin, TX.")
	assert.Contains(t, meta.Description, "Arcade, Esports Arena.")
	assert.Contains(t, meta.Description, "Rated 4.5 from 12 reviews.")
}

func TestForVenue_StructuredData(t *testing.T) {
	detail := &domain.VenueDetail{
		Venue: domain.Venue{
			Slug:         "neon-arcade-austin",
			Name:         "Neon Arcade",
			Address:      "123 Main St",
			City:         "Austin",
			State:        "TX",
			Phone:        "+1-512-555-0100",
			Latitude:     30.2672,
			Longitude:    -97.7431,
			Rating:       4.5,
			ReviewsCount: 12,
		},
	}

	data := ForVenue(detail, "https://example.com").StructuredData

	assert.Equal(t, "LocalBusiness", data["@type"])
	assert.Equal(t, "https://example.com/venues/neon-arcade-austin", data["url"])
	assert.Contains(t, data, "address")
	assert.Contains(t, data, "geo")
	assert.Equal(t, "+1-512-555-0100", data["telephone"])

	rating, ok := data["aggregateRating"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, 4.5, rating["ratingValue"])
	assert.Equal(t, 12, rating["reviewCount"])
}

func TestForVenue_NoAggregateRatingWithoutReviews(t *testing.T) {
	// Рейтинг без отзывов - разметка без aggregateRating
	detail := &domain.VenueDetail{
		Venue: domain.Venue{Name: "Neon Arcade", Rating: 4.5, ReviewsCount: 0},
	}

	data := ForVenue(detail, "https://example.com").StructuredData

	assert.NotContains(t, data, "aggregateRating")
}

func TestForFacet(t *testing.T) {
	meta := ForFacet(domain.FacetCategory, "esports arena", "esports-arena", 8, "https://example.com")

	assert.Equal(t, "Esports Arena - Gaming Venues", meta.Title)
	assert.Equal(t, "Browse 8 gaming venues in the esports arena directory.", meta.Description)
	assert.Equal(t, "https://example.com/categories/esports-arena", meta.Canonical)
}

func TestForFacet_ZeroCount(t *testing.T) {
	meta := ForFacet(domain.FacetRegion, "Downtown", "downtown", 0, "https://example.com")

	assert.Equal(t, "Browse gaming venues in the Downtown directory.", meta.Description)
}
