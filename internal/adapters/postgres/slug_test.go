package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "neon-arcade", slugify("Neon Arcade"))
	assert.Equal(t, "joe-s-bar-grill", slugify("Joe's Bar & Grill"))
	assert.Equal(t, "level-99", slugify("  Level 99!  "))
	assert.Equal(t, "", slugify("!!!"))
}

func TestVenueSlug_NameOnly(t *testing.T) {
	assert.Equal(t, "neon-arcade", venueSlug("Neon Arcade", "", 0, 0))
}

func TestVenueSlug_NameAndCity(t *testing.T) {
	assert.Equal(t, "neon-arcade-austin", venueSlug("Neon Arcade", "Austin", 0, 0))
}

func TestVenueSlug_CoordinatesAddFingerprint(t *testing.T) {
	slug := venueSlug("Neon Arcade", "Austin", 30.2672, -97.7431)

	assert.True(t, strings.HasPrefix(slug, "neon-arcade-austin-"))
	// Геохэш точности 6 - ровно шесть символов суффикса
	assert.Len(t, slug, len("neon-arcade-austin-")+6)
}

func TestVenueSlug_SameCoordinatesSameSlug(t *testing.T) {
	a := venueSlug("Neon Arcade", "Austin", 30.2672, -97.7431)
	b := venueSlug("Neon Arcade", "Austin", 30.2672, -97.7431)

	assert.Equal(t, a, b)
}

func TestVenueSlug_DifferentCoordinatesDifferentSlug(t *testing.T) {
	downtown := venueSlug("Neon Arcade", "Austin", 30.2672, -97.7431)
	suburb := venueSlug("Neon Arcade", "Austin", 30.4548, -97.6023)

	assert.NotEqual(t, downtown, suburb)
}
