package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVenueFilters_HasFacets(t *testing.T) {
	assert.False(t, VenueFilters{}.HasFacets())
	assert.False(t, VenueFilters{City: "austin", FeaturedOnly: true}.HasFacets())

	// Пустой, но переданный список равнозначен отсутствию фильтра
	assert.False(t, VenueFilters{CategoryIDs: []int64{}}.HasFacets())
	assert.False(t, VenueFilters{AmenityIDs: []int64{}, RegionIDs: []int64{}}.HasFacets())

	assert.True(t, VenueFilters{CategoryIDs: []int64{1}}.HasFacets())
	assert.True(t, VenueFilters{AmenityIDs: []int64{5}}.HasFacets())
	assert.True(t, VenueFilters{RegionIDs: []int64{7}}.HasFacets())
}

func TestFacetResolution_States(t *testing.T) {
	// Фасеты не заданы: ограничения нет, но это не пустой результат
	unconstrained := Unconstrained()
	assert.False(t, unconstrained.Constrained)
	assert.False(t, unconstrained.Empty())

	// Фасеты заданы и пересеклись в пустоту
	empty := ConstrainedTo(nil)
	assert.True(t, empty.Constrained)
	assert.True(t, empty.Empty())
	assert.NotNil(t, empty.IDs)

	emptySlice := ConstrainedTo([]int64{})
	assert.True(t, emptySlice.Empty())

	constrained := ConstrainedTo([]int64{3, 8})
	assert.True(t, constrained.Constrained)
	assert.False(t, constrained.Empty())
	assert.Equal(t, []int64{3, 8}, constrained.IDs)
}
