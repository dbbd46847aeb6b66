package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/operatorpuar/gaming-venues/internal/core/domain"
)

func TestApplyVenueFilters_NoFilters(t *testing.T) {
	where, args := applyVenueFilters(domain.VenueFilters{}, domain.Unconstrained(), "")

	assert.Equal(t, "WHERE v.is_active = true", where)
	assert.Empty(t, args)
}

func TestApplyVenueFilters_SearchReusesSingleArg(t *testing.T) {
	where, args := applyVenueFilters(domain.VenueFilters{}, domain.Unconstrained(), "arcade")

	assert.Equal(t,
		"WHERE v.is_active = true AND (v.name ILIKE $1 OR v.description ILIKE $1 OR v.address ILIKE $1 OR v.city ILIKE $1 OR v.venue_type ILIKE $1)",
		where,
	)
	assert.Equal(t, []interface{}{"%arcade%"}, args)
}

func TestApplyVenueFilters_ArgNumbering(t *testing.T) {
	ratingMin := 4.0
	filters := domain.VenueFilters{
		City:      "austin",
		State:     "tx",
		RatingMin: &ratingMin,
	}

	where, args := applyVenueFilters(filters, domain.Unconstrained(), "vr")

	assert.Contains(t, where, "v.name ILIKE $1")
	assert.Contains(t, where, "v.city ILIKE $2")
	assert.Contains(t, where, "v.state ILIKE $3")
	assert.Contains(t, where, "v.rating >= $4")
	assert.Equal(t, []interface{}{"%vr%", "%austin%", "%tx%", 4.0}, args)
}

func TestApplyVenueFilters_StaticFlags(t *testing.T) {
	filters := domain.VenueFilters{FeaturedOnly: true, VerifiedOnly: true}

	where, args := applyVenueFilters(filters, domain.Unconstrained(), "")

	assert.Equal(t, "WHERE v.is_active = true AND v.featured = true AND v.verified = true", where)
	assert.Empty(t, args)
}

func TestApplyVenueFilters_FacetResolution(t *testing.T) {
	res := domain.ConstrainedTo([]int64{10, 20, 30})

	where, args := applyVenueFilters(domain.VenueFilters{City: "reno"}, res, "")

	assert.Equal(t, "WHERE v.is_active = true AND v.city ILIKE $1 AND v.id = ANY($2)", where)
	assert.Equal(t, []interface{}{"%reno%", []int64{10, 20, 30}}, args)
}

func TestApplyVenueFilters_UnconstrainedAddsNoIDClause(t *testing.T) {
	where, _ := applyVenueFilters(domain.VenueFilters{}, domain.Unconstrained(), "")

	assert.NotContains(t, where, "v.id = ANY")
}
