package rest

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 20, 0},
		{"explicit page and size", "page=3&perPage=10", 10, 20},
		{"first page", "page=1&perPage=50", 50, 0},
		{"zero page clamped", "page=0", 20, 0},
		{"negative page clamped", "page=-2&perPage=10", 10, 0},
		{"oversized perPage reset to default", "perPage=500", 20, 0},
		{"garbage values", "page=abc&perPage=xyz", 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)

			limit, offset := parsePagination(values)

			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestParseInt64Slice(t *testing.T) {
	q := url.Values{}

	q.Set("categories", "1,2,3")
	assert.Equal(t, []int64{1, 2, 3}, parseInt64Slice(q, "categories"))

	// Мусор и пустые элементы отбрасываются
	q.Set("categories", "1, oops, ,3")
	assert.Equal(t, []int64{1, 3}, parseInt64Slice(q, "categories"))

	// Полностью мусорный параметр - фильтр не задан
	q.Set("categories", "oops,nope")
	assert.Nil(t, parseInt64Slice(q, "categories"))

	q.Del("categories")
	assert.Nil(t, parseInt64Slice(q, "categories"))
}

func TestParseStringSlice(t *testing.T) {
	q := url.Values{}

	q.Set("names", "categories, amenities")
	assert.Equal(t, []string{"categories", "amenities"}, parseStringSlice(q, "names"))

	q.Set("names", " , ,")
	assert.Nil(t, parseStringSlice(q, "names"))

	q.Del("names")
	assert.Nil(t, parseStringSlice(q, "names"))
}

func TestParseFloat(t *testing.T) {
	q := url.Values{}

	q.Set("ratingMin", "4.5")
	v := parseFloat(q, "ratingMin")
	assert.NotNil(t, v)
	assert.Equal(t, 4.5, *v)

	q.Set("ratingMin", "high")
	assert.Nil(t, parseFloat(q, "ratingMin"))

	q.Del("ratingMin")
	assert.Nil(t, parseFloat(q, "ratingMin"))
}

func TestParseBool(t *testing.T) {
	q := url.Values{}

	q.Set("featured", "true")
	assert.True(t, parseBool(q, "featured"))

	q.Set("featured", "banana")
	assert.False(t, parseBool(q, "featured"))

	q.Del("featured")
	assert.False(t, parseBool(q, "featured"))
}
