package rest

import "time"

// --- DTO для ответов ---

type CategoryResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	IsActive bool   `json:"isActive"`

	VenueCount *int `json:"venueCount,omitempty"`
}

type AmenityResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Label    string `json:"label"`
	IsActive bool   `json:"isActive"`

	VenueCount *int `json:"venueCount,omitempty"`
}

type RegionResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	State   string `json:"state"`
	Country string `json:"country"`

	VenueCount *int `json:"venueCount,omitempty"`
}

type FacetCatalogResponse struct {
	Categories []CategoryResponse `json:"categories,omitempty"`
	Amenities  []AmenityResponse  `json:"amenities,omitempty"`
	Regions    []RegionResponse   `json:"regions,omitempty"`
}

type VenueCardResponse struct {
	ID        int64  `json:"id"`
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	VenueType string `json:"venueType"`

	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`

	Featured bool `json:"featured"`
	Verified bool `json:"verified"`

	Rating       float64 `json:"rating"`
	ReviewsCount int     `json:"reviewsCount"`

	Categories []CategoryResponse `json:"categories"`
}

type PaginatedVenuesResponse struct {
	Total   int                 `json:"total"`
	Page    int                 `json:"page"`
	PerPage int                 `json:"perPage"`
	Data    []VenueCardResponse `json:"data"`
}

type CountResponse struct {
	Count int `json:"count"`
}

type MetadataResponse struct {
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	Canonical      string                 `json:"canonical"`
	StructuredData map[string]interface{} `json:"structuredData,omitempty"`
}

type VenueDetailResponse struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	VenueType   string `json:"venueType"`

	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`

	Phone   string `json:"phone"`
	Website string `json:"website"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	Featured bool `json:"featured"`
	Verified bool `json:"verified"`

	Rating       float64 `json:"rating"`
	ReviewsCount int     `json:"reviewsCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Categories []CategoryResponse `json:"categories"`
	Amenities  []AmenityResponse  `json:"amenities"`
	Regions    []RegionResponse   `json:"regions"`

	Meta MetadataResponse `json:"meta"`
}

type StateCountResponse struct {
	State       string `json:"state"`
	VenueCount  int    `json:"venueCount"`
	RegionCount int    `json:"regionCount"`
}

type FacetDetailResponse struct {
	Kind string      `json:"kind"`
	Data interface{} `json:"data"`
	Meta MetadataResponse `json:"meta"`
}
