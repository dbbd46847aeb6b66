package domain

import "time"

// Venue - основная сущность каталога: одна игровая площадка (клуб, арена, лаунж).
// Данные приходят извне (инжест), ядро их только читает.
type Venue struct {
	ID   int64
	Slug string

	Name        string
	Description string
	VenueType   string

	Address string
	City    string
	State   string
	Zip     string

	Phone   string
	Website string

	Latitude  float64
	Longitude float64

	IsActive bool
	Featured bool
	Verified bool

	Rating       float64
	ReviewsCount int

	// SEO-переопределения, могут быть пустыми
	MetaTitle       string
	MetaDescription string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Категории подгружаются отдельным запросом для карточек в списке
	Categories []Category
}

// VenueDetail - полная карточка площадки со всеми связями (без пагинации).
type VenueDetail struct {
	Venue      Venue
	Categories []Category
	Amenities  []Amenity
	Regions    []Region
}

// PaginatedResult - стандартная структура для ответа с пагинацией.
type PaginatedResult struct {
	Venues       []Venue
	TotalCount   int
	CurrentPage  int
	ItemsPerPage int
}
