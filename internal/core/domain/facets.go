package domain

// Category - справочная сущность (жанр площадки: аркада, киберспорт-арена и т.д.)
type Category struct {
	ID       int64
	Name     string
	Slug     string
	IsActive bool

	// Заполняется только в вариантах *WithCounts
	VenueCount int
}

// Amenity - удобство/оснащение (VR, турнирная зона, бар...).
// Label группирует удобства в каталоге.
type Amenity struct {
	ID       int64
	Name     string
	Slug     string
	Label    string
	IsActive bool

	VenueCount int
}

// Region - географический регион. Флага is_active у регионов нет,
// они считаются всегда активными.
type Region struct {
	ID      int64
	Name    string
	Slug    string
	State   string
	Country string

	VenueCount int
}

// FacetKind - тип фасета для универсальных операций по slug.
type FacetKind string

const (
	FacetCategory FacetKind = "category"
	FacetAmenity  FacetKind = "amenity"
	FacetRegion   FacetKind = "region"
)

// FacetCatalog - содержимое запрошенных справочников одним ответом.
type FacetCatalog struct {
	Categories []Category
	Amenities  []Amenity
	Regions    []Region
}

// StateCount - строка сводки по штатам: сколько активных площадок
// и сколько регионов числится за штатом.
type StateCount struct {
	State       string
	VenueCount  int
	RegionCount int
}
