package domain

// VenueRecord - входящая запись инжеста. Ключ дедупликации - пара
// (Source, SourceVenueID), по ней делается upsert.
type VenueRecord struct {
	Source        string
	SourceVenueID string

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

	MetaTitle       string
	MetaDescription string

	// Членства задаются slug-ами справочников; неизвестные slug-и игнорируются
	CategorySlugs []string
	AmenitySlugs  []string
	RegionSlugs   []string
}

// BatchSaveStats - итог сохранения одной пачки.
type BatchSaveStats struct {
	Created int
	Updated int
	Skipped int
}
