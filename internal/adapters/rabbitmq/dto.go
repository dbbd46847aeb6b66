package rabbitmq

import "github.com/operatorpuar/gaming-venues/internal/core/domain"

// VenueBatchEventDTO - одно сообщение инжеста (контракт VenueBatchEvent/1.0.0)
type VenueBatchEventDTO struct {
	Source        string `json:"source"`
	SourceVenueID string `json:"source_venue_id"`

	Name        string `json:"name"`
	Description string `json:"description"`
	VenueType   string `json:"venue_type"`

	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`

	Phone   string `json:"phone"`
	Website string `json:"website"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	IsActive bool `json:"is_active"`
	Featured bool `json:"featured"`
	Verified bool `json:"verified"`

	Rating       float64 `json:"rating"`
	ReviewsCount int     `json:"reviews_count"`

	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`

	CategorySlugs []string `json:"category_slugs"`
	AmenitySlugs  []string `json:"amenity_slugs"`
	RegionSlugs   []string `json:"region_slugs"`
}

func toDomainVenueRecord(dto VenueBatchEventDTO) domain.VenueRecord {
	return domain.VenueRecord{
		Source:        dto.Source,
		SourceVenueID: dto.SourceVenueID,

		Name:        dto.Name,
		Description: dto.Description,
		VenueType:   dto.VenueType,

		Address: dto.Address,
		City:    dto.City,
		State:   dto.State,
		Zip:     dto.Zip,

		Phone:   dto.Phone,
		Website: dto.Website,

		Latitude:  dto.Latitude,
		Longitude: dto.Longitude,

		IsActive: dto.IsActive,
		Featured: dto.Featured,
		Verified: dto.Verified,

		Rating:       dto.Rating,
		ReviewsCount: dto.ReviewsCount,

		MetaTitle:       dto.MetaTitle,
		MetaDescription: dto.MetaDescription,

		CategorySlugs: dto.CategorySlugs,
		AmenitySlugs:  dto.AmenitySlugs,
		RegionSlugs:   dto.RegionSlugs,
	}
}
