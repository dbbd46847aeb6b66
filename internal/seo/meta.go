package seo

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/operatorpuar/gaming-venues/internal/core/domain"
)

// Metadata - SEO-блок для страницы каталога или карточки.
// Генерация чистая: никаких обращений к хранилищу, только входные данные.
type Metadata struct {
	Title          string
	Description    string
	Canonical      string
	StructuredData map[string]interface{}
}

var titleCaser = cases.Title(language.AmericanEnglish)

// ForVenue строит метаданные карточки площадки. Явные переопределения
// (meta_title, meta_description) всегда выигрывают у сгенерированных.
func ForVenue(detail *domain.VenueDetail, baseURL string) Metadata {
	v := detail.Venue

	title := v.MetaTitle
	if title == "" {
		title = v.Name
		if v.City != "" && v.State != "" {
			title = fmt.Sprintf("%s - %s, %s", v.Name, titleCaser.String(v.City), strings.ToUpper(v.State))
		}
	}

	description := v.MetaDescription
	if description == "" {
		description = buildVenueDescription(detail)
	}

	return Metadata{
		Title:          title,
		Description:    description,
		Canonical:      fmt.Sprintf("%s/venues/%s", strings.TrimRight(baseURL, "/"), v.Slug),
		StructuredData: venueStructuredData(detail, baseURL),
	}
}

// ForFacet строит метаданные страницы фасета (категории, удобства, региона).
func ForFacet(kind domain.FacetKind, name, slug string, venueCount int, baseURL string) Metadata {
	title := fmt.Sprintf("%s - Gaming Venues", titleCaser.String(name))

	description := fmt.Sprintf("Browse gaming venues in the %s directory.", name)
	if venueCount > 0 {
		description = fmt.Sprintf("Browse %d gaming venues in the %s directory.", venueCount, name)
	}

	return Metadata{
		Title:       title,
		Description: description,
		Canonical:   fmt.Sprintf("%s/%s/%s", strings.TrimRight(baseURL, "/"), facetPathSegment(kind), slug),
	}
}

// facetPathSegment - сегмент публичного URL, совпадающий с REST-маршрутами.
func facetPathSegment(kind domain.FacetKind) string {
	switch kind {
	case domain.FacetCategory:
		return "categories"
	case domain.FacetAmenity:
		return "amenities"
	case domain.FacetRegion:
		return "regions"
	}
	return string(kind)
}

func buildVenueDescription(detail *domain.VenueDetail) string {
	v := detail.Venue

	var sb strings.Builder
	sb.WriteString(v.Name)
	if v.City != "" {
		sb.WriteString(fmt.Sprintf(" in %s", titleCaser.String(v.City)))
		if v.State != "" {
			sb.WriteString(fmt.Sprintf(", %s", strings.ToUpper(v.State)))
		}
	}
	sb.WriteString(".")

	if len(detail.Categories) > 0 {
		names := make([]string, len(detail.Categories))
		for i, c := range detail.Categories {
			names[i] = c.Name
		}
		sb.WriteString(" ")
		sb.WriteString(strings.Join(names, ", "))
		sb.WriteString(".")
	}

	if v.Rating > 0 {
		sb.WriteString(fmt.Sprintf(" Rated %.1f from %d reviews.", v.Rating, v.ReviewsCount))
	}

	return sb.String()
}

// venueStructuredData собирает JSON-LD LocalBusiness для карточки.
func venueStructuredData(detail *domain.VenueDetail, baseURL string) map[string]interface{} {
	v := detail.Venue

	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "LocalBusiness",
		"name":     v.Name,
		"url":      fmt.Sprintf("%s/venues/%s", strings.TrimRight(baseURL, "/"), v.Slug),
	}

	if v.Address != "" || v.City != "" {
		data["address"] = map[string]interface{}{
			"@type":           "PostalAddress",
			"streetAddress":   v.Address,
			"addressLocality": v.City,
			"addressRegion":   v.State,
			"postalCode":      v.Zip,
		}
	}

	if v.Latitude != 0 || v.Longitude != 0 {
		data["geo"] = map[string]interface{}{
			"@type":     "GeoCoordinates",
			"latitude":  v.Latitude,
			"longitude": v.Longitude,
		}
	}

	if v.Phone != "" {
		data["telephone"] = v.Phone
	}

	// AggregateRating только при наличии хотя бы одного отзыва,
	// нулевой рейтинг в разметке хуже отсутствующего
	if v.Rating > 0 && v.ReviewsCount > 0 {
		data["aggregateRating"] = map[string]interface{}{
			"@type":       "AggregateRating",
			"ratingValue": v.Rating,
			"reviewCount": v.ReviewsCount,
		}
	}

	return data
}
