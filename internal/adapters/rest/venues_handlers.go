package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/operatorpuar/gaming-venues/internal/contextkeys"
	"github.com/operatorpuar/gaming-venues/internal/core/domain"
	"github.com/operatorpuar/gaming-venues/internal/core/port"
	usecases_port "github.com/operatorpuar/gaming-venues/internal/core/port/usecases_port"
	"github.com/operatorpuar/gaming-venues/internal/seo"
)

type VenuesHandler struct {
	listVenuesUC     usecases_port.ListVenuesUseCase
	searchVenuesUC   usecases_port.SearchVenuesUseCase
	countVenuesUC    usecases_port.CountVenuesUseCase
	getVenueBySlugUC usecases_port.GetVenueBySlugUseCase

	baseURL string
}

func NewVenuesHandler(listVenuesUC usecases_port.ListVenuesUseCase,
	searchVenuesUC usecases_port.SearchVenuesUseCase,
	countVenuesUC usecases_port.CountVenuesUseCase,
	getVenueBySlugUC usecases_port.GetVenueBySlugUseCase,
	baseURL string) *VenuesHandler {
	return &VenuesHandler{
		listVenuesUC:     listVenuesUC,
		searchVenuesUC:   searchVenuesUC,
		countVenuesUC:    countVenuesUC,
		getVenueBySlugUC: getVenueBySlugUC,
		baseURL:          baseURL,
	}
}

// parseVenueFilters собирает фильтры из query-параметров.
// Формат многозначных фасетов: "categories=1,2,3".
func parseVenueFilters(r *http.Request) domain.VenueFilters {
	query := r.URL.Query()
	return domain.VenueFilters{
		CategoryIDs:  parseInt64Slice(query, "categories"),
		AmenityIDs:   parseInt64Slice(query, "amenities"),
		RegionIDs:    parseInt64Slice(query, "regions"),
		City:         parseString(query, "city"),
		State:        parseString(query, "state"),
		RatingMin:    parseFloat(query, "ratingMin"),
		FeaturedOnly: parseBool(query, "featured"),
		VerifiedOnly: parseBool(query, "verified"),
	}
}

// ListVenues обрабатывает GET /api/v1/venues
func (h *VenuesHandler) ListVenues(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	limit, offset := parsePagination(r.URL.Query())
	filters := parseVenueFilters(r)

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "ListVenues",
		"limit":   limit,
		"offset":  offset,
	})
	handlerLogger.Debug("Processing request to list venues", nil)

	paginatedResult, err := h.listVenuesUC.Execute(r.Context(), filters, limit, offset)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPagination) {
			WriteJSONError(w, http.StatusBadRequest, "Invalid pagination parameters")
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve venues")
		return
	}

	handlerLogger.Info("Successfully listed venues", port.Fields{
		"total_found":   paginatedResult.TotalCount,
		"items_on_page": len(paginatedResult.Venues),
	})

	RespondWithJSON(w, http.StatusOK, toPaginatedVenuesResponse(paginatedResult))
}

// SearchVenues обрабатывает GET /api/v1/venues/search
func (h *VenuesHandler) SearchVenues(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	limit, offset := parsePagination(r.URL.Query())
	filters := parseVenueFilters(r)
	searchQuery := parseString(r.URL.Query(), "q")

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "SearchVenues",
		"query":   searchQuery,
		"limit":   limit,
		"offset":  offset,
	})
	handlerLogger.Debug("Processing request to search venues", nil)

	paginatedResult, err := h.searchVenuesUC.Execute(r.Context(), searchQuery, filters, limit, offset)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPagination) {
			WriteJSONError(w, http.StatusBadRequest, "Invalid pagination parameters")
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to search venues")
		return
	}

	handlerLogger.Info("Successfully searched venues", port.Fields{
		"total_found":   paginatedResult.TotalCount,
		"items_on_page": len(paginatedResult.Venues),
	})

	RespondWithJSON(w, http.StatusOK, toPaginatedVenuesResponse(paginatedResult))
}

// CountVenues обрабатывает GET /api/v1/venues/count.
// Необязательный параметр q добавляет текстовое ограничение.
func (h *VenuesHandler) CountVenues(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	filters := parseVenueFilters(r)
	searchQuery := parseString(r.URL.Query(), "q")

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "CountVenues",
		"query":   searchQuery,
	})
	handlerLogger.Debug("Processing request to count venues", nil)

	count, err := h.countVenuesUC.Execute(r.Context(), searchQuery, filters)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to count venues")
		return
	}

	RespondWithJSON(w, http.StatusOK, CountResponse{Count: count})
}

// GetVenueBySlug обрабатывает GET /api/v1/venues/{venueSlug}
func (h *VenuesHandler) GetVenueBySlug(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	slug := chi.URLParam(r, "venueSlug")
	if slug == "" {
		WriteJSONError(w, http.StatusBadRequest, "Venue slug is required")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":    "GetVenueBySlug",
		"venue_slug": slug,
	})
	handlerLogger.Debug("Processing request to get venue details", nil)

	detail, err := h.getVenueBySlugUC.Execute(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Venue not found")
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve venue")
		return
	}

	handlerLogger.Info("Successfully found venue details", nil)
	RespondWithJSON(w, http.StatusOK, h.toVenueDetailResponse(detail))
}

// --- Маппинг domain -> DTO ---

func toCategoryResponse(c domain.Category, withCounts bool) CategoryResponse {
	resp := CategoryResponse{
		ID:       c.ID,
		Name:     c.Name,
		Slug:     c.Slug,
		IsActive: c.IsActive,
	}
	if withCounts {
		count := c.VenueCount
		resp.VenueCount = &count
	}
	return resp
}

func toAmenityResponse(am domain.Amenity, withCounts bool) AmenityResponse {
	resp := AmenityResponse{
		ID:       am.ID,
		Name:     am.Name,
		Slug:     am.Slug,
		Label:    am.Label,
		IsActive: am.IsActive,
	}
	if withCounts {
		count := am.VenueCount
		resp.VenueCount = &count
	}
	return resp
}

func toRegionResponse(r domain.Region, withCounts bool) RegionResponse {
	resp := RegionResponse{
		ID:      r.ID,
		Name:    r.Name,
		Slug:    r.Slug,
		State:   r.State,
		Country: r.Country,
	}
	if withCounts {
		count := r.VenueCount
		resp.VenueCount = &count
	}
	return resp
}

func toVenueCardResponse(v domain.Venue) VenueCardResponse {
	categories := make([]CategoryResponse, len(v.Categories))
	for i, c := range v.Categories {
		categories[i] = toCategoryResponse(c, false)
	}

	return VenueCardResponse{
		ID:           v.ID,
		Slug:         v.Slug,
		Name:         v.Name,
		VenueType:    v.VenueType,
		Address:      v.Address,
		City:         v.City,
		State:        v.State,
		Featured:     v.Featured,
		Verified:     v.Verified,
		Rating:       v.Rating,
		ReviewsCount: v.ReviewsCount,
		Categories:   categories,
	}
}

func toPaginatedVenuesResponse(result *domain.PaginatedResult) PaginatedVenuesResponse {
	response := PaginatedVenuesResponse{
		Total:   result.TotalCount,
		Page:    result.CurrentPage,
		PerPage: result.ItemsPerPage,
		Data:    make([]VenueCardResponse, len(result.Venues)),
	}
	for i, v := range result.Venues {
		response.Data[i] = toVenueCardResponse(v)
	}
	return response
}

func (h *VenuesHandler) toVenueDetailResponse(detail *domain.VenueDetail) VenueDetailResponse {
	v := detail.Venue

	categories := make([]CategoryResponse, len(detail.Categories))
	for i, c := range detail.Categories {
		categories[i] = toCategoryResponse(c, false)
	}
	amenities := make([]AmenityResponse, len(detail.Amenities))
	for i, am := range detail.Amenities {
		amenities[i] = toAmenityResponse(am, false)
	}
	regions := make([]RegionResponse, len(detail.Regions))
	for i, reg := range detail.Regions {
		regions[i] = toRegionResponse(reg, false)
	}

	meta := seo.ForVenue(detail, h.baseURL)

	return VenueDetailResponse{
		ID:           v.ID,
		Slug:         v.Slug,
		Name:         v.Name,
		Description:  v.Description,
		VenueType:    v.VenueType,
		Address:      v.Address,
		City:         v.City,
		State:        v.State,
		Zip:          v.Zip,
		Phone:        v.Phone,
		Website:      v.Website,
		Latitude:     v.Latitude,
		Longitude:    v.Longitude,
		Featured:     v.Featured,
		Verified:     v.Verified,
		Rating:       v.Rating,
		ReviewsCount: v.ReviewsCount,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
		Categories:   categories,
		Amenities:    amenities,
		Regions:      regions,
		Meta: MetadataResponse{
			Title:          meta.Title,
			Description:    meta.Description,
			Canonical:      meta.Canonical,
			StructuredData: meta.StructuredData,
		},
	}
}
