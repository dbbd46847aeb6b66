package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/operatorpuar/gaming-venues/internal/contextkeys"
	"github.com/operatorpuar/gaming-venues/internal/core/domain"
	"github.com/operatorpuar/gaming-venues/internal/core/port"
	usecases_port "github.com/operatorpuar/gaming-venues/internal/core/port/usecases_port"
	"github.com/operatorpuar/gaming-venues/internal/seo"
)

type FacetsHandler struct {
	listFacetsUC     usecases_port.ListFacetsUseCase
	getFacetBySlugUC usecases_port.GetFacetBySlugUseCase
	statesUC         usecases_port.GetStatesWithCountsUseCase
	regionsByStateUC usecases_port.GetRegionsByStateUseCase

	baseURL string
}

func NewFacetsHandler(listFacetsUC usecases_port.ListFacetsUseCase,
	getFacetBySlugUC usecases_port.GetFacetBySlugUseCase,
	statesUC usecases_port.GetStatesWithCountsUseCase,
	regionsByStateUC usecases_port.GetRegionsByStateUseCase,
	baseURL string) *FacetsHandler {
	return &FacetsHandler{
		listFacetsUC:     listFacetsUC,
		getFacetBySlugUC: getFacetBySlugUC,
		statesUC:         statesUC,
		regionsByStateUC: regionsByStateUC,
		baseURL:          baseURL,
	}
}

// ListFacets обрабатывает GET /api/v1/facets.
// Параметр names ("categories,amenities") выбирает справочники;
// пустой - все сразу. withCounts добавляет счетчики площадок.
func (h *FacetsHandler) ListFacets(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	namesStr := r.URL.Query().Get("names")
	var names []string
	if namesStr != "" {
		names = strings.Split(namesStr, ",")
	}
	withCounts := parseBool(r.URL.Query(), "withCounts")

	handlerLogger := logger.WithFields(port.Fields{
		"handler":     "ListFacets",
		"names":       names,
		"with_counts": withCounts,
	})
	handlerLogger.Debug("Processing request to list facets", nil)

	catalog, err := h.listFacetsUC.Execute(r.Context(), names, withCounts)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve facets")
		return
	}

	response := FacetCatalogResponse{}
	if catalog.Categories != nil {
		response.Categories = make([]CategoryResponse, len(catalog.Categories))
		for i, c := range catalog.Categories {
			response.Categories[i] = toCategoryResponse(c, withCounts)
		}
	}
	if catalog.Amenities != nil {
		response.Amenities = make([]AmenityResponse, len(catalog.Amenities))
		for i, am := range catalog.Amenities {
			response.Amenities[i] = toAmenityResponse(am, withCounts)
		}
	}
	if catalog.Regions != nil {
		response.Regions = make([]RegionResponse, len(catalog.Regions))
		for i, reg := range catalog.Regions {
			response.Regions[i] = toRegionResponse(reg, withCounts)
		}
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// GetFacetBySlug обрабатывает GET /api/v1/{kind}s/{facetSlug}
// для категорий, удобств и регионов.
func (h *FacetsHandler) GetFacetBySlug(kind domain.FacetKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := contextkeys.LoggerFromContext(r.Context())

		slug := chi.URLParam(r, "facetSlug")
		if slug == "" {
			WriteJSONError(w, http.StatusBadRequest, "Facet slug is required")
			return
		}

		handlerLogger := logger.WithFields(port.Fields{
			"handler":    "GetFacetBySlug",
			"kind":       string(kind),
			"facet_slug": slug,
		})
		handlerLogger.Debug("Processing request to get facet", nil)

		entity, err := h.getFacetBySlugUC.Execute(r.Context(), kind, slug)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				WriteJSONError(w, http.StatusNotFound, "Facet not found")
				return
			}
			handlerLogger.Error("Use case failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve facet")
			return
		}

		RespondWithJSON(w, http.StatusOK, h.toFacetDetailResponse(kind, entity))
	}
}

// GetStatesWithCounts обрабатывает GET /api/v1/states
func (h *FacetsHandler) GetStatesWithCounts(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	handlerLogger := logger.WithFields(port.Fields{"handler": "GetStatesWithCounts"})
	handlerLogger.Debug("Processing request to get state counts", nil)

	states, err := h.statesUC.Execute(r.Context())
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve states")
		return
	}

	response := make([]StateCountResponse, len(states))
	for i, s := range states {
		response[i] = StateCountResponse{
			State:       s.State,
			VenueCount:  s.VenueCount,
			RegionCount: s.RegionCount,
		}
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// GetRegionsByState обрабатывает GET /api/v1/states/{state}/regions
func (h *FacetsHandler) GetRegionsByState(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	state := chi.URLParam(r, "state")

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "GetRegionsByState",
		"state":   state,
	})
	handlerLogger.Debug("Processing request to get regions by state", nil)

	regions, err := h.regionsByStateUC.Execute(r.Context(), state)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve regions")
		return
	}

	response := make([]RegionResponse, len(regions))
	for i, reg := range regions {
		response[i] = toRegionResponse(reg, true)
	}

	RespondWithJSON(w, http.StatusOK, response)
}

func (h *FacetsHandler) toFacetDetailResponse(kind domain.FacetKind, entity interface{}) FacetDetailResponse {
	var (
		data interface{}
		meta seo.Metadata
	)

	switch e := entity.(type) {
	case *domain.Category:
		data = toCategoryResponse(*e, true)
		meta = seo.ForFacet(kind, e.Name, e.Slug, e.VenueCount, h.baseURL)
	case *domain.Amenity:
		data = toAmenityResponse(*e, true)
		meta = seo.ForFacet(kind, e.Name, e.Slug, e.VenueCount, h.baseURL)
	case *domain.Region:
		data = toRegionResponse(*e, true)
		meta = seo.ForFacet(kind, e.Name, e.Slug, e.VenueCount, h.baseURL)
	}

	return FacetDetailResponse{
		Kind: string(kind),
		Data: data,
		Meta: MetadataResponse{
			Title:       meta.Title,
			Description: meta.Description,
			Canonical:   meta.Canonical,
		},
	}
}
