package rest

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/operatorpuar/gaming-venues/internal/core/domain"
	core_port "github.com/operatorpuar/gaming-venues/internal/core/port"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(port string,
	venuesHandler *VenuesHandler,
	facetsHandler *FacetsHandler,
	allowedOrigins []string,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Trace-ID"},
		AllowCredentials: false,
		// На сколько секунд браузер кэширует preflight-ответ
		MaxAge: 300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/venues", venuesHandler.ListVenues)
		r.Get("/venues/search", venuesHandler.SearchVenues)
		r.Get("/venues/count", venuesHandler.CountVenues)
		r.Get("/venues/{venueSlug}", venuesHandler.GetVenueBySlug)

		r.Get("/facets", facetsHandler.ListFacets)
		r.Get("/categories/{facetSlug}", facetsHandler.GetFacetBySlug(domain.FacetCategory))
		r.Get("/amenities/{facetSlug}", facetsHandler.GetFacetBySlug(domain.FacetAmenity))
		r.Get("/regions/{facetSlug}", facetsHandler.GetFacetBySlug(domain.FacetRegion))

		r.Get("/states", facetsHandler.GetStatesWithCounts)
		r.Get("/states/{state}/regions", facetsHandler.GetRegionsByState)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
