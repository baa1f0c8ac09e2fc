package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"arogya-dispatch-service/internal/api/handlers"
	"arogya-dispatch-service/internal/domain"
	"arogya-dispatch-service/internal/ports"
	"arogya-dispatch-service/internal/services"
)

// Deps collects everything the HTTP surface needs. The composition root in
// cmd/server fills it with concrete adapters; handlers stay unaware of them.
type Deps struct {
	Facilities []domain.Facility
	Roster     []domain.Vehicle
	Geocoder   ports.Geocoder
	Locator    ports.ApproxLocator
	Knowledge  ports.KnowledgeSource
	Session    *services.Session

	// SiteDir, when set, is served at / for the bundled demo frontend.
	SiteDir string
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
func NewRouter(d Deps) http.Handler {
	booking := &handlers.BookingHandler{
		Facilities: d.Facilities,
		Roster:     d.Roster,
		Geocoder:   d.Geocoder,
	}
	facility := &handlers.FacilityHandler{Facilities: d.Facilities}
	location := &handlers.LocationHandler{Geocoder: d.Geocoder, Locator: d.Locator}
	ask := &handlers.AskHandler{Knowledge: d.Knowledge}
	trips := handlers.NewTripHandler(d.Session)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/quotes", booking.Quotes)
		r.Get("/facilities/suggest", facility.Suggest)
		r.Get("/location/approx", location.Approx)
		r.Get("/geocode", location.Forward)
		r.Get("/geocode/reverse", location.Reverse)

		r.Post("/trips", trips.Start)
		r.Get("/trips/{tripID}/live", trips.Live)
		r.Get("/trips/{tripID}/map", trips.MapLayout)
		r.Delete("/trips/{tripID}", trips.End)
	})

	r.Post("/ai", ask.Ask)

	if d.SiteDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(d.SiteDir)))
	}

	return r
}
