package routes

import (
	"net/http"

	"github.com/kezv166-web/medicare/internal/api/handlers"
	"github.com/kezv166-web/medicare/internal/api/middleware"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	discoveryHandler   *handlers.DiscoveryHandler
	reportHandler      *handlers.ReportHandler
	geolocationHandler *handlers.GeolocationHandler
}

// NewRouter creates a new router
func NewRouter(
	discoveryHandler *handlers.DiscoveryHandler,
	reportHandler *handlers.ReportHandler,
	geolocationHandler *handlers.GeolocationHandler,
) *Router {
	return &Router{
		mux:                http.NewServeMux(),
		discoveryHandler:   discoveryHandler,
		reportHandler:      reportHandler,
		geolocationHandler: geolocationHandler,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Discovery endpoints
	r.mux.HandleFunc("GET /api/facilities/nearby", r.discoveryHandler.NearbyFacilities)

	// Community report endpoints
	r.mux.HandleFunc("POST /api/facilities/{id}/reports", r.reportHandler.SubmitReport)

	// Geolocation endpoints
	r.mux.HandleFunc("GET /api/geocode", r.geolocationHandler.Geocode)
	r.mux.HandleFunc("GET /api/reverse-geocode", r.geolocationHandler.ReverseGeocode)

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS is outermost so error responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}
