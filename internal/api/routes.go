package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/handlers"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET /health                       table and database status
//	GET /metrics                      Prometheus metrics
//	GET /api/v1/week/today            label for today
//	GET /api/v1/week/date/{date}      label for a YYYY-MM-DD date
//	GET /api/v1/periods               the period table, ?kind= and ?name= filter
//	GET /api/v1/termdates             next Autumn, Spring and Summer term starts
//	GET /api/v1/calendar.ics          the period table as iCalendar
//
// The week endpoints accept ?short=true and ?lower=true.
func SetupRoutes(h *Handlers, metrics *Metrics, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)

	r.Get("/health", h.HealthCheck)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/week/today", h.GetTodayWeek)
		r.Get("/week/date/{date}", h.GetDateWeek)
		r.Get("/periods", h.ListPeriods)
		r.Get("/termdates", h.GetTermDates)
		r.Get("/calendar.ics", h.GetCalendar)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "No route for "+r.URL.Path, CodeNotFound)
	})

	return handlers.CompressHandler(r)
}
