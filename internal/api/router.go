package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	_ "github.com/pulsewatch/pulsewatch/docs"
	"github.com/pulsewatch/pulsewatch/internal/api/handler"
	"github.com/pulsewatch/pulsewatch/internal/api/middleware"
)

type Router struct {
	userHandler     *handler.UserHandler
	jobHandler      *handler.JobHandler
	summaryHandler  *handler.SummaryHandler
	insightsHandler *handler.InsightsHandler
}

func NewRouter(
	userHandler *handler.UserHandler,
	jobHandler *handler.JobHandler,
	summaryHandler *handler.SummaryHandler,
	insightsHandler *handler.InsightsHandler,
) *Router {
	return &Router{
		userHandler:     userHandler,
		jobHandler:      jobHandler,
		summaryHandler:  summaryHandler,
		insightsHandler: insightsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Pipeline trigger surface for the external scheduler
		r.Route("/jobs", func(r chi.Router) {
			r.Post("/ingest", rt.jobHandler.Ingest)
			r.Post("/aggregate", rt.jobHandler.Aggregate)
			r.Post("/baseline", rt.jobHandler.Baseline)
		})

		// Users
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)
			r.Put("/{userId}/snooze", rt.userHandler.UpdateSnooze)

			r.Get("/{userId}/summaries", rt.summaryHandler.List)
			r.Get("/{userId}/baseline", rt.summaryHandler.GetBaseline)
			r.Get("/{userId}/insights", rt.insightsHandler.GetInsights)
		})
	})

	return r
}
