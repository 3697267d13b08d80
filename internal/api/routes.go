package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kevincorvallis/AI-ATC/internal/charts"
	"github.com/kevincorvallis/AI-ATC/internal/config"
	"github.com/kevincorvallis/AI-ATC/internal/scenario"
	"github.com/kevincorvallis/AI-ATC/internal/session"
	"github.com/kevincorvallis/AI-ATC/internal/storage/sqlite"
	"github.com/kevincorvallis/AI-ATC/pkg/logger"
)

// Router is the API router
type Router struct {
	handler    *Handler
	middleware *Middleware
	config     *config.Config
	logger     *logger.Logger
}

// NewRouter creates a new API router
func NewRouter(synthesizer *scenario.Synthesizer, sessions *session.Manager, chartService *charts.Service, store *sqlite.DocumentStore, cfg *config.Config, log *logger.Logger) *Router {
	return &Router{
		handler:    NewHandler(synthesizer, sessions, chartService, store, cfg, log),
		middleware: NewMiddleware(log),
		config:     cfg,
		logger:     log.Named("api-router"),
	}
}

// Routes returns the API routes
func (r *Router) Routes() http.Handler {
	router := chi.NewRouter()

	// Middleware
	router.Use(r.middleware.RequestID)
	router.Use(r.middleware.Logger)
	router.Use(r.middleware.Recoverer)
	router.Use(r.middleware.CORS(r.config.Server.CORSAllowedOrigins))

	// API routes
	router.Route("/api/v1", func(router chi.Router) {
		// Scenario synthesis
		router.Post("/scenarios/generate", r.handler.GenerateScenario)

		// Training sessions
		router.Post("/sessions", r.handler.StartSession)
		router.Get("/sessions/{sessionId}", r.handler.GetSession)
		router.Delete("/sessions/{sessionId}", r.handler.EndSession)
		router.Post("/sessions/{sessionId}/transmit", r.handler.Transmit)

		// Training catalog
		router.Get("/training/categories", r.handler.GetTrainingCategories)
		router.Get("/training/categories/{id}", r.handler.GetTrainingCategory)

		// Live audio airport directory
		router.Get("/airports", r.handler.GetAirports)
		router.Get("/airports/{icao}", r.handler.GetAirport)
		router.Get("/airports/{icao}/charts", r.handler.GetCharts)

		// Pilot settings
		router.Get("/settings", r.handler.GetSettings)
		router.Put("/settings", r.handler.PutSettings)
		router.Delete("/settings", r.handler.ResetSettings)

		// Training progress
		router.Get("/progress", r.handler.GetProgress)
		router.Post("/progress/complete", r.handler.CompleteScenario)
		router.Delete("/progress", r.handler.ResetProgress)

		// Health check and frontend capability report
		router.Get("/health", r.handler.GetHealth)
		router.Get("/config", r.handler.GetConfig)
	})

	// Serve static files from the configured directory
	staticHandler := NewStaticFileHandler(r.config.Server.StaticFilesDir, r.logger)
	router.Handle("/*", staticHandler)

	return router
}
