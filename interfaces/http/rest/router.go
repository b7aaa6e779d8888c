package rest

import (
	"net/http"

	"moviedb-backend/application/services"
	"moviedb-backend/infrastructure/config"
	"moviedb-backend/interfaces/http/rest/handlers"
	"moviedb-backend/interfaces/http/rest/middleware"
	"moviedb-backend/pkg/auth"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg      *config.Config
	reviews  *services.ReviewService
	catalog  *services.CatalogService
	verifier *auth.CookieVerifier
	logger   *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	reviews *services.ReviewService,
	catalog *services.CatalogService,
	verifier *auth.CookieVerifier,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:      cfg,
		reviews:  reviews,
		catalog:  catalog,
		verifier: verifier,
		logger:   logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	authenticate := middleware.Authenticate(rt.verifier, rt.logger)

	// Health check
	router.Get("/health", rt.healthCheck)

	reviewHandler := handlers.NewReviewHandler(rt.reviews, rt.logger)
	movieHandler := handlers.NewMovieHandler(rt.catalog, rt.logger)

	router.Route("/reviews", func(r chi.Router) {
		r.Get("/", reviewHandler.ListAll)
		r.Get("/{reviewerName}", reviewHandler.ListByReviewer)
	})

	router.Route("/movies", func(r chi.Router) {
		r.Get("/", movieHandler.List)
		r.With(authenticate).Post("/", movieHandler.Create)
		r.Get("/cast", movieHandler.Cast)

		r.Route("/{movieId}", func(r chi.Router) {
			r.Get("/", movieHandler.Get)
			r.With(authenticate).Delete("/", movieHandler.Delete)

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/", reviewHandler.ListByMovie)
				r.With(authenticate).Post("/", reviewHandler.Create)
				r.Get("/{qualifier}", reviewHandler.ListByQualifier)
				r.With(authenticate).Put("/{qualifier}", reviewHandler.Update)
			})
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
