package di

import (
	"moviedb-backend/application/ports"
	"moviedb-backend/application/services"
	"moviedb-backend/infrastructure/config"
	"moviedb-backend/infrastructure/persistence/dynamodb"
	"moviedb-backend/pkg/auth"
	"moviedb-backend/pkg/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	Verifier   *auth.CookieVerifier
	Metrics    *observability.Metrics
	Tracer     *observability.Tracer
	ReviewRepo ports.ReviewRepository
	MovieRepo  ports.MovieRepository
	EventBus   ports.EventPublisher
	Reviews    *services.ReviewService
	Catalog    *services.CatalogService
	Seeder     *dynamodb.SeedLoader
}
