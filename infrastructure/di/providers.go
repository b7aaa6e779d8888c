package di

import (
	"context"

	"moviedb-backend/application/ports"
	"moviedb-backend/application/services"
	"moviedb-backend/infrastructure/config"
	"moviedb-backend/infrastructure/messaging/eventbridge"
	"moviedb-backend/infrastructure/persistence/dynamodb"
	"moviedb-backend/pkg/auth"
	"moviedb-backend/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"
)

// devSecret keeps local development working without a configured secret
const devSecret = "development-secret-change-in-production"

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideMetrics creates the CloudWatch metrics emitter
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config) *observability.Metrics {
	return observability.NewMetrics(cfg.MetricNamespace+"/"+cfg.Environment, client)
}

// ProvideTracer creates the X-Ray tracer; it only records inside Lambda
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	return observability.NewTracer("moviedb", cfg.IsLambda && cfg.EnableTracing)
}

// ProvideCookieVerifier creates the authorizer credential check
func ProvideCookieVerifier(cfg *config.Config) (*auth.CookieVerifier, error) {
	secret := cfg.JWTSecret
	if secret == "" {
		secret = devSecret
	}
	return auth.NewCookieVerifier(cfg.CookieName, secret)
}

// ProvideReviewRepository creates the review store
func ProvideReviewRepository(client *awsdynamodb.Client, cfg *config.Config, tracer *observability.Tracer, logger *zap.Logger) ports.ReviewRepository {
	return dynamodb.NewReviewRepository(client, cfg.ReviewsTable, tracer, logger)
}

// ProvideMovieRepository creates the catalogue store
func ProvideMovieRepository(client *awsdynamodb.Client, cfg *config.Config, tracer *observability.Tracer, logger *zap.Logger) ports.MovieRepository {
	return dynamodb.NewMovieRepository(client, cfg.MoviesTable, cfg.MovieCastTable, cfg.CastRoleIndex, tracer, logger)
}

// ProvideEventPublisher creates the EventBridge publisher
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideReviewService creates the review service
func ProvideReviewService(repo ports.ReviewRepository, publisher ports.EventPublisher, metrics *observability.Metrics, logger *zap.Logger) *services.ReviewService {
	return services.NewReviewService(repo, publisher, metrics, logger)
}

// ProvideCatalogService creates the catalogue service
func ProvideCatalogService(repo ports.MovieRepository, metrics *observability.Metrics, logger *zap.Logger) *services.CatalogService {
	return services.NewCatalogService(repo, metrics, logger)
}

// ProvideSeedLoader creates the seed loader
func ProvideSeedLoader(client *awsdynamodb.Client, logger *zap.Logger) *dynamodb.SeedLoader {
	return dynamodb.NewSeedLoader(client, logger)
}
