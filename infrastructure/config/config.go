package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion       string
	MoviesTable     string
	MovieCastTable  string
	ReviewsTable    string
	CastRoleIndex   string
	EventBusName    string
	MetricNamespace string

	// Authentication
	JWTSecret  string
	CookieName string

	// Lambda / observability
	IsLambda      bool
	EnableTracing bool
	EnableCORS    bool
	LogLevel      string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		AWSRegion:       getEnv("AWS_REGION", "eu-west-1"),
		MoviesTable:     getEnv("MOVIES_TABLE", "Movies"),
		MovieCastTable:  getEnv("MOVIE_CAST_TABLE", "MovieCast"),
		ReviewsTable:    getEnv("REVIEWS_TABLE", "MovieReviews"),
		CastRoleIndex:   getEnv("CAST_ROLE_INDEX", "roleIx"),
		EventBusName:    getEnv("EVENT_BUS_NAME", "moviedb-events"),
		MetricNamespace: getEnv("METRIC_NAMESPACE", "MovieDB"),

		JWTSecret:  getEnv("JWT_SECRET", ""),
		CookieName: getEnv("AUTH_COOKIE_NAME", "token"),

		IsLambda:      os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "",
		EnableTracing: getEnvBool("ENABLE_TRACING", false),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		if c.ReviewsTable == "" || c.MoviesTable == "" || c.MovieCastTable == "" {
			return fmt.Errorf("table names are required")
		}
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}
