package services

import (
	"context"
	"time"

	"moviedb-backend/application/ports"
	"moviedb-backend/domain/catalog"
	"moviedb-backend/pkg/errors"
	"moviedb-backend/pkg/observability"
	"moviedb-backend/pkg/utils"

	"go.uber.org/zap"
)

// CatalogService exposes the movie and cast catalogue. Reviews only read
// from it; its writes sit behind their own endpoints.
type CatalogService struct {
	repo    ports.MovieRepository
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewCatalogService creates a catalogue service
func NewCatalogService(repo ports.MovieRepository, metrics *observability.Metrics, logger *zap.Logger) *CatalogService {
	return &CatalogService{repo: repo, metrics: metrics, logger: logger}
}

// Get returns a movie by id, optionally with its cast
func (s *CatalogService) Get(ctx context.Context, id int, withCast bool) (*catalog.Movie, []catalog.CastMember, error) {
	start := time.Now()
	movie, err := s.repo.GetByID(ctx, id)
	s.metrics.RecordOperation(ctx, "GetMovie", time.Since(start), err == nil)
	if err != nil {
		return nil, nil, err
	}
	if movie == nil {
		return nil, nil, errors.NewNotFoundError("movie")
	}

	if !withCast {
		return movie, nil, nil
	}
	cast, err := s.repo.QueryCast(ctx, catalog.CastQuery{MovieID: id})
	if err != nil {
		s.logger.Warn("failed to load cast for movie", zap.Int("movieId", id), zap.Error(err))
		return movie, nil, nil
	}
	return movie, cast, nil
}

// List returns the full movie catalogue
func (s *CatalogService) List(ctx context.Context) ([]catalog.Movie, error) {
	start := time.Now()
	movies, err := s.repo.List(ctx)
	s.metrics.RecordOperation(ctx, "ListMovies", time.Since(start), err == nil)
	if err != nil {
		return nil, err
	}
	return movies, nil
}

// Add validates and writes a catalogue entry
func (s *CatalogService) Add(ctx context.Context, movie catalog.Movie) error {
	if fields, err := utils.CheckStruct(movie); err != nil {
		return errors.NewSchemaViolationError(fields).WithCause(err)
	}

	start := time.Now()
	err := s.repo.Create(ctx, movie)
	s.metrics.RecordOperation(ctx, "AddMovie", time.Since(start), err == nil)
	if err != nil {
		s.logger.Error("failed to add movie", zap.Int("movieId", movie.ID), zap.Error(err))
	}
	return err
}

// Delete removes a catalogue entry
func (s *CatalogService) Delete(ctx context.Context, id int) error {
	start := time.Now()
	err := s.repo.Delete(ctx, id)
	s.metrics.RecordOperation(ctx, "DeleteMovie", time.Since(start), err == nil)
	if err != nil {
		s.logger.Error("failed to delete movie", zap.Int("movieId", id), zap.Error(err))
	}
	return err
}

// Cast returns cast members for a movie with optional name filters
func (s *CatalogService) Cast(ctx context.Context, q catalog.CastQuery) ([]catalog.CastMember, error) {
	if q.MovieID == 0 {
		return nil, errors.NewValidationError("movieId is required")
	}

	start := time.Now()
	cast, err := s.repo.QueryCast(ctx, q)
	s.metrics.RecordOperation(ctx, "QueryCast", time.Since(start), err == nil)
	if err != nil {
		return nil, err
	}
	if len(cast) == 0 {
		return nil, errors.NewNotFoundError("cast members")
	}
	return cast, nil
}
