package services

import (
	"context"
	"time"

	"moviedb-backend/application/ports"
	"moviedb-backend/domain/events"
	"moviedb-backend/domain/reviews"
	"moviedb-backend/pkg/errors"
	"moviedb-backend/pkg/observability"
	"moviedb-backend/pkg/utils"

	"go.uber.org/zap"
)

// ReviewService owns query and mutation correctness for reviews: the
// schema gate, qualifier resolution, plan compilation and empty-set
// handling. The store owns durability.
type ReviewService struct {
	repo    ports.ReviewRepository
	events  ports.EventPublisher
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewReviewService creates a review service
func NewReviewService(
	repo ports.ReviewRepository,
	publisher ports.EventPublisher,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *ReviewService {
	return &ReviewService{
		repo:    repo,
		events:  publisher,
		metrics: metrics,
		logger:  logger,
	}
}

// Add validates an inbound review and writes it. Validation failures are
// reported before any store call; no partial writes occur.
func (s *ReviewService) Add(ctx context.Context, review reviews.Review) error {
	if fields, err := utils.CheckStruct(review); err != nil {
		return errors.NewSchemaViolationError(fields).WithCause(err)
	}
	if review.ReviewDate == "" {
		review.ReviewDate = utils.TodayDate()
	}

	start := time.Now()
	err := s.repo.Create(ctx, review)
	s.metrics.RecordOperation(ctx, "AddReview", time.Since(start), err == nil)
	if err != nil {
		s.logger.Error("failed to add review",
			zap.Int("movieId", review.MovieID),
			zap.String("reviewer", review.ReviewerName),
			zap.Error(err),
		)
		return err
	}

	s.publish(ctx, events.NewReviewCreated(review))
	return nil
}

// ListByMovie returns a movie's reviews, optionally thinned by a strict
// rating > minRating filter. An empty result set is NotFound; this layer
// does not distinguish a missing movie from a reviewless one.
func (s *ReviewService) ListByMovie(ctx context.Context, movieID int, minRating string) ([]reviews.Review, error) {
	plan, err := reviews.Compile(movieID, reviews.QueryParams{MinRating: minRating})
	if err != nil {
		return nil, err
	}
	return s.execute(ctx, "ListByMovie", plan)
}

// ListByMovieQualifier resolves the ambiguous qualifier segment and
// returns the matching reviews for the movie
func (s *ReviewService) ListByMovieQualifier(ctx context.Context, movieID int, segment string) ([]reviews.Review, error) {
	qualifier, err := reviews.ResolveQualifier(segment)
	if err != nil {
		return nil, err
	}
	plan := qualifier.Apply(reviews.NewPlan(movieID))
	return s.execute(ctx, "ListByMovieQualifier", plan)
}

// ListByReviewer returns one reviewer's reviews across all movies
func (s *ReviewService) ListByReviewer(ctx context.Context, reviewerName string) ([]reviews.Review, error) {
	if reviewerName == "" {
		return nil, errors.NewValidationError("reviewer name is required")
	}

	start := time.Now()
	items, err := s.repo.ScanByReviewer(ctx, reviewerName)
	s.metrics.RecordOperation(ctx, "ListByReviewer", time.Since(start), err == nil)
	if err != nil {
		s.logger.Error("failed to scan reviews by reviewer",
			zap.String("reviewer", reviewerName),
			zap.Error(err),
		)
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.NewNotFoundError("reviews")
	}
	return items, nil
}

// ListAll returns every review in the store
func (s *ReviewService) ListAll(ctx context.Context) ([]reviews.Review, error) {
	start := time.Now()
	items, err := s.repo.ScanAll(ctx)
	s.metrics.RecordOperation(ctx, "ListAllReviews", time.Since(start), err == nil)
	if err != nil {
		s.logger.Error("failed to scan reviews", zap.Error(err))
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.NewNotFoundError("reviews")
	}
	return items, nil
}

// Update overwrites content and rating for the movie's review record and
// returns the updated attributes. Repeating an identical update leaves
// the stored state unchanged.
func (s *ReviewService) Update(ctx context.Context, movieID int, patch reviews.ReviewPatch) (*reviews.ReviewPatch, error) {
	if fields, err := utils.CheckStruct(patch); err != nil {
		return nil, errors.NewSchemaViolationError(fields).WithCause(err)
	}

	start := time.Now()
	updated, err := s.repo.Update(ctx, movieID, patch)
	s.metrics.RecordOperation(ctx, "UpdateReview", time.Since(start), err == nil)
	if err != nil {
		if !errors.IsNotFound(err) {
			s.logger.Error("failed to update review",
				zap.Int("movieId", movieID),
				zap.Error(err),
			)
		}
		return nil, err
	}

	s.publish(ctx, events.NewReviewUpdated(movieID, patch.Rating))
	return updated, nil
}

// execute runs a compiled plan and applies the empty-set policy
func (s *ReviewService) execute(ctx context.Context, op string, plan reviews.Plan) ([]reviews.Review, error) {
	start := time.Now()
	items, err := s.repo.QueryPlan(ctx, plan)
	s.metrics.RecordOperation(ctx, op, time.Since(start), err == nil)
	if err != nil {
		s.logger.Error("review query failed",
			zap.Int("movieId", plan.MovieID()),
			zap.Error(err),
		)
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.NewNotFoundError("reviews")
	}
	return items, nil
}

// publish delivers a domain event best effort; delivery failures are
// logged and never surfaced to the caller.
func (s *ReviewService) publish(ctx context.Context, event events.DomainEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish domain event",
			zap.String("eventType", event.GetEventType()),
			zap.Error(err),
		)
	}
}
