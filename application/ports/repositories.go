package ports

import (
	"context"

	"moviedb-backend/domain/catalog"
	"moviedb-backend/domain/events"
	"moviedb-backend/domain/reviews"
)

// ReviewRepository is the store boundary for review records
type ReviewRepository interface {
	// Create writes the full record unconditionally (last write wins)
	Create(ctx context.Context, review reviews.Review) error

	// QueryPlan executes a compiled partition query with its filters
	QueryPlan(ctx context.Context, plan reviews.Plan) ([]reviews.Review, error)

	// ScanByReviewer filters every partition for one reviewer's reviews.
	// Cost is O(total reviews); reviewer is not a partition key.
	ScanByReviewer(ctx context.Context, reviewerName string) ([]reviews.Review, error)

	// ScanAll returns every review in the store
	ScanAll(ctx context.Context) ([]reviews.Review, error)

	// Update overwrites content and rating for the record keyed by movie
	// ID alone and returns the updated attribute set
	Update(ctx context.Context, movieID int, patch reviews.ReviewPatch) (*reviews.ReviewPatch, error)
}

// MovieRepository is the store boundary for the movie catalogue
type MovieRepository interface {
	GetByID(ctx context.Context, id int) (*catalog.Movie, error)
	List(ctx context.Context) ([]catalog.Movie, error)
	Create(ctx context.Context, movie catalog.Movie) error
	Delete(ctx context.Context, id int) error
	QueryCast(ctx context.Context, q catalog.CastQuery) ([]catalog.CastMember, error)
}

// EventPublisher delivers domain events to the bus
type EventPublisher interface {
	Publish(ctx context.Context, event events.DomainEvent) error
	PublishBatch(ctx context.Context, events []events.DomainEvent) error
}
