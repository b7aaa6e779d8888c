package events

import (
	"strconv"
	"time"

	"moviedb-backend/domain/reviews"

	"github.com/google/uuid"
)

// Source identifies this service on the event bus
const Source = "moviedb.reviews"

// DomainEvent is the base interface for all domain events
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
}

// BaseEvent provides common event fields
type BaseEvent struct {
	EventID     string    `json:"event_id"`
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }

// ReviewCreated is raised after a review is written to the store
type ReviewCreated struct {
	BaseEvent
	MovieID      int    `json:"movie_id"`
	ReviewerName string `json:"reviewer_name"`
	Rating       int    `json:"rating"`
}

// NewReviewCreated creates a ReviewCreated event
func NewReviewCreated(r reviews.Review) ReviewCreated {
	return ReviewCreated{
		BaseEvent: BaseEvent{
			EventID:     uuid.New().String(),
			AggregateID: strconv.Itoa(r.MovieID),
			EventType:   "review.created",
			Timestamp:   time.Now().UTC(),
		},
		MovieID:      r.MovieID,
		ReviewerName: r.ReviewerName,
		Rating:       r.Rating,
	}
}

// ReviewUpdated is raised after a review's content or rating changes
type ReviewUpdated struct {
	BaseEvent
	MovieID int `json:"movie_id"`
	Rating  int `json:"rating"`
}

// NewReviewUpdated creates a ReviewUpdated event
func NewReviewUpdated(movieID, rating int) ReviewUpdated {
	return ReviewUpdated{
		BaseEvent: BaseEvent{
			EventID:     uuid.New().String(),
			AggregateID: strconv.Itoa(movieID),
			EventType:   "review.updated",
			Timestamp:   time.Now().UTC(),
		},
		MovieID: movieID,
		Rating:  rating,
	}
}
