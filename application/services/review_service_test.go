package services

import (
	"context"
	"strings"
	"testing"

	"moviedb-backend/application/ports"
	"moviedb-backend/domain/events"
	"moviedb-backend/domain/reviews"
	"moviedb-backend/pkg/errors"
	"moviedb-backend/pkg/observability"
	"moviedb-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeReviewRepo is an in-memory stand-in for the review store. It
// evaluates compiled plans with the same filter semantics the store
// renders into query expressions.
type fakeReviewRepo struct {
	items []reviews.Review
	fail  error
}

func (f *fakeReviewRepo) Create(ctx context.Context, review reviews.Review) error {
	if f.fail != nil {
		return f.fail
	}
	f.items = append(f.items, review)
	return nil
}

func (f *fakeReviewRepo) QueryPlan(ctx context.Context, plan reviews.Plan) ([]reviews.Review, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	var out []reviews.Review
	for _, item := range f.items {
		if item.MovieID != plan.MovieID() {
			continue
		}
		if matchesAll(item, plan.Predicates()) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) ScanByReviewer(ctx context.Context, reviewerName string) ([]reviews.Review, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	var out []reviews.Review
	for _, item := range f.items {
		if item.ReviewerName == reviewerName {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) ScanAll(ctx context.Context) ([]reviews.Review, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return f.items, nil
}

func (f *fakeReviewRepo) Update(ctx context.Context, movieID int, patch reviews.ReviewPatch) (*reviews.ReviewPatch, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	for i, item := range f.items {
		if item.MovieID == movieID {
			f.items[i].Content = patch.Content
			f.items[i].Rating = patch.Rating
			return &patch, nil
		}
	}
	return nil, errors.NewNotFoundError("review")
}

func matchesAll(item reviews.Review, preds []reviews.Predicate) bool {
	for _, pred := range preds {
		switch {
		case pred.Name == reviews.AttrRating && pred.Op == reviews.OpGreaterThan:
			if item.Rating <= pred.Value.(int) {
				return false
			}
		case pred.Name == reviews.AttrReviewerName && pred.Op == reviews.OpEqual:
			if item.ReviewerName != pred.Value.(string) {
				return false
			}
		case pred.Name == reviews.AttrReviewDate && pred.Op == reviews.OpBeginsWith:
			if !strings.HasPrefix(item.ReviewDate, pred.Value.(string)) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// fakePublisher records published events
type fakePublisher struct {
	published []events.DomainEvent
}

func (f *fakePublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	f.published = append(f.published, event)
	return nil
}

func (f *fakePublisher) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	f.published = append(f.published, batch...)
	return nil
}

var _ ports.ReviewRepository = (*fakeReviewRepo)(nil)
var _ ports.EventPublisher = (*fakePublisher)(nil)

func newService(repo *fakeReviewRepo) (*ReviewService, *fakePublisher) {
	publisher := &fakePublisher{}
	metrics := observability.NewMetrics("Test", nil)
	return NewReviewService(repo, publisher, metrics, zap.NewNop()), publisher
}

func validReview() reviews.Review {
	return reviews.Review{
		MovieID:      1234,
		ReviewerName: "Joe Bloggs",
		ReviewDate:   "2023-10-20",
		Content:      "Good enough.",
		Rating:       7,
	}
}

func TestReviewService_Add_Success(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc, publisher := newService(repo)

	err := svc.Add(context.Background(), validReview())

	require.NoError(t, err)
	require.Len(t, repo.items, 1)
	require.Len(t, publisher.published, 1)
	assert.Equal(t, "review.created", publisher.published[0].GetEventType())
}

func TestReviewService_Add_SchemaViolation(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc, _ := newService(repo)

	review := validReview()
	review.Content = ""
	review.Rating = 0

	err := svc.Add(context.Background(), review)

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.CodeSchemaViolation, appErr.Code)
	fields := appErr.Details["fields"].([]string)
	assert.Contains(t, fields, "content")
	assert.Contains(t, fields, "rating")
	// Nothing reached the store
	assert.Empty(t, repo.items)
}

func TestReviewService_Add_RatingOutOfRange(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc, _ := newService(repo)

	review := validReview()
	review.Rating = 11

	err := svc.Add(context.Background(), review)

	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Empty(t, repo.items)
}

func TestReviewService_Add_DefaultsReviewDate(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc, _ := newService(repo)

	review := validReview()
	review.ReviewDate = ""

	err := svc.Add(context.Background(), review)

	require.NoError(t, err)
	require.Len(t, repo.items, 1)
	assert.Equal(t, utils.TodayDate(), repo.items[0].ReviewDate)
}

func TestReviewService_ListByMovie_StrictMinRating(t *testing.T) {
	repo := &fakeReviewRepo{items: []reviews.Review{
		{MovieID: 1234, ReviewerName: "A", ReviewDate: "2023-01-01", Content: "x", Rating: 5},
		{MovieID: 1234, ReviewerName: "B", ReviewDate: "2023-01-02", Content: "y", Rating: 6},
		{MovieID: 9999, ReviewerName: "C", ReviewDate: "2023-01-03", Content: "z", Rating: 10},
	}}
	svc, _ := newService(repo)

	// Strictly greater: a review rated exactly minRating is excluded
	items, err := svc.ListByMovie(context.Background(), 1234, "5")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "B", items[0].ReviewerName)
}

func TestReviewService_ListByMovie_InvalidMinRating(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc, _ := newService(repo)

	_, err := svc.ListByMovie(context.Background(), 1234, "high")

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.CodeInvalidParameter, appErr.Code)
}

func TestReviewService_ListByMovie_EmptyIsNotFound(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc, _ := newService(repo)

	_, err := svc.ListByMovie(context.Background(), 1234, "")

	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestReviewService_ListByMovieQualifier_Year(t *testing.T) {
	repo := &fakeReviewRepo{items: []reviews.Review{
		{MovieID: 1234, ReviewerName: "A", ReviewDate: "2022-05-01", Content: "x", Rating: 5},
		{MovieID: 1234, ReviewerName: "B", ReviewDate: "2023-05-01", Content: "y", Rating: 6},
	}}
	svc, _ := newService(repo)

	items, err := svc.ListByMovieQualifier(context.Background(), 1234, "2023")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "B", items[0].ReviewerName)
}

func TestReviewService_ListByMovieQualifier_Reviewer(t *testing.T) {
	repo := &fakeReviewRepo{items: []reviews.Review{
		{MovieID: 1234, ReviewerName: "Joe Bloggs", ReviewDate: "2022-05-01", Content: "x", Rating: 5},
		{MovieID: 1234, ReviewerName: "Alice Broggs", ReviewDate: "2023-05-01", Content: "y", Rating: 6},
	}}
	svc, _ := newService(repo)

	items, err := svc.ListByMovieQualifier(context.Background(), 1234, "Joe Bloggs")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Joe Bloggs", items[0].ReviewerName)
}

func TestReviewService_ListByMovieQualifier_Missing(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc, _ := newService(repo)

	_, err := svc.ListByMovieQualifier(context.Background(), 1234, "")

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.CodeMissingQualifier, appErr.Code)
}

func TestReviewService_ListByReviewer_AcrossMovies(t *testing.T) {
	repo := &fakeReviewRepo{items: []reviews.Review{
		{MovieID: 1234, ReviewerName: "Joe Bloggs", ReviewDate: "2022-05-01", Content: "x", Rating: 5},
		{MovieID: 5678, ReviewerName: "Joe Bloggs", ReviewDate: "2023-05-01", Content: "y", Rating: 6},
		{MovieID: 5678, ReviewerName: "Alice Broggs", ReviewDate: "2023-06-01", Content: "z", Rating: 7},
	}}
	svc, _ := newService(repo)

	items, err := svc.ListByReviewer(context.Background(), "Joe Bloggs")

	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestReviewService_Update_Success(t *testing.T) {
	repo := &fakeReviewRepo{items: []reviews.Review{validReview()}}
	svc, publisher := newService(repo)

	patch := reviews.ReviewPatch{Content: "Changed my mind.", Rating: 9}
	updated, err := svc.Update(context.Background(), 1234, patch)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, patch, *updated)
	assert.Equal(t, 9, repo.items[0].Rating)
	require.Len(t, publisher.published, 1)
	assert.Equal(t, "review.updated", publisher.published[0].GetEventType())
}

func TestReviewService_Update_Idempotent(t *testing.T) {
	repo := &fakeReviewRepo{items: []reviews.Review{validReview()}}
	svc, _ := newService(repo)

	patch := reviews.ReviewPatch{Content: "Same text.", Rating: 8}

	first, err := svc.Update(context.Background(), 1234, patch)
	require.NoError(t, err)
	second, err := svc.Update(context.Background(), 1234, patch)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "Same text.", repo.items[0].Content)
}

func TestReviewService_Update_NotFound(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc, _ := newService(repo)

	_, err := svc.Update(context.Background(), 4242, reviews.ReviewPatch{Content: "x", Rating: 5})

	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestReviewService_Update_SchemaViolation(t *testing.T) {
	repo := &fakeReviewRepo{items: []reviews.Review{validReview()}}
	svc, _ := newService(repo)

	_, err := svc.Update(context.Background(), 1234, reviews.ReviewPatch{Content: "", Rating: 0})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.CodeSchemaViolation, appErr.Code)
	// The stored record is untouched
	assert.Equal(t, "Good enough.", repo.items[0].Content)
}
