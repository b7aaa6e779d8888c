package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"moviedb-backend/application/ports"
	"moviedb-backend/domain/reviews"
	apperrors "moviedb-backend/pkg/errors"
	"moviedb-backend/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// ReviewRepository implements the review store on DynamoDB. The table
// partitions on MovieId; filter predicates thin the result set after
// partition selection.
type ReviewRepository struct {
	client    *dynamodb.Client
	tableName string
	tracer    *observability.Tracer
	logger    *zap.Logger
}

// NewReviewRepository creates a review repository
func NewReviewRepository(client *dynamodb.Client, tableName string, tracer *observability.Tracer, logger *zap.Logger) ports.ReviewRepository {
	return &ReviewRepository{
		client:    client,
		tableName: tableName,
		tracer:    tracer,
		logger:    logger,
	}
}

// Create writes the full record unconditionally: identical identities
// race at last write wins, no concurrency token is held.
func (r *ReviewRepository) Create(ctx context.Context, review reviews.Review) error {
	item, err := attributevalue.MarshalMap(review)
	if err != nil {
		return apperrors.NewInternalError("failed to marshal review").WithCause(err)
	}

	err = r.tracer.Capture(ctx, "PutReview", func(ctx context.Context) error {
		_, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item:      item,
		})
		return err
	})
	if err != nil {
		r.logger.Error("failed to put review",
			zap.Int("movieId", review.MovieID),
			zap.Error(err),
		)
		return apperrors.NewStoreError("put review", err)
	}

	r.logger.Debug("review written",
		zap.Int("movieId", review.MovieID),
		zap.String("reviewer", review.ReviewerName),
	)
	return nil
}

// QueryPlan executes a compiled plan against the movie's partition,
// following pagination until the partition is exhausted.
func (r *ReviewRepository) QueryPlan(ctx context.Context, plan reviews.Plan) ([]reviews.Review, error) {
	expr, err := renderPlan(plan)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build review query").WithCause(err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	var items []reviews.Review
	err = r.tracer.Capture(ctx, "QueryReviews", func(ctx context.Context) error {
		for {
			out, err := r.client.Query(ctx, input)
			if err != nil {
				return err
			}
			var page []reviews.Review
			if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
				return fmt.Errorf("failed to unmarshal reviews: %w", err)
			}
			items = append(items, page...)
			if out.LastEvaluatedKey == nil {
				return nil
			}
			input.ExclusiveStartKey = out.LastEvaluatedKey
		}
	})
	if err != nil {
		r.logger.Error("review query failed",
			zap.Int("movieId", plan.MovieID()),
			zap.Error(err),
		)
		return nil, apperrors.NewStoreError("query reviews", err)
	}

	return items, nil
}

// ScanByReviewer walks the whole table filtering on the reviewer name.
// There is no partition key to narrow by; this is the known-expensive
// path.
func (r *ReviewRepository) ScanByReviewer(ctx context.Context, reviewerName string) ([]reviews.Review, error) {
	filter := expression.Name(reviews.AttrReviewerName).Equal(expression.Value(reviewerName))
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build reviewer scan").WithCause(err)
	}
	return r.scan(ctx, &expr)
}

// ScanAll returns every review in the table
func (r *ReviewRepository) ScanAll(ctx context.Context) ([]reviews.Review, error) {
	return r.scan(ctx, nil)
}

func (r *ReviewRepository) scan(ctx context.Context, expr *expression.Expression) ([]reviews.Review, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if expr != nil {
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	var items []reviews.Review
	err := r.tracer.Capture(ctx, "ScanReviews", func(ctx context.Context) error {
		for {
			out, err := r.client.Scan(ctx, input)
			if err != nil {
				return err
			}
			var page []reviews.Review
			if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
				return fmt.Errorf("failed to unmarshal reviews: %w", err)
			}
			items = append(items, page...)
			if out.LastEvaluatedKey == nil {
				return nil
			}
			input.ExclusiveStartKey = out.LastEvaluatedKey
		}
	})
	if err != nil {
		r.logger.Error("review scan failed", zap.Error(err))
		return nil, apperrors.NewStoreError("scan reviews", err)
	}

	return items, nil
}

// Update overwrites content and rating for the record keyed by MovieId
// alone; the table's key schema makes one review per movie addressable
// this way. Missing records fail the existence condition and surface as
// NotFound.
func (r *ReviewRepository) Update(ctx context.Context, movieID int, patch reviews.ReviewPatch) (*reviews.ReviewPatch, error) {
	update := expression.
		Set(expression.Name(reviews.AttrContent), expression.Value(patch.Content)).
		Set(expression.Name(reviews.AttrRating), expression.Value(patch.Rating))
	cond := expression.AttributeExists(expression.Name(reviews.AttrMovieID))

	expr, err := expression.NewBuilder().WithUpdate(update).WithCondition(cond).Build()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build review update").WithCause(err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			reviews.AttrMovieID: &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", movieID)},
		},
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueUpdatedNew,
	}

	var out *dynamodb.UpdateItemOutput
	err = r.tracer.Capture(ctx, "UpdateReview", func(ctx context.Context) error {
		var err error
		out, err = r.client.UpdateItem(ctx, input)
		return err
	})
	if err != nil {
		var condFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condFailed) {
			return nil, apperrors.NewNotFoundError("review")
		}
		r.logger.Error("failed to update review",
			zap.Int("movieId", movieID),
			zap.Error(err),
		)
		return nil, apperrors.NewStoreError("update review", err)
	}

	var updated reviews.ReviewPatch
	if err := attributevalue.UnmarshalMap(out.Attributes, &updated); err != nil {
		return nil, apperrors.NewInternalError("failed to unmarshal updated review").WithCause(err)
	}
	return &updated, nil
}
