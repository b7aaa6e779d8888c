package dynamodb

import (
	"context"
	"fmt"

	"moviedb-backend/application/ports"
	"moviedb-backend/domain/catalog"
	apperrors "moviedb-backend/pkg/errors"
	"moviedb-backend/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// MovieRepository implements the catalogue store on DynamoDB: a Movies
// table keyed by id and a MovieCast table keyed by movieId + actorName
// with a local secondary index over roleName.
type MovieRepository struct {
	client        *dynamodb.Client
	moviesTable   string
	castTable     string
	castRoleIndex string
	tracer        *observability.Tracer
	logger        *zap.Logger
}

// NewMovieRepository creates a movie repository
func NewMovieRepository(client *dynamodb.Client, moviesTable, castTable, castRoleIndex string, tracer *observability.Tracer, logger *zap.Logger) ports.MovieRepository {
	return &MovieRepository{
		client:        client,
		moviesTable:   moviesTable,
		castTable:     castTable,
		castRoleIndex: castRoleIndex,
		tracer:        tracer,
		logger:        logger,
	}
}

// GetByID returns a movie by its id, or nil when absent
func (r *MovieRepository) GetByID(ctx context.Context, id int) (*catalog.Movie, error) {
	var out *dynamodb.GetItemOutput
	err := r.tracer.Capture(ctx, "GetMovie", func(ctx context.Context) error {
		var err error
		out, err = r.client.GetItem(ctx, &dynamodb.GetItemInput{
			TableName: aws.String(r.moviesTable),
			Key:       movieKey(id),
		})
		return err
	})
	if err != nil {
		r.logger.Error("failed to get movie", zap.Int("movieId", id), zap.Error(err))
		return nil, apperrors.NewStoreError("get movie", err)
	}
	if out.Item == nil {
		return nil, nil
	}

	var movie catalog.Movie
	if err := attributevalue.UnmarshalMap(out.Item, &movie); err != nil {
		return nil, apperrors.NewInternalError("failed to unmarshal movie").WithCause(err)
	}
	return &movie, nil
}

// List returns the full catalogue
func (r *MovieRepository) List(ctx context.Context) ([]catalog.Movie, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.moviesTable)}

	var movies []catalog.Movie
	err := r.tracer.Capture(ctx, "ListMovies", func(ctx context.Context) error {
		for {
			out, err := r.client.Scan(ctx, input)
			if err != nil {
				return err
			}
			var page []catalog.Movie
			if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
				return fmt.Errorf("failed to unmarshal movies: %w", err)
			}
			movies = append(movies, page...)
			if out.LastEvaluatedKey == nil {
				return nil
			}
			input.ExclusiveStartKey = out.LastEvaluatedKey
		}
	})
	if err != nil {
		r.logger.Error("failed to list movies", zap.Error(err))
		return nil, apperrors.NewStoreError("list movies", err)
	}
	return movies, nil
}

// Create writes a catalogue entry, overwriting any existing record with
// the same id
func (r *MovieRepository) Create(ctx context.Context, movie catalog.Movie) error {
	item, err := attributevalue.MarshalMap(movie)
	if err != nil {
		return apperrors.NewInternalError("failed to marshal movie").WithCause(err)
	}

	err = r.tracer.Capture(ctx, "PutMovie", func(ctx context.Context) error {
		_, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.moviesTable),
			Item:      item,
		})
		return err
	})
	if err != nil {
		r.logger.Error("failed to put movie", zap.Int("movieId", movie.ID), zap.Error(err))
		return apperrors.NewStoreError("put movie", err)
	}
	return nil
}

// Delete removes a catalogue entry
func (r *MovieRepository) Delete(ctx context.Context, id int) error {
	err := r.tracer.Capture(ctx, "DeleteMovie", func(ctx context.Context) error {
		_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.moviesTable),
			Key:       movieKey(id),
		})
		return err
	})
	if err != nil {
		r.logger.Error("failed to delete movie", zap.Int("movieId", id), zap.Error(err))
		return apperrors.NewStoreError("delete movie", err)
	}
	return nil
}

// QueryCast queries a movie's cast. An actorName narrows the sort key by
// prefix; a roleName routes through the role index instead.
func (r *MovieRepository) QueryCast(ctx context.Context, q catalog.CastQuery) ([]catalog.CastMember, error) {
	keyCond := expression.Key("movieId").Equal(expression.Value(q.MovieID))

	var indexName *string
	switch {
	case q.RoleName != "":
		keyCond = keyCond.And(expression.Key("roleName").BeginsWith(q.RoleName))
		indexName = aws.String(r.castRoleIndex)
	case q.ActorName != "":
		keyCond = keyCond.And(expression.Key("actorName").BeginsWith(q.ActorName))
	}

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build cast query").WithCause(err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.castTable),
		IndexName:                 indexName,
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	var cast []catalog.CastMember
	err = r.tracer.Capture(ctx, "QueryCast", func(ctx context.Context) error {
		for {
			out, err := r.client.Query(ctx, input)
			if err != nil {
				return err
			}
			var page []catalog.CastMember
			if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
				return fmt.Errorf("failed to unmarshal cast: %w", err)
			}
			cast = append(cast, page...)
			if out.LastEvaluatedKey == nil {
				return nil
			}
			input.ExclusiveStartKey = out.LastEvaluatedKey
		}
	})
	if err != nil {
		r.logger.Error("cast query failed", zap.Int("movieId", q.MovieID), zap.Error(err))
		return nil, apperrors.NewStoreError("query cast", err)
	}
	return cast, nil
}

func movieKey(id int) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", id)},
	}
}
