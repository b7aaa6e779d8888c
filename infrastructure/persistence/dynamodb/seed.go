package dynamodb

import (
	"context"
	"fmt"
	"time"

	"moviedb-backend/domain/catalog"
	"moviedb-backend/domain/reviews"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// maxBatchSize is the store-imposed cap on items per batch write
const maxBatchSize = 25

// unprocessedRetries bounds the retry loop for throttled batch writes
const unprocessedRetries = 3

// BatchWriter is the slice of the DynamoDB client the seed loader needs
type BatchWriter interface {
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// Dataset is the initial catalogue and review data to load
type Dataset struct {
	Movies  []catalog.Movie
	Cast    []catalog.CastMember
	Reviews []reviews.Review
}

// SeedTables names the destination tables for a seed run
type SeedTables struct {
	Movies  string
	Cast    string
	Reviews string
}

// SeedLoader bulk-loads the initial dataset. Every write is a full-item
// overwrite keyed by the record's natural key, so re-running the loader
// against a seeded store is a no-op in effect. Each batch commits
// independently; a failure partway leaves earlier batches in place.
type SeedLoader struct {
	client BatchWriter
	logger *zap.Logger
}

// NewSeedLoader creates a seed loader
func NewSeedLoader(client BatchWriter, logger *zap.Logger) *SeedLoader {
	return &SeedLoader{client: client, logger: logger}
}

// Load writes the dataset into the given tables in batches of at most 25
func (l *SeedLoader) Load(ctx context.Context, tables SeedTables, ds Dataset) error {
	type tableLoad struct {
		table string
		items []interface{}
	}
	loads := []tableLoad{
		{tables.Movies, asItems(ds.Movies)},
		{tables.Cast, asItems(ds.Cast)},
		{tables.Reviews, asItems(ds.Reviews)},
	}

	for _, load := range loads {
		if len(load.items) == 0 {
			continue
		}
		requests, err := marshalPutRequests(load.items)
		if err != nil {
			return fmt.Errorf("failed to marshal seed items for %s: %w", load.table, err)
		}
		for _, batch := range chunkRequests(requests, maxBatchSize) {
			if err := l.writeBatch(ctx, load.table, batch); err != nil {
				return fmt.Errorf("seed batch for %s failed: %w", load.table, err)
			}
		}
		l.logger.Info("seeded table",
			zap.String("table", load.table),
			zap.Int("items", len(requests)),
		)
	}
	return nil
}

// writeBatch issues one batch and retries unprocessed items with backoff
func (l *SeedLoader) writeBatch(ctx context.Context, table string, batch []types.WriteRequest) error {
	pending := map[string][]types.WriteRequest{table: batch}

	for attempt := 0; ; attempt++ {
		out, err := l.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: pending,
		})
		if err != nil {
			return err
		}
		if len(out.UnprocessedItems) == 0 {
			return nil
		}
		if attempt >= unprocessedRetries {
			return fmt.Errorf("%d items unprocessed after %d attempts", countRequests(out.UnprocessedItems), attempt+1)
		}

		l.logger.Warn("retrying unprocessed seed items",
			zap.String("table", table),
			zap.Int("remaining", countRequests(out.UnprocessedItems)),
		)
		pending = out.UnprocessedItems

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt+1) * 100 * time.Millisecond):
		}
	}
}

func marshalPutRequests(items []interface{}) ([]types.WriteRequest, error) {
	requests := make([]types.WriteRequest, 0, len(items))
	for _, item := range items {
		av, err := attributevalue.MarshalMap(item)
		if err != nil {
			return nil, err
		}
		requests = append(requests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: av},
		})
	}
	return requests, nil
}

// chunkRequests splits requests into slices no longer than size
func chunkRequests(requests []types.WriteRequest, size int) [][]types.WriteRequest {
	var chunks [][]types.WriteRequest
	for len(requests) > 0 {
		n := size
		if len(requests) < n {
			n = len(requests)
		}
		chunks = append(chunks, requests[:n])
		requests = requests[n:]
	}
	return chunks
}

func countRequests(m map[string][]types.WriteRequest) int {
	total := 0
	for _, reqs := range m {
		total += len(reqs)
	}
	return total
}

func asItems[T any](in []T) []interface{} {
	out := make([]interface{}, len(in))
	for i := range in {
		out[i] = in[i]
	}
	return out
}
