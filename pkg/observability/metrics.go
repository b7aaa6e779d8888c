package observability

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// MetricsAPI is the slice of the CloudWatch client the emitter needs
type MetricsAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Metrics emits per-operation latency and outcome counts to CloudWatch.
// Emission is best effort: a metrics failure never fails the operation.
type Metrics struct {
	client    MetricsAPI
	namespace string
}

// NewMetrics creates a metrics emitter
func NewMetrics(namespace string, client MetricsAPI) *Metrics {
	return &Metrics{
		client:    client,
		namespace: namespace,
	}
}

// RecordOperation records one store operation's duration and outcome
func (m *Metrics) RecordOperation(ctx context.Context, operation string, duration time.Duration, success bool) {
	if m == nil || m.client == nil {
		return
	}

	outcome := "Success"
	if !success {
		outcome = "Failure"
	}
	dims := []types.Dimension{
		{Name: aws.String("Operation"), Value: aws.String(operation)},
	}

	input := &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(m.namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String("OperationDuration"),
				Dimensions: dims,
				Unit:       types.StandardUnitMilliseconds,
				Value:      aws.Float64(float64(duration.Milliseconds())),
			},
			{
				MetricName: aws.String("Operation" + outcome),
				Dimensions: dims,
				Unit:       types.StandardUnitCount,
				Value:      aws.Float64(1),
			},
		},
	}

	// Fire and forget
	_, _ = m.client.PutMetricData(ctx, input)
}
