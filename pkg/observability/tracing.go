package observability

import (
	"context"

	"github.com/aws/aws-xray-sdk-go/xray"
)

// Tracer wraps store round-trips in X-Ray subsegments. Outside Lambda the
// tracer is disabled and calls pass straight through.
type Tracer struct {
	serviceName string
	enabled     bool
}

// NewTracer creates a tracer; enabled should only be set when an upstream
// segment exists (Lambda invocations).
func NewTracer(serviceName string, enabled bool) *Tracer {
	return &Tracer{serviceName: serviceName, enabled: enabled}
}

// Capture runs fn inside a subsegment named after the operation
func (t *Tracer) Capture(ctx context.Context, name string, fn func(context.Context) error) error {
	if t == nil || !t.enabled {
		return fn(ctx)
	}

	ctx, seg := xray.BeginSubsegment(ctx, t.serviceName+"."+name)
	err := fn(ctx)
	if seg != nil {
		seg.Close(err)
	}
	return err
}
