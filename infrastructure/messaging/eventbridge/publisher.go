package eventbridge

import (
	"context"
	"encoding/json"
	"fmt"

	"moviedb-backend/application/ports"
	"moviedb-backend/domain/events"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"
)

// putEventsBatchSize is EventBridge's cap on entries per PutEvents call
const putEventsBatchSize = 10

// Publisher delivers review domain events to an EventBridge bus
type Publisher struct {
	client       *eventbridge.Client
	eventBusName string
	source       string
	logger       *zap.Logger
}

// NewPublisher creates an EventBridge publisher
func NewPublisher(client *eventbridge.Client, eventBusName string, logger *zap.Logger) ports.EventPublisher {
	return &Publisher{
		client:       client,
		eventBusName: eventBusName,
		source:       events.Source,
		logger:       logger,
	}
}

// Publish sends a single event
func (p *Publisher) Publish(ctx context.Context, event events.DomainEvent) error {
	return p.PublishBatch(ctx, []events.DomainEvent{event})
}

// PublishBatch sends events in chunks the bus accepts
func (p *Publisher) PublishBatch(ctx context.Context, domainEvents []events.DomainEvent) error {
	for i := 0; i < len(domainEvents); i += putEventsBatchSize {
		end := i + putEventsBatchSize
		if end > len(domainEvents) {
			end = len(domainEvents)
		}
		if err := p.putEvents(ctx, domainEvents[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (p *Publisher) putEvents(ctx context.Context, domainEvents []events.DomainEvent) error {
	entries := make([]types.PutEventsRequestEntry, 0, len(domainEvents))
	for _, event := range domainEvents {
		detail, err := json.Marshal(event)
		if err != nil {
			p.logger.Error("failed to marshal event",
				zap.String("eventType", event.GetEventType()),
				zap.Error(err),
			)
			continue
		}
		entries = append(entries, types.PutEventsRequestEntry{
			EventBusName: aws.String(p.eventBusName),
			Source:       aws.String(p.source),
			DetailType:   aws.String(event.GetEventType()),
			Detail:       aws.String(string(detail)),
			Time:         aws.Time(event.GetTimestamp()),
		})
	}
	if len(entries) == 0 {
		return nil
	}

	result, err := p.client.PutEvents(ctx, &eventbridge.PutEventsInput{Entries: entries})
	if err != nil {
		return fmt.Errorf("failed to publish events: %w", err)
	}

	if result.FailedEntryCount > 0 {
		for i, entry := range result.Entries {
			if entry.ErrorCode != nil {
				p.logger.Error("event delivery failed",
					zap.String("eventType", domainEvents[i].GetEventType()),
					zap.String("errorCode", aws.ToString(entry.ErrorCode)),
					zap.String("errorMessage", aws.ToString(entry.ErrorMessage)),
				)
			}
		}
		return fmt.Errorf("%d events failed to publish", result.FailedEntryCount)
	}
	return nil
}
