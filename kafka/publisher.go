package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/blog-platform/pkg/logger"
)

// Publisher wraps a Kafka producer for blog lifecycle events
type Publisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return &Publisher{producer: producer, brokers: brokers}, nil
}

// PublishBlogCreated publishes a blog.created event with tracing
func (p *Publisher) PublishBlogCreated(ctx context.Context, event BlogCreatedEvent) error {
	event.EventType = EventTypeBlogCreated
	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}
	event.Timestamp = time.Now()

	return p.publish(ctx, event.EventType, event.EventID, event.BlogID, event)
}

// PublishBlogDeleted publishes a blog.deleted event with tracing
func (p *Publisher) PublishBlogDeleted(ctx context.Context, event BlogDeletedEvent) error {
	event.EventType = EventTypeBlogDeleted
	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}
	event.Timestamp = time.Now()

	return p.publish(ctx, event.EventType, event.EventID, event.BlogID, event)
}

func (p *Publisher) publish(ctx context.Context, eventType, eventID string, blogID uint, payload interface{}) error {
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish."+eventType,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", TopicBlogLifecycle),
			attribute.String("event.type", eventType),
			attribute.String("event.id", eventID),
			attribute.Int64("blog.id", int64(blogID)),
		),
	)
	defer span.End()

	eventBytes, err := json.Marshal(payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Propagate trace context through message headers
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(eventType)},
		{Key: []byte("event_id"), Value: []byte(eventID)},
	}
	for key, value := range carrier {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte(key),
			Value: []byte(value),
		})
	}

	msg := &sarama.ProducerMessage{
		Topic:   TopicBlogLifecycle,
		Key:     sarama.StringEncoder(fmt.Sprintf("blog_%d", blogID)),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Error(ctx).
			Err(err).
			Str("topic", TopicBlogLifecycle).
			Str("event_type", eventType).
			Uint("blog_id", blogID).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	span.SetStatus(codes.Ok, "Event published")

	logger.Info(ctx).
		Str("event_id", eventID).
		Str("event_type", eventType).
		Str("topic", TopicBlogLifecycle).
		Int32("partition", partition).
		Int64("offset", offset).
		Uint("blog_id", blogID).
		Msg("Blog lifecycle event published")

	return nil
}

// Close closes the Kafka producer
func (p *Publisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
