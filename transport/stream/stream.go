// Package stream consumes the booking events topic and records each booking
// event in the activity trail.
package stream

import (
	"catering/config"
	"catering/infras/kafka"
	"catering/infras/otel"
	activityDto "catering/internal/domains/activity/model/dto"
	activityService "catering/internal/domains/activity/service"
	"catering/internal/domains/notification"
	"catering/shared/constant"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// activityNamespace seeds the name based ids of activity rows.
var activityNamespace = uuid.MustParse("6f1c2d4e-9a7b-4c3d-8e5f-0a1b2c3d4e5f")

type Consumer struct {
	cfg      *config.Config
	client   kafka.Client
	activity activityService.Activity
	otel     otel.Otel
}

func New(cfg *config.Config, client kafka.Client, activity activityService.Activity, otel otel.Otel) *Consumer {
	return &Consumer{
		cfg:      cfg,
		client:   client,
		activity: activity,
		otel:     otel,
	}
}

// Run blocks until ctx is cancelled. With Kafka disabled it returns at once.
func (c *Consumer) Run(ctx context.Context) error {
	if !c.cfg.Kafka.Enable {
		log.Warn().Msg("kafka is disabled, booking activity consumer not started")

		return nil
	}

	if err := c.client.Consume(ctx, c.cfg.Kafka.ConsumerGroup, c.cfg.Kafka.Topic.BookingEvents, c.Handle); err != nil {
		return fmt.Errorf("booking activity consumer: %w", err)
	}

	return nil
}

// Handle records one stream message. Malformed records are logged and skipped.
func (c *Consumer) Handle(ctx context.Context, msg kafkaGo.Message) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".activity.Handle")
	defer scope.End()
	defer scope.TraceIfError(err)

	envelope, err := kafka.Decode[notification.Envelope](msg)
	if err != nil {
		log.Warn().Err(err).Int64("offset", msg.Offset).Msg("skipping undecodable booking event")

		return nil
	}

	if envelope.Event == "" {
		envelope.Event = kafka.EventOf(msg)
	}

	err = c.activity.Record(ctx, ActivityID(msg), envelope)
	if errors.Is(err, activityDto.ErrMissingBooking) {
		log.Warn().Str("event", envelope.Event).Int64("offset", msg.Offset).Msg("skipping booking event without booking id")

		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to record booking activity: %w", err)
	}

	return nil
}

// ActivityID derives a stable id from the record position, so a redelivered
// message maps onto the row it already produced.
func ActivityID(msg kafkaGo.Message) string {
	return uuid.NewSHA1(activityNamespace, fmt.Appendf(nil, "%s/%d/%d", msg.Topic, msg.Partition, msg.Offset)).String()
}

// Close releases the kafka client and flushes buffered spans.
func (c *Consumer) Close(ctx context.Context) error {
	return errors.Join(c.client.Close(), c.otel.Shutdown(ctx))
}
