package stream_test

import (
	"context"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"catering/config"
	kafkaMocks "catering/infras/kafka/mocks"
	otelMocks "catering/infras/otel/mocks"
	activityDto "catering/internal/domains/activity/model/dto"
	activityMocks "catering/internal/domains/activity/service/mocks"
	"catering/internal/domains/notification"
	"catering/transport/stream"
)

func testConfig(enabled bool) *config.Config {
	cfg := &config.Config{}
	cfg.Kafka.Enable = enabled
	cfg.Kafka.ConsumerGroup = "catering-activity"
	cfg.Kafka.Topic.BookingEvents = "catering.booking-events"

	return cfg
}

func message(value string, offset int64, headers ...kafka.Header) kafka.Message {
	return kafka.Message{
		Topic:     "catering.booking-events",
		Partition: 2,
		Offset:    offset,
		Value:     []byte(value),
		Headers:   headers,
	}
}

func TestConsumer_Handle(t *testing.T) {
	tests := []struct {
		name      string
		msg       kafka.Message
		setupMock func(activity *activityMocks.MockActivity)
		wantErr   bool
	}{
		{
			name: "records the envelope under a position derived id",
			msg:  message(`{"event":"BOOKING_UPDATED","room":"admins","payload":{"id":"b-1","status":"confirmed"}}`, 41),
			setupMock: func(activity *activityMocks.MockActivity) {
				activity.EXPECT().
					Record(gomock.Any(), stream.ActivityID(message("", 41)), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, envelope notification.Envelope) error {
						assert.Equal(t, notification.EventBookingUpdated, envelope.Event)
						assert.JSONEq(t, `{"id":"b-1","status":"confirmed"}`, string(envelope.Payload))

						return nil
					})
			},
		},
		{
			name: "event header fills a missing event name",
			msg:  message(`{"payload":{"id":"b-2"}}`, 7, kafka.Header{Key: "event", Value: []byte(notification.EventBookingRequested)}),
			setupMock: func(activity *activityMocks.MockActivity) {
				activity.EXPECT().
					Record(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, envelope notification.Envelope) error {
						assert.Equal(t, notification.EventBookingRequested, envelope.Event)

						return nil
					})
			},
		},
		{
			name:      "undecodable value is skipped",
			msg:       message(`not json`, 8),
			setupMock: func(*activityMocks.MockActivity) {},
		},
		{
			name: "payload without booking id is skipped",
			msg:  message(`{"event":"BOOKING_UPDATED","payload":{}}`, 9),
			setupMock: func(activity *activityMocks.MockActivity) {
				activity.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).Return(activityDto.ErrMissingBooking)
			},
		},
		{
			name: "store failure is reported",
			msg:  message(`{"event":"BOOKING_UPDATED","payload":{"id":"b-3"}}`, 10),
			setupMock: func(activity *activityMocks.MockActivity) {
				activity.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			activity := activityMocks.NewMockActivity(ctrl)
			tt.setupMock(activity)

			consumer := stream.New(testConfig(true), kafkaMocks.NewMockClient(ctrl), activity, otelMocks.NewOtel())

			err := consumer.Handle(context.Background(), tt.msg)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestActivityID(t *testing.T) {
	first := stream.ActivityID(message("", 5))

	assert.Equal(t, first, stream.ActivityID(message(`{"other":"value"}`, 5)))
	assert.NotEqual(t, first, stream.ActivityID(message("", 6)))
	assert.Len(t, first, 36)
}

func TestConsumer_Run(t *testing.T) {
	t.Run("disabled stream never consumes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := kafkaMocks.NewMockClient(ctrl)

		consumer := stream.New(testConfig(false), client, activityMocks.NewMockActivity(ctrl), otelMocks.NewOtel())

		require.NoError(t, consumer.Run(context.Background()))
	})

	t.Run("consumes the booking events topic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := kafkaMocks.NewMockClient(ctrl)
		client.EXPECT().Consume(gomock.Any(), "catering-activity", "catering.booking-events", gomock.Any()).Return(nil)

		consumer := stream.New(testConfig(true), client, activityMocks.NewMockActivity(ctrl), otelMocks.NewOtel())

		require.NoError(t, consumer.Run(context.Background()))
	})
}

func TestConsumer_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)
	client.EXPECT().Close().Return(errors.New("broker gone"))

	consumer := stream.New(testConfig(true), client, activityMocks.NewMockActivity(ctrl), otelMocks.NewOtel())

	require.ErrorContains(t, consumer.Close(context.Background()), "broker gone")
}
