// Package notification delivers workflow events to connected admins and to the booking event stream.
package notification

//go:generate go run go.uber.org/mock/mockgen -source=./notification.go -destination=./mocks/notification_mock.go -package=mocks

import (
	"catering/config"
	"catering/infras/kafka"
	"catering/infras/websocket"
	"catering/shared/metrics"
	"catering/shared/timezone"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	EventBookingRequested = "BOOKING_REQUESTED"
	EventBookingUpdated   = "BOOKING_UPDATED"
	EventOrderCreated     = "ORDER_CREATED"

	ChannelRoom   = "room"
	ChannelStream = "stream"

	resultDelivered = "delivered"
	resultFailed    = "failed"
)

type Notifier interface {
	Notify(ctx context.Context, room, event string, payload any) error
}

// Keyed payloads choose the partition key of their stream record.
type Keyed interface {
	NotificationKey() string
}

// Envelope is the record written to the booking events topic.
type Envelope struct {
	Event      string          `json:"event"`
	Room       string          `json:"room"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurredAt"`
}

type RoomNotifier struct {
	hub websocket.Hub
}

func NewRoomNotifier(hub websocket.Hub) *RoomNotifier {
	return &RoomNotifier{hub: hub}
}

func (n *RoomNotifier) Notify(ctx context.Context, room, event string, payload any) error {
	if err := n.hub.Emit(ctx, room, event, payload); err != nil {
		return fmt.Errorf("failed to emit %s to room %s: %w", event, room, err)
	}

	return nil
}

type StreamNotifier struct {
	cfg    *config.Config
	client kafka.Client
}

func NewStreamNotifier(cfg *config.Config, client kafka.Client) *StreamNotifier {
	return &StreamNotifier{cfg: cfg, client: client}
}

// Notify is a no-op while Kafka is disabled.
func (n *StreamNotifier) Notify(ctx context.Context, room, event string, payload any) error {
	if !n.cfg.Kafka.Enable {
		return nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", event, err)
	}

	var key string
	if keyed, ok := payload.(Keyed); ok {
		key = keyed.NotificationKey()
	}

	message := kafka.Message{
		Key:   key,
		Event: event,
		Value: Envelope{
			Event:      event,
			Room:       room,
			Payload:    raw,
			OccurredAt: timezone.Now(),
		},
	}

	if err := n.client.Publish(ctx, n.cfg.Kafka.Topic.BookingEvents, message); err != nil {
		return fmt.Errorf("failed to publish %s: %w", event, err)
	}

	return nil
}

type channel struct {
	name     string
	notifier Notifier
}

// Fanout hands every event to each channel in its own goroutine and never reports their errors.
type Fanout struct {
	channels []channel
	wg       sync.WaitGroup
}

func NewFanout(channels map[string]Notifier) *Fanout {
	f := &Fanout{}
	for name, notifier := range channels {
		f.channels = append(f.channels, channel{name: name, notifier: notifier})
	}

	return f
}

// New builds the production fan-out: websocket rooms plus the Kafka stream.
func New(cfg *config.Config, hub websocket.Hub, client kafka.Client) *Fanout {
	return NewFanout(map[string]Notifier{
		ChannelRoom:   NewRoomNotifier(hub),
		ChannelStream: NewStreamNotifier(cfg, client),
	})
}

func (f *Fanout) Notify(ctx context.Context, room, event string, payload any) error {
	detached := context.WithoutCancel(ctx)

	for _, ch := range f.channels {
		f.wg.Add(1)

		go func() {
			defer f.wg.Done()

			if err := ch.notifier.Notify(detached, room, event, payload); err != nil {
				metrics.Notifications.WithLabelValues(event, ch.name, resultFailed).Inc()
				log.Warn().Err(err).Str("channel", ch.name).Str("room", room).Str("event", event).Msg("notification not delivered")

				return
			}

			metrics.Notifications.WithLabelValues(event, ch.name, resultDelivered).Inc()
		}()
	}

	return nil
}

// Wait blocks until every notification handed out so far has finished or ctx is done.
// Deliveries still running when ctx ends are abandoned.
func (f *Fanout) Wait(ctx context.Context) error {
	done := make(chan struct{})

	go func() {
		f.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("notifications still in flight: %w", ctx.Err())
	}
}
