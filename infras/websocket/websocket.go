// Package websocket keeps named rooms of connected clients and pushes
// server events to every member of a room.
//
// Clients speak JSON frames of the form {"event": "...", "data": ...}.
// Inbound events are "join-room" and "leave-room" with the room name as data.
package websocket

//go:generate go run go.uber.org/mock/mockgen -source=./websocket.go -destination=./mocks/websocket_mock.go -package=mocks

import (
	"catering/config"
	"catering/infras/otel"
	"catering/shared/constant"
	"catering/shared/dto"
	"catering/shared/metrics"
	"catering/shared/role"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	EventJoinRoom  = "join-room"
	EventLeaveRoom = "leave-room"
	EventJoined    = "joined"
	EventLeft      = "left"
	EventError     = "error"

	errorForbidden   = "forbidden"
	errorRateLimited = "rate limit exceeded"
	errorMalformed   = "malformed frame"
	errorUnknown     = "unknown event"

	hubQueueSize = 256
)

var ErrHubClosed = errors.New("websocket hub is closed")

// Frame is the envelope of every message exchanged with a client.
type Frame struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

type inboundFrame struct {
	Event string `json:"event"`
	Data  string `json:"data"`
}

type Hub interface {
	Run(ctx context.Context)
	Serve(w http.ResponseWriter, r *http.Request, principal dto.Principal) error
	Emit(ctx context.Context, room, event string, data any) error
	Clients() int
}

type client struct {
	hub       *hub
	conn      *websocket.Conn
	principal dto.Principal
	send      chan []byte
	limiter   *rate.Limiter
}

type membership struct {
	client *client
	room   string
}

type notice struct {
	client *client
	event  string
	data   any
}

type delivery struct {
	room    string
	event   string
	payload []byte
}

type hub struct {
	cfg      *config.Config
	otel     otel.Otel
	upgrader websocket.Upgrader

	clients map[*client]struct{}
	rooms   map[string]map[*client]struct{}
	count   atomic.Int64

	register   chan *client
	unregister chan *client
	join       chan membership
	leave      chan membership
	broadcast  chan delivery
	direct     chan notice
	done       chan struct{}
}

func New(cfg *config.Config, otel otel.Otel) Hub {
	h := &hub{
		cfg:        cfg,
		otel:       otel,
		clients:    make(map[*client]struct{}),
		rooms:      make(map[string]map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		join:       make(chan membership),
		leave:      make(chan membership),
		broadcast:  make(chan delivery, hubQueueSize),
		direct:     make(chan notice),
		done:       make(chan struct{}),
	}

	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}

	return h
}

func (h *hub) checkOrigin(r *http.Request) bool {
	allowed := h.cfg.Notification.WebSocket.AllowedOrigins
	if len(allowed) == 0 || slices.Contains(allowed, constant.Asterix) {
		return true
	}

	return slices.Contains(allowed, r.Header.Get("Origin"))
}

// Run owns the room membership tables until ctx is cancelled.
func (h *hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}

			log.Info().Msg("websocket hub stopped")

			return

		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.count.Add(1)
			metrics.WebSocketConnections.Inc()

			log.Debug().Str("user_id", c.principal.ID).Int64("total", h.count.Load()).Msg("websocket client connected")

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
			}

		case m := <-h.join:
			if _, ok := h.clients[m.client]; !ok {
				continue
			}

			members, ok := h.rooms[m.room]
			if !ok {
				members = make(map[*client]struct{})
				h.rooms[m.room] = members
			}

			members[m.client] = struct{}{}
			m.client.frame(EventJoined, m.room)

		case m := <-h.leave:
			if _, ok := h.clients[m.client]; !ok {
				continue
			}

			h.removeFromRoom(m.client, m.room)
			m.client.frame(EventLeft, m.room)

		case n := <-h.direct:
			if _, ok := h.clients[n.client]; ok {
				n.client.frame(n.event, n.data)
			}

		case d := <-h.broadcast:
			for c := range h.rooms[d.room] {
				select {
				case c.send <- d.payload:
				default:
					log.Warn().Str("user_id", c.principal.ID).Str("event", d.event).Msg("websocket send buffer full, dropping frame")
				}
			}
		}
	}
}

func (h *hub) drop(c *client) {
	for room := range h.rooms {
		h.removeFromRoom(c, room)
	}

	delete(h.clients, c)
	close(c.send)

	h.count.Add(-1)
	metrics.WebSocketConnections.Dec()

	log.Debug().Str("user_id", c.principal.ID).Int64("total", h.count.Load()).Msg("websocket client disconnected")
}

func (h *hub) removeFromRoom(c *client, room string) {
	members, ok := h.rooms[room]
	if !ok {
		return
	}

	delete(members, c)

	if len(members) == 0 {
		delete(h.rooms, room)
	}
}

// Emit queues event for every member of room. Delivery is best effort.
func (h *hub) Emit(ctx context.Context, room, event string, data any) (err error) {
	_, scope := h.otel.NewScope(ctx, constant.OtelSocketScopeName, constant.OtelSocketScopeName+".Emit")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{"room": room, "event": event})

	payload, err := json.Marshal(Frame{Event: event, Data: data})
	if err != nil {
		return fmt.Errorf("failed to encode %s frame: %w", event, err)
	}

	select {
	case h.broadcast <- delivery{room: room, event: event, payload: payload}:
		return nil
	case <-h.done:
		return ErrHubClosed
	case <-ctx.Done():
		return ctx.Err() //nolint:wrapcheck
	}
}

func (h *hub) Clients() int {
	return int(h.count.Load())
}

// Serve upgrades the request and attaches the connection to the hub on behalf of principal.
func (h *hub) Serve(w http.ResponseWriter, r *http.Request, principal dto.Principal) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("failed to upgrade websocket: %w", err)
	}

	wsCfg := h.cfg.Notification.WebSocket

	perSecond := wsCfg.MessagesPerSecond
	if perSecond <= 0 {
		perSecond = 1
	}

	c := &client{
		hub:       h,
		conn:      conn,
		principal: principal,
		send:      make(chan []byte, max(wsCfg.SendBuffer, 1)),
		limiter:   rate.NewLimiter(rate.Limit(perSecond), max(int(perSecond), 1)),
	}

	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()

		return ErrHubClosed
	}

	go c.writePump()
	go c.readPump()

	return nil
}

func (h *hub) allowed(principal dto.Principal, room string) bool {
	if room == "" {
		return false
	}

	if room == h.cfg.Notification.AdminRoom {
		return principal.Is(role.Admin)
	}

	return true
}

func (h *hub) seconds(value, fallback int) time.Duration {
	if value <= 0 {
		value = fallback
	}

	return time.Duration(value) * time.Second
}

// frame queues a control frame for this client. Only the hub loop may call it.
func (c *client) frame(event string, data any) {
	payload, err := json.Marshal(Frame{Event: event, Data: data})
	if err != nil {
		return
	}

	select {
	case c.send <- payload:
	default:
	}
}

func (c *client) readPump() {
	h := c.hub
	pongWait := h.seconds(h.cfg.Notification.WebSocket.PongWaitSeconds, 60)

	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}

		c.conn.Close()
	}()

	if limit := h.cfg.Notification.WebSocket.MaxMessageBytes; limit > 0 {
		c.conn.SetReadLimit(limit)
	}

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Str("user_id", c.principal.ID).Msg("websocket closed unexpectedly")
			}

			return
		}

		if !c.limiter.Allow() {
			c.reply(errorRateLimited)

			continue
		}

		var in inboundFrame
		if err := json.Unmarshal(raw, &in); err != nil {
			c.reply(errorMalformed)

			continue
		}

		if !c.handle(in) {
			return
		}
	}
}

// handle routes one inbound frame; it reports false once the hub has stopped.
func (c *client) handle(in inboundFrame) bool {
	h := c.hub

	var target chan membership

	switch in.Event {
	case EventJoinRoom:
		if !h.allowed(c.principal, in.Data) {
			c.reply(errorForbidden)

			return true
		}

		target = h.join
	case EventLeaveRoom:
		target = h.leave
	default:
		c.reply(errorUnknown)

		return true
	}

	select {
	case target <- membership{client: c, room: in.Data}:
		return true
	case <-h.done:
		return false
	}
}

// reply hands an error frame to the hub, which owns the send buffer.
func (c *client) reply(message string) {
	select {
	case c.hub.direct <- notice{client: c, event: EventError, data: message}:
	case <-c.hub.done:
	}
}

func (c *client) writePump() {
	h := c.hub
	writeWait := h.seconds(h.cfg.Notification.WebSocket.WriteWaitSeconds, 10)
	pingPeriod := h.seconds(h.cfg.Notification.WebSocket.PongWaitSeconds, 60) * 9 / 10

	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))

			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))

			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
