package http

import (
	"catering/config"
	"catering/infras/kafka"
	"catering/infras/otel"
	"catering/infras/postgres"
	"catering/infras/websocket"
	"catering/internal/domains/notification"
	"catering/shared/constant"
	"catering/shared/metrics"
	"catering/transport/http/middleware"
	"catering/transport/http/response"
	"catering/transport/http/router"
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	// swagger spec registration
	_ "catering/docs"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	readHeaderTimeout      = 10 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	Middleware middleware.AppMiddleware
	Hub        websocket.Hub
	Notifier   *notification.Fanout
	Stream     kafka.Client
	Otel       otel.Otel
	DB         *postgres.Connection

	state   atomic.Int32
	mux     *chi.Mux
	server  *http.Server
	stopHub context.CancelFunc
	once    sync.Once
}

func New(
	cfg *config.Config,
	r router.Router,
	appMiddleware middleware.AppMiddleware,
	hub websocket.Hub,
	notifier *notification.Fanout,
	stream kafka.Client,
	otel otel.Otel,
	db *postgres.Connection,
) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		Middleware: appMiddleware,
		Hub:        hub,
		Notifier:   notifier,
		Stream:     stream,
		Otel:       otel,
		DB:         db,
	}
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

// Serve blocks until the server has been shut down by SIGINT or SIGTERM.
func (h *HTTP) Serve() {
	h.setup()

	stopped := make(chan struct{})
	h.setupGracefulShutdown(stopped)

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	<-stopped
}

// Adaptor exposes the routes as a plain handler for serverless runtimes.
func (h *HTTP) Adaptor() http.HandlerFunc {
	h.setup()

	return h.mux.ServeHTTP
}

func (h *HTTP) setup() {
	h.once.Do(func() {
		hubCtx, cancel := context.WithCancel(context.Background())
		h.stopHub = cancel

		go h.Hub.Run(hubCtx)

		h.setupRoutes()
		h.state.Store(int32(ServerStateReady))
	})
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.mux.Use(chiMiddleware.RequestID, chiMiddleware.RealIP, chiMiddleware.Recoverer)

	if h.Config.Metrics.Enable {
		h.mux.Use(metrics.Middleware)
	}

	h.mux.Use(h.Middleware.CORS(), h.Middleware.Tracing, h.Middleware.RateLimit())

	h.mux.Get("/health", h.health)

	if h.Config.Metrics.Enable {
		h.mux.Handle(h.Config.Metrics.Path, metrics.Handler())
	}

	h.mux.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	h.Router.SetupRoutes(h.mux)
}

// health reports 503 as soon as shutdown starts so load balancers stop routing here.
func (h *HTTP) health(w http.ResponseWriter, _ *http.Request) {
	if h.State() != ServerStateReady {
		response.WithPreparingShutdown(w)

		return
	}

	response.WithMessage(w, http.StatusOK, constant.ResponseHealthy)
}

func (h *HTTP) setupGracefulShutdown(stopped chan struct{}) {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh, stopped)
}

func (h *HTTP) respondToSigterm(done chan os.Signal, stopped chan struct{}) {
	<-done

	defer close(stopped)

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		h.shutdown(defaultShutdownTimeout)

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.state.Store(int32(ServerStateInGracePeriod))

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.state.Store(int32(ServerStateInCleanupPeriod))

	timeout := time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	h.shutdown(timeout)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

// shutdown stops accepting requests, then drains in-flight notifications
// before closing the stream, tracer and database.
func (h *HTTP) shutdown(timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if h.server != nil {
		if err := h.server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("HTTP server did not shut down cleanly")
		}
	}

	if h.stopHub != nil {
		h.stopHub()
	}

	if err := h.Notifier.Wait(ctx); err != nil {
		log.Warn().Err(err).Msg("shutdown deadline reached before notifications drained")
	}

	if err := h.Stream.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close kafka client")
	}

	if err := h.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to flush traces")
	}

	if err := h.DB.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close database connections")
	}
}
