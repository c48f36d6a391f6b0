package main

import (
	"catering/config"
	"catering/di"
	"catering/shared/logger"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

const closeTimeout = 10 * time.Second

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := di.InitializeConsumer()

	log.Info().Str("topic", cfg.Kafka.Topic.BookingEvents).Msg("Starting booking activity consumer.")

	runErr := consumer.Run(ctx)
	if runErr != nil {
		log.Error().Err(runErr).Msg("booking activity consumer stopped")
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	if err := consumer.Close(closeCtx); err != nil {
		log.Error().Err(err).Msg("failed to close booking activity consumer")
	}

	if runErr != nil {
		os.Exit(1)
	}
}
