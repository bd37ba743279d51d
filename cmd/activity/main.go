package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"todoboard/config"
	"todoboard/di"
	"todoboard/internal/domains/activity"
	"todoboard/shared/logger"

	"github.com/rs/zerolog/log"
)

// Tails the board activity topic and logs every event.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if !cfg.Kafka.Enable {
		log.Fatal().Msg("KAFKA_ENABLE is false, nothing to listen to")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("topic", cfg.Kafka.Topic).Msg("Listening for board activity")

	activity.Listen(ctx, di.InitializeActivityListener(), cfg, func(event activity.Event) {
		log.Info().
			Str("type", string(event.Type)).
			Str("todo_id", event.TodoID).
			Str("username", event.Username).
			Time("at", event.At).
			Msg("board activity")
	})
}
