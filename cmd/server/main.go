package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lumacast/lumacast/internal/bus"
	"github.com/lumacast/lumacast/internal/config"
	"github.com/lumacast/lumacast/internal/db"
	"github.com/lumacast/lumacast/internal/player"
	"github.com/lumacast/lumacast/internal/schedule"
	"github.com/lumacast/lumacast/internal/timecode"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := db.Init(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	store := db.NewStore(nil)

	// Event fan-out. Redis carries events across API instances; memory is
	// the single-process default.
	var eventBus bus.Bus
	switch cfg.BusBackend {
	case config.BusBackendRedis:
		eventBus = bus.NewRedisBus(cfg.RedisAddress, cfg.RedisUsername, cfg.RedisPassword)
		log.Info().Str("address", cfg.RedisAddress).Msg("using redis event bus")
	default:
		eventBus = bus.NewMemoryBus()
	}
	defer eventBus.Close()

	notifier := bus.NewNotifier(eventBus, store)
	if cfg.MQTTBrokerURL != "" {
		mirror, err := bus.NewMQTTMirror(cfg.MQTTBrokerURL, cfg.MQTTClientID)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect mqtt mirror")
		}
		defer mirror.Close()
		notifier = notifier.WithMirror(mirror)
		log.Info().Str("broker", cfg.MQTTBrokerURL).Msg("mirroring events to mqtt")
	}

	clocks := timecode.NewService(store)
	resolver := schedule.NewService(store)
	assembly := player.NewService(store, clocks)

	r := gin.Default()
	registerRoutes(r, store, eventBus, notifier, clocks, resolver, assembly)

	log.Info().Str("address", cfg.ServerAddress).Msg("server listening")
	if err := r.Run(cfg.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
