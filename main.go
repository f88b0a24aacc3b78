package main

import (
	"fmt"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"clinic-app-server/internal/config"
	"clinic-app-server/internal/routes"
	"clinic-app-server/internal/storage"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// Load environment variables; a missing .env is fine in containers.
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}

	backend, err := openBackend(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("error opening storage backend")
	}
	store := storage.New(backend)

	// Initialize default data for any absent collection.
	if err := storage.Seed(store); err != nil {
		log.Fatal().Err(err).Msg("error seeding storage")
	}

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	routes.SetupRoutes(router, store, cfg, log)

	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("port", cfg.Port).Str("storage", cfg.Storage.Driver).Msg("server running")
	if err := router.Run(serverAddr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

func openBackend(cfg config.StorageConfig) (storage.Backend, error) {
	switch cfg.Driver {
	case "memory":
		return storage.NewMemoryBackend(), nil
	case "file":
		return storage.NewFileBackend(cfg.DataDir)
	case "mysql":
		return storage.OpenGorm(cfg.DSN)
	case "redis":
		return storage.OpenRedis(cfg.RedisAddr)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
