// PassaQui API server.
//
// @title        PassaQui API
// @version      1.0
// @description  Ride and delivery sharing demo backend.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	_ "github.com/passaqui/passaqui-api/docs"
	"github.com/passaqui/passaqui-api/internal/api"
	"github.com/passaqui/passaqui-api/internal/infrastructure/db/mongo"
	"github.com/passaqui/passaqui-api/internal/pkg/config"
	"github.com/passaqui/passaqui-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// The store is a best-effort dependency: without it the server still
	// serves the static endpoints and reports the degraded state on /test.
	db := connectStore(ctx, cfg, log)

	e := api.NewRouter(db, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("passaqui api listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if db != nil {
		if err := db.Client().Disconnect(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}
}

// connectStore attempts the MongoDB connection and the unique-index setup.
// Any failure downgrades to a nil handle with a warning instead of aborting
// startup.
func connectStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) *mongodriver.Database {
	if !cfg.Database.Configured() {
		log.Warn().Msg("DATABASE_URL/DATABASE_NAME not set, starting without store")
		return nil
	}

	_, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Database.URL,
		Database: cfg.Database.Name,
	})
	if err != nil {
		log.Warn().Err(err).Msg("store unreachable, starting degraded")
		return nil
	}

	if err := mongo.EnsureUserIndexes(ctx, db); err != nil {
		log.Warn().Err(err).Msg("email unique index not ensured")
	}

	log.Info().Str("database", cfg.Database.Name).Msg("store connected")
	return db
}
