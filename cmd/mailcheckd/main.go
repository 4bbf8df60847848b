// mailcheckd serves the email address validation API.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/mailaddr/internal/checkapi"
	"github.com/dmitrymomot/mailaddr/internal/httpserver"
	"github.com/dmitrymomot/mailaddr/internal/logger"
)

func main() {
	// Missing .env is fine; real deployments configure through the
	// environment directly.
	_ = godotenv.Load()

	var cfg checkapi.Config
	if err := env.Parse(&cfg); err != nil {
		slog.Error("failed to parse configuration", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	slog.SetDefault(log)

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), checkapi.NewRouter(log, cfg)); err != nil {
		log.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}
