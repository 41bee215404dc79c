package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/focusnest/docker-server/internal/config"
	"github.com/focusnest/docker-server/internal/httpapi"
	"github.com/focusnest/docker-server/internal/logging"
	sharedserver "github.com/focusnest/docker-server/internal/server"
)

func main() {
	ctx := context.Background()

	// Values already present in the environment take precedence over .env.
	envFileErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("config error: %w", err))
	}

	logger := logging.NewLogger(httpapi.ServiceName, cfg.Debug)
	if envFileErr != nil {
		logger.Debug("no .env file loaded, using process environment", slog.String("reason", envFileErr.Error()))
	}

	handler := httpapi.NewHandler(logger)
	router := sharedserver.NewRouter(httpapi.ServiceName, logger, func(r chi.Router) {
		handler.RegisterRoutes(r)
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	if err := sharedserver.Run(ctx, srv, logger, cfg.ShutdownTimeout); err != nil {
		logger.Error("server failed", slog.String("addr", srv.Addr), slog.String("err", err.Error()))
		os.Exit(1)
	}
}
