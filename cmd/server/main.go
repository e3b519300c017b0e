package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contentshop/internal/common"
	"contentshop/internal/config"
	"contentshop/internal/di"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const storySweepInterval = 10 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	app, err := di.InitializeApplication(cfg)
	if err != nil {
		os.Stderr.WriteString("startup: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := app.Logger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.ContentService.StartStorySweeper(ctx, storySweepInterval)

	router := mux.NewRouter()
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		common.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Public routes see claims when a token is sent but never require one.
	public := router.NewRoute().Subrouter()
	public.Use(common.OptionalAuthMiddleware(app.Tokens), common.RequestLogger(logger))
	app.Users.RegisterPublic(public)
	app.Contents.RegisterPublic(public)
	app.Files.RegisterPublic(public)
	app.Recs.RegisterPublic(public)
	app.Shop.RegisterPublic(public)

	protected := router.NewRoute().Subrouter()
	protected.Use(common.AuthMiddleware(app.Tokens), common.RequestLogger(logger))
	app.Users.RegisterProtected(protected)
	app.Contents.RegisterProtected(protected)
	app.Files.RegisterProtected(protected)
	app.Recs.RegisterProtected(protected)
	app.Shop.RegisterProtected(protected)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info().
			Str("addr", server.Addr).
			Str("environment", cfg.Server.Environment).
			Bool("payments", cfg.Payment.Enabled).
			Bool("ai_scoring", cfg.Scoring.Enabled).
			Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown")
	}
	if err := app.Mongo.Close(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("mongo close")
	}
	logger.Info().Msg("stopped")
}
