package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"techevents/config"
	delivery "techevents/internal/delivery/http"
	"techevents/internal/delivery/http/controllers"
	"techevents/internal/delivery/http/middleware"
	"techevents/internal/repository/mongodb"
	"techevents/internal/services"

	_ "techevents/docs"
)

const (
	startupTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
	serviceTimeout  = 10 * time.Second
)

// @title Tech Events API
// @version 1.0.0
// @description RESTful API for managing tech event records.
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment)

	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	client, err := mongo.Connect(startupCtx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		logger.Error("connect to mongodb", "err", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.Error("disconnect mongodb", "err", err)
		}
	}()

	if err := client.Ping(startupCtx, readpref.Primary()); err != nil {
		logger.Error("mongodb ping", "err", err)
		os.Exit(1)
	}
	logger.Info("connected to mongodb", "database", cfg.DatabaseName)

	eventRepo := mongodb.NewEventRepository(client, cfg.DatabaseName)
	eventSvc := services.NewEventService(eventRepo, serviceTimeout)

	eventController := controllers.NewEventController(logger, eventSvc)
	healthController := controllers.NewHealthController(logger, eventSvc, config.APIName, config.APIVersion)

	mux := delivery.NewRouter(eventController, healthController)
	handler := middleware.Logging(logger, middleware.CORS(cfg.CORSOrigins, mux))

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		logger.Info("api listening", "addr", server.Addr, "env", cfg.Environment)
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	case <-stopCtx.Done():
		logger.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("shutdown", "err", err)
		}
	}
}
