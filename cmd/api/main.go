package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"dhl-tracker/internal/core/config"
	"dhl-tracker/internal/core/logger"
	"dhl-tracker/internal/core/server"
	trackingadapter "dhl-tracker/internal/features/tracking/adapters"
	trackinghandler "dhl-tracker/internal/features/tracking/handler"
	"dhl-tracker/internal/features/tracking/ports"
	trackingservice "dhl-tracker/internal/features/tracking/service"

	"go.uber.org/zap"
)

// @title DHL Tracker API
// @version 1.0
// @description This API exposes DHL parcel tracking status parsed from the public tracking page.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var logOpts []logger.Option
	if cfg.Log.File != "" {
		logOpts = append(logOpts, logger.WithFile(logger.FileOptions{
			Path:       cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
		}))
	}
	if err := logger.Init(cfg.Environment, cfg.Log.Level, logOpts...); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.Log.Level),
		zap.String("fetcher", cfg.DHL.Fetcher),
	)

	// Page fetcher
	var fetcher ports.PageFetcher
	switch cfg.DHL.Fetcher {
	case "browser":
		fetcher = trackingadapter.NewBrowserFetcher(cfg.DHL.Timeout(), cfg.Proxy.Settings())
	default:
		fetcher = trackingadapter.NewHTTPFetcher(cfg.DHL.Timeout(), cfg.Proxy.Settings())
	}

	dhlAdapter := trackingadapter.NewDHLAdapter(cfg.DHL.TrackingURL, cfg.DHL.Language, cfg.DHL.Domain, fetcher)

	trackingSvc := trackingservice.NewTrackingService([]ports.TrackingProvider{dhlAdapter})
	trackingHdl := trackinghandler.NewTrackingHandler(trackingSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/tracking/:code", trackingHdl.GetTrackingStatus)
	srv.App.Post("/tracking/parse", trackingHdl.ParseTrackingPage)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		l.Info("Shutting down server")
		if err := srv.Shutdown(); err != nil {
			l.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
