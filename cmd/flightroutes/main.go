package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/aeronav/flightroutes/internal/api/http"
	"github.com/aeronav/flightroutes/internal/batch"
	"github.com/aeronav/flightroutes/internal/config"
	"github.com/aeronav/flightroutes/internal/loader"
	"github.com/aeronav/flightroutes/internal/route"
	"github.com/aeronav/flightroutes/internal/scheduler"
	"github.com/aeronav/flightroutes/internal/store"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for remote dataset downloads.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	var geo *loader.Geocoder
	if cfg.GeocoderAPIKey != "" {
		geo = loader.NewGeocoder(cfg.GeocoderAPIKey, cfg.GeocodeRatePerSec)
	}

	builder := loader.NewBuilder(loader.NewFetcher(httpClient), geo)
	paths := loader.Paths{
		Airports:   cfg.AirportsFile,
		Directions: cfg.DirectionsFile,
		Weather:    cfg.WeatherFile,
	}

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 2*time.Minute)
	ds, err := builder.Build(loadCtx, paths)
	cancelLoad()
	if err != nil {
		log.Fatalf("failed to build dataset: %v", err)
	}
	log.Printf("dataset loaded: %d airports, %d edges, %d airfields with weather",
		ds.Directory.Len(), ds.Graph.EdgeCount(), ds.Weather.Airfields())

	// Plan cache with configured retention.
	cache := store.NewMemoryStore(cfg.CacheMaxEntries, cfg.CacheMaxAge)

	// Core service answering route queries against the current snapshot.
	service := route.NewService(ds, cache)

	if cfg.BatchMode() {
		if err := runBatch(cfg, service); err != nil {
			log.Fatalf("batch run failed: %v", err)
		}
		return
	}

	// Scheduler that periodically rebuilds and swaps the dataset.
	sched := scheduler.New(service, builder, paths, cfg.ReloadInterval)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "flightroutes",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "flightroutes",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}

// runBatch processes the missions file and writes one result line per
// mission, then exits.
func runBatch(cfg *config.AppConfig, service *route.Service) error {
	f, err := os.Open(cfg.MissionsFile)
	if err != nil {
		return err
	}
	missions, err := loader.Missions(f)
	f.Close()
	if err != nil {
		return err
	}

	sink, err := batch.NewResultWriter(cfg.ResultsFile)
	if err != nil {
		return err
	}

	runner := batch.NewRunner(service)
	if _, err := runner.Run(missions, sink); err != nil {
		sink.Close()
		return err
	}
	return sink.Close()
}
