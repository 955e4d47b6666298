package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/askmeteo/weather-chat/internal/api/http"
	"github.com/askmeteo/weather-chat/internal/chat"
	"github.com/askmeteo/weather-chat/internal/config"
	"github.com/askmeteo/weather-chat/internal/scheduler"
	"github.com/askmeteo/weather-chat/internal/store"
	"github.com/askmeteo/weather-chat/internal/weather"
	"github.com/askmeteo/weather-chat/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Transcript store per configured driver.
	var transcriptStore chat.Store
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		sqliteStore, err := store.NewSQLite(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("failed to open sqlite store: %v", err)
		}
		transcriptStore = sqliteStore
	default:
		transcriptStore = store.NewMemoryStore()
	}
	defer transcriptStore.Close()

	// Outbound clients and the query pipeline.
	geocoder := providers.NewGeocodingClient(httpClient, cfg.GeocodingBaseURL)
	meteo := providers.NewOpenMeteoClient(httpClient, cfg.WeatherBaseURL)
	weatherSvc := weather.NewService(geocoder, meteo)

	// Transcript service; seeds the greeting on first run.
	chatSvc, err := chat.NewService(transcriptStore, weatherSvc)
	if err != nil {
		log.Fatalf("failed to initialize chat service: %v", err)
	}

	// Periodic sweep of stale recent searches.
	sched := scheduler.New(transcriptStore, cfg.SweepInterval, cfg.SearchMaxAge, cfg.RecentLimit)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-chat",
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
			"service": "weather-chat",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, chatSvc, weatherSvc, cfg.RecentLimit)

	// Start server with graceful shutdown
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
