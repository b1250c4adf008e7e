package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	httpapi "github.com/i474232898/weather-now/internal/api/http"
	"github.com/i474232898/weather-now/internal/config"
	"github.com/i474232898/weather-now/internal/metrics"
	"github.com/i474232898/weather-now/internal/scheduler"
	"github.com/i474232898/weather-now/internal/search"
	"github.com/i474232898/weather-now/internal/weather"
	"github.com/i474232898/weather-now/internal/weather/providers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for both upstream calls; its timeout is the only
	// latency bound on a search.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	service := weather.NewService(
		providers.NewGeocodingProvider(httpClient, cfg.GeocodingURL),
		providers.NewOpenMeteoProvider(httpClient, cfg.ForecastURL),
	)

	widget := search.NewController(service, cfg.DefaultQuery)
	widget.Activate()
	defer widget.Close()

	sched := scheduler.New(cfg.RefreshInterval, widget)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "weather-now",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          2 * cfg.HTTPTimeout,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-now",
			"widget":  widget.State().Status(),
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	httpapi.RegisterRoutes(app, service, widget)

	go func() {
		log.Printf("INFO: listening on :%s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
