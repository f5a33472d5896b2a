// Package routes defines the API routing configuration.
package routes

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"pianostyle/internal/config"
	"pianostyle/internal/handlers"
	"pianostyle/internal/repositories"
	"pianostyle/internal/repositories/cache"
	"pianostyle/internal/services/codec"
	"pianostyle/internal/services/method"
	"pianostyle/internal/services/qrimage"
)

// SetupRoutes wires services and registers all HTTP routes.
func SetupRoutes(app *fiber.App, cfg *config.Config, renderCache *cache.RedisCache, logger *slog.Logger) {
	codecSvc := codec.NewService(cfg.BaseURL, logger)

	var qrCache qrimage.CacheRepository
	if renderCache != nil {
		qrCache = renderCache
	}
	qrSvc := qrimage.NewService(codecSvc, qrCache, logger)

	selector := method.NewSelector()

	venueRepo := repositories.NewVenueRepository(repositories.DB)
	profileRepo := repositories.NewProfileRepository(repositories.DB)

	codecHandler := handlers.NewCodecHandler(codecSvc)
	qrHandler := handlers.NewQRHandler(qrSvc, codecSvc, venueRepo, profileRepo)
	methodHandler := handlers.NewMethodHandler(selector)

	app.Get("/health", handlers.HealthCheck)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "PianoStyle QR API",
			"version": "1.0.0",
		})
	})

	api := app.Group("/api/v1")

	codecGroup := api.Group("/codec")
	codecGroup.Post("/decode", codecHandler.Decode)
	codecGroup.Post("/payment-uri", codecHandler.EncodePaymentURI)

	api.Post("/qr", qrHandler.Render)
	api.Post("/qr/payment", qrHandler.RenderPayment)
	api.Get("/venues/:slug/qr", qrHandler.VenueQR)
	api.Get("/users/:address/qr", qrHandler.UserQR)

	api.Post("/methods/suggest", methodHandler.Suggest)
}
