// Package main is the entry point for the QR protocol service.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"pianostyle/internal/config"
	"pianostyle/internal/repositories"
	"pianostyle/internal/repositories/cache"
	"pianostyle/internal/routes"
	appLogger "pianostyle/internal/utils/logger"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()
	slogger := appLogger.New(cfg.LogLevel)

	if err := repositories.InitDB(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := repositories.CloseDB(); err != nil {
			log.Printf("Failed to close database connection: %v", err)
		}
	}()

	var renderCache *cache.RedisCache
	if cfg.RedisAddr != "" {
		client := cache.NewRedisClient(&cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		renderCache = cache.NewRedisCache(client)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := renderCache.HealthCheck(ctx); err != nil {
			log.Printf("Redis unavailable, render cache disabled: %v", err)
			renderCache = nil
		}
		cancel()
		if renderCache != nil {
			defer renderCache.Close()
		}
	}

	app := fiber.New(fiber.Config{
		Prefork:               cfg.Prefork,
		DisableStartupMessage: config.IsProduction(),
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "http://localhost:3000"),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,HEAD",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Use("/api/v1/qr", limiter.New(limiter.Config{
		Max:        30,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(429).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	routes.SetupRoutes(app, cfg, renderCache, slogger)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()
	slogger.Info("server started", "port", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slogger.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
