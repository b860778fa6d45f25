package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"jeancro/internal/ai"
	"jeancro/internal/config"
	"jeancro/internal/http/handlers"
	applog "jeancro/internal/log"
	"jeancro/internal/repos"
	"jeancro/internal/services"
	"jeancro/internal/store"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	st, err := store.Open(repos.NewKVRepo(db))
	if err != nil {
		log.Fatal(err)
	}

	completer, err := ai.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal(err)
	}

	adminSvc := services.NewAdminService(cfg.AdminPassword, cfg.JWTSecret)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "something went wrong, please try again",
			})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Accept-Language",
		AllowCredentials: true,
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	deps := handlers.NewDeps(st, adminSvc, completer)

	// ---------- Public API ----------
	api := app.Group("/api/v1")
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Detail)
	api.Get("/categories", deps.CategoryHandler.List)
	api.Get("/faqs", deps.FAQHandler.List)
	api.Get("/ads", deps.AdHandler.Active)
	api.Get("/settings", deps.SettingsHandler.Get)
	api.Post("/checkout", deps.CheckoutHandler.Create)

	// Chat gets its own tighter limiter since each message may fan out to
	// the generative API.
	chatLimiter := limiter.New(limiter.Config{
		Max:        15,
		Expiration: 30 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|chat"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.chat.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	})
	api.Post("/chat", chatLimiter, deps.ChatHandler.Send)
	api.Get("/chat/history", deps.ChatHandler.History)
	api.Post("/chat/reset", deps.ChatHandler.Reset)

	// ---------- Admin API ----------
	api.Post("/admin/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, try again later"})
		},
	}), deps.AuthHandler.Login)

	admin := api.Group("/admin", handlers.RequireAdmin(adminSvc))
	admin.Get("/stats", deps.AdminHandler.Stats)
	admin.Post("/reload", deps.AdminHandler.Reload)
	admin.Get("/ads", deps.AdHandler.ListAll)
	admin.Post("/products", deps.ProductHandler.Create)
	admin.Put("/products/:id", deps.ProductHandler.Update)
	admin.Delete("/products/:id", deps.ProductHandler.Delete)
	admin.Post("/categories", deps.CategoryHandler.Create)
	admin.Put("/categories/:id", deps.CategoryHandler.Update)
	admin.Delete("/categories/:id", deps.CategoryHandler.Delete)
	admin.Post("/faqs", deps.FAQHandler.Create)
	admin.Put("/faqs/:id", deps.FAQHandler.Update)
	admin.Delete("/faqs/:id", deps.FAQHandler.Delete)
	admin.Post("/ads", deps.AdHandler.Create)
	admin.Put("/ads/:id", deps.AdHandler.Update)
	admin.Delete("/ads/:id", deps.AdHandler.Delete)
	admin.Put("/settings", deps.SettingsHandler.Update)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Printf("[listen] :%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
