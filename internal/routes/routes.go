package routes

import (
	"time"

	"github.com/Sanj24Dev/sort-and-style/internal/config"
	"github.com/Sanj24Dev/sort-and-style/internal/handlers"
	"github.com/Sanj24Dev/sort-and-style/internal/metrics"
	"github.com/Sanj24Dev/sort-and-style/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	itemHandler *handlers.ItemHandler,
	outfitHandler *handlers.OutfitHandler,
	listHandler *handlers.ListHandler,
) {
	// Prometheus scrape endpoint, outside the API rate limiter.
	app.Get("/metrics", metrics.Handler())

	// Uploaded images when the local blob driver is active.
	if cfg.BlobDriver == "" || cfg.BlobDriver == "local" {
		app.Static("/uploads", cfg.UploadDir)
	}

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	items := api.Group("/items", middleware.JWTProtected(cfg))
	items.Get("/", itemHandler.GetItems)
	items.Post("/upload", itemHandler.UploadItem)
	items.Delete("/:id", itemHandler.DeleteItem)

	outfits := api.Group("/outfits", middleware.JWTProtected(cfg))
	outfits.Get("/", outfitHandler.GetOutfits)
	outfits.Post("/upload", outfitHandler.CreateOutfit)
	outfits.Put("/:id", outfitHandler.UpdateOutfit)
	outfits.Delete("/:id", outfitHandler.DeleteOutfit)

	lists := api.Group("/lists", middleware.JWTProtected(cfg))
	lists.Get("/", listHandler.GetLists)
	lists.Post("/upload", listHandler.CreateList)
	lists.Put("/:id", listHandler.UpdateList)
	lists.Delete("/:id", listHandler.DeleteList)
}
