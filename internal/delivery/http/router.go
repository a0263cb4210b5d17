package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/outfique/backend/internal/metrics"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, deps Deps) {
	handler := NewHandler(deps)

	app.Use(RequestMetrics())

	// Health check
	app.Get("/health", handler.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	// API v1 routes
	api := app.Group("/api/v1")
	{
		auth := api.Group("/auth")
		auth.Get("/session", handler.GetSession)
		auth.Post("/login", handler.Login)
		auth.Post("/signup", handler.Signup)
		auth.Post("/logout", handler.Logout)
		auth.Patch("/profile", handler.UpdateProfile)

		wardrobe := api.Group("/wardrobe")
		wardrobe.Get("/", handler.GetWardrobe)
		wardrobe.Post("/", handler.AddWardrobeItem)
		wardrobe.Post("/refresh", handler.RefreshWardrobe)
		wardrobe.Post("/uploads", handler.CreateUpload)
		wardrobe.Delete("/:id", handler.DeleteWardrobeItem)

		api.Get("/weather", handler.GetWeather)
		api.Get("/suggestions", handler.GetSuggestions)

		api.Get("/feed", handler.GetFeed)
		api.Post("/feed/:id/like", handler.LikePost)
		api.Post("/feed/:id/save", handler.SavePost)
		api.Get("/search", handler.Search)

		api.Get("/notifications", handler.GetNotifications)
		api.Post("/notifications/read", handler.MarkNotificationsRead)
		api.Get("/notices", handler.GetNotices)
	}
}
