package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/msilviu/taskpro/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, authHandler *handlers.AuthHandler, profile *handlers.ProfileHandler, help *handlers.HelpHandler, health *handlers.HealthHandler, requireAccess fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", authHandler.Register)
	a.Post("/login", authHandler.Login)
	a.Post("/refresh", authHandler.Refresh)
	a.Post("/logout", requireAccess, authHandler.Logout)

	u := v1.Group("/users", requireAccess)
	u.Get("/current", authHandler.Current)
	u.Patch("/theme", profile.UpdateTheme)
	u.Patch("/profile", profile.UpdateProfile)

	v1.Post("/help", help.RequestHelp)
}
