package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/course-gateway/internal/api/http/handlers"
	"github.com/spec-kit/course-gateway/internal/session"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Auth    *handlers.AuthHandler
	Courses *handlers.CoursesHandler
}

// RegisterRoutes wires HTTP routes. Application routes live under /api;
// health probes stay at the root for the platform.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/me", cfg.Auth.Me)

	courses := api.Group("/courses", session.RequireSession())
	courses.Get("/", cfg.Courses.List)
	courses.Post("/", cfg.Courses.Create)
	courses.Get("/:id", cfg.Courses.Get)
	courses.Put("/:id", cfg.Courses.Update)
	courses.Delete("/:id", cfg.Courses.Delete)
}
