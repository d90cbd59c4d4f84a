package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"chimichangapp/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay free of business logic and delegate to the injected services.
// db may be nil when no database backend is configured.
func RegisterRoutes(app *fiber.App, db *sql.DB, dirSvc service.DirectoryService, snapSvc service.SnapshotService) {
	app.Get("/", Hello())

	app.Get("/items/", ListItems())
	app.Put("/items/:item_id", UpdateItem())
	app.Get("/new_items/", ListNewItems())

	app.Get("/users/", ListUsers())
	app.Get("/get-user", GetUser(dirSvc))

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Get("/spec-snapshot", GetSpecSnapshot(snapSvc))
}
