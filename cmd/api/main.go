package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"

	"chimichangapp/docs"
	"chimichangapp/internal/config"
	"chimichangapp/internal/database"
	"chimichangapp/internal/database/migration"
	handlers "chimichangapp/internal/http/handler"
	"chimichangapp/internal/http/middleware"
	"chimichangapp/internal/otel"
	"chimichangapp/internal/repository"
	"chimichangapp/internal/repository/memory"
	"chimichangapp/internal/repository/postgres"
	"chimichangapp/internal/service"
	"chimichangapp/internal/storage"
)

// @title ChimichangApp
// @version 0.0.1
// @description ChimichangApp API helps you do awesome stuff. 🚀
// @description
// @description ## Items
// @description
// @description You can **read items**.
// @description
// @description ## Users
// @description
// @description You will be able to:
// @description
// @description * **Create users** (_not implemented_).
// @description * **Read users** (_not implemented_).
// @termsOfService http://example.com/terms/
// @contact.name Deadpoolio the Amazing
// @contact.url http://x-force.example.com/contact/
// @contact.email dp@x-force.example.com
// @license.name Apache 2.0
// @license.url https://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /
// @tag.name users
// @tag.description Operations with users. The **login** logic is also here.
// @tag.name items
// @tag.description Manage items. So _fancy_ they have their own docs.
// @tag.docs.url https://fastapi.tiangolo.com/
// @tag.docs.description Items external docs
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.TimeLocation()

	ctx := context.Background()

	// Initialize tracing (no-op when OTEL_SDK_DISABLED=true)
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Directory backend: PostgreSQL when configured, seeded in-memory otherwise
	var db *sql.DB
	var dir repository.UserDirectory
	if cfg.Database.Enabled() {
		db, err = database.NewPostgres(cfg.Database)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
		dir = postgres.NewDirectoryPostgres(db)
	} else {
		dir = memory.NewUserDirectory(nil)
	}

	// Object storage for spec snapshot publishing (optional)
	var objStore storage.Storage
	if cfg.MinIO.Enabled() {
		objStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatalf("failed to initialize object storage: %v", err)
		}
	}

	// Initialize services
	dirSvc := service.NewDirectoryService(dir)
	snapSvc := service.NewSnapshotService(
		objStore,
		func() (string, error) { return swag.ReadDoc() },
		docs.SwaggerInfo.Version,
		time.Duration(cfg.Snapshot.URLTTLSec)*time.Second,
	)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// Server spans for incoming requests
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger(loc))

	// Request metrics on a private registry, exposed at /metrics
	registry := prometheus.NewRegistry()
	promMW, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMW.Handler())

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, dirSvc, snapSvc)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	// Advertised host in the rendered document. The swagger route above
	// overrides it per request; the published snapshot uses this value.
	docs.SwaggerInfo.Host = cfg.AppHost

	// Publish the rendered spec to object storage once per boot
	if objStore != nil {
		if snap, err := snapSvc.Publish(ctx); err != nil {
			logJSON(loc, map[string]any{
				"level": "error",
				"msg":   "spec_snapshot_publish_failed",
				"error": err.Error(),
			})
		} else {
			logJSON(loc, map[string]any{
				"msg":  "spec_snapshot_published",
				"key":  snap.Key,
				"size": snap.Size,
				"url":  snap.URL,
			})
		}
	}

	// Shut down on SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		if err := app.Shutdown(); err != nil {
			log.Printf("failed to shut down server: %v", err)
		}
	}()

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		data["level"] = "info"
	}

	b, err := json.Marshal(data)
	if err != nil {
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
