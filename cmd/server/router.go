package main

import (
	"context"
	"time"

	"globetrek/cmd/server/handlers"
	"globetrek/cmd/server/handlers/httperr"
	sessionHandlers "globetrek/cmd/server/handlers/session"
	spotsHandlers "globetrek/cmd/server/handlers/spots"
	"globetrek/cmd/server/middlewares"
	mongoClients "globetrek/internal/clients/mongo"
	"globetrek/internal/config"
	"globetrek/internal/logger"
	sessionServices "globetrek/internal/services/session"
	spotsServices "globetrek/internal/services/spots"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// setupRouter configures and returns a Fiber app with all routes. The
// database handle and the asset store are constructed at startup and passed
// in; the router owns no ambient state.
func setupRouter(ctx context.Context, cfg config.Config, db *mongo.Database, assets spotsServices.AssetStore) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: httperr.Handler,
		Immutable:    true, // make Fiber copy all request-derived strings
	})

	// Global middlewares
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Content-Type",
	}))
	app.Use(compress.New())

	if cfg.RouteMetricsEnabled {
		middlewares.AttachMetrics(app)
	}

	// Health check endpoint, outside the rate-limited surface
	app.Get("/healthz", handlers.Healthz(db))

	// Fixed-window limiter over the whole API: 100 requests per 15 minutes
	// per client by default, uniform 429 on breach.
	window := time.Duration(cfg.RateLimitWindowMin) * time.Minute
	app.Use(middlewares.BuildRateLimiter(cfg.RateLimitMax, window, "/healthz", "/metrics"))

	if cfg.RequestLoggingEnabled {
		app.Use(fiberlogger.New())
		logger.L().Info("request logging enabled")
	}

	// Session routes
	sessionSvc := sessionServices.NewService(cfg, logger.L())
	sessionH := sessionHandlers.NewHandlers(sessionSvc)

	app.Post("/jwt", sessionH.Login)
	app.Post("/jwt-logout", sessionH.Logout)

	// Tourist-spot routes
	spotsRepo, err := mongoClients.NewSpotsRepo(ctx, db)
	if err != nil {
		logger.L().Error(spotsServices.ErrCreateSpotsRepo.Error(), "error", err)
		panic(err)
	}
	spotsSvc := spotsServices.NewService(spotsRepo, assets, logger.L())
	spotsH := spotsHandlers.NewHandlers(spotsSvc)

	sessionGuard := middlewares.Session(cfg)

	grp := app.Group("/tourist-spot")
	grp.Get("/", spotsH.List)
	grp.Get("/user/:email", sessionGuard, spotsH.ListByOwner)
	grp.Get("/:id", spotsH.Get)
	grp.Post("/", spotsH.Create)
	grp.Patch("/:id", spotsH.Update)
	grp.Delete("/:id", spotsH.Delete)

	return app
}
