package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/laborercms/laborer-api/docs"
	"github.com/laborercms/laborer-api/internal/api/handler"
	"github.com/laborercms/laborer-api/internal/core/ports"
	"github.com/laborercms/laborer-api/internal/core/service"
	"github.com/laborercms/laborer-api/internal/infrastructure/config"
	mongodb "github.com/laborercms/laborer-api/internal/infrastructure/db/mongo"
	"github.com/laborercms/laborer-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The picture store and cleanup queue are built by the caller because the
// cleanup janitor shares them.
func NewRouter(db *mongo.Database, rdb *redis.Client, pictures ports.PictureStore, cleanup ports.CleanupQueue, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("laborercms"))

	// --- Dependencies ---
	laborerRepo := mongodb.NewLaborerRepository(db)
	laborerService := service.NewLaborerService(laborerRepo, pictures, cleanup, log)
	laborerHandler := handler.NewLaborerHandler(laborerService)

	// --- Laborer routes ---
	e.GET("/laborers", laborerHandler.List)
	e.GET("/laborers/:id", laborerHandler.Get)
	e.POST("/laborers", laborerHandler.Create)
	e.PUT("/laborers/:id", laborerHandler.Update)

	// Uploaded pictures are served from the public path the store embeds in
	// each record's picture field.
	e.Static(cfg.Upload.PublicPath, cfg.Upload.Dir)

	// --- Operational endpoints ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
