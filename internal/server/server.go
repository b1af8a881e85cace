// Package server contains the HTTP handlers for the catalog and favorites API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	_ "holocron/docs" // swagger docs
	"holocron/internal/cache"
	"holocron/internal/config"
	"holocron/internal/database"
	"holocron/internal/featureflags"
	"holocron/internal/middleware"
	"holocron/internal/models"
	"holocron/internal/repository"
	"holocron/internal/service"
	"holocron/internal/swapi"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const serviceName = "holocron-api"

// Favorite writes allowed per user per minute.
const favoriteWriteLimit = 30

// Server holds all dependencies and provides handlers
type Server struct {
	config          *config.Config
	db              *gorm.DB
	redis           *redis.Client
	app             *fiber.App
	promMiddleware  *fiberprometheus.FiberPrometheus
	featureFlags    *featureflags.Set
	characters      *service.CatalogService[models.Character]
	planets         *service.CatalogService[models.Planet]
	vehicles        *service.CatalogService[models.Vehicle]
	userService     *service.UserService
	favoriteService *service.FavoriteService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// redisClient may be nil.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	characterRepo := repository.NewCatalogRepository[models.Character](db)
	planetRepo := repository.NewCatalogRepository[models.Planet](db)
	vehicleRepo := repository.NewCatalogRepository[models.Vehicle](db)
	userRepo := repository.NewUserRepository(db)

	flags := featureflags.Parse(cfg.FeatureFlags)
	uniqueKinds, err := cfg.UniqueKinds()
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics(serviceName),
		featureFlags:   flags,
		characters:     service.NewCatalogService(characterRepo),
		planets:        service.NewCatalogService(planetRepo),
		vehicles:       service.NewCatalogService(vehicleRepo),
		userService:    service.NewUserService(userRepo, characterRepo, planetRepo, vehicleRepo),
	}
	s.favoriteService = service.NewFavoriteService(service.FavoriteDeps{
		Favorites:   repository.NewFavoriteRepository(db),
		Users:       userRepo,
		Characters:  characterRepo,
		Planets:     planetRepo,
		Vehicles:    vehicleRepo,
		Validator:   swapi.NewClient(swapi.OptionsFromConfig(cfg)),
		Flags:       flags,
		UniqueKinds: uniqueKinds,
	})

	return s, nil
}

// NewApp returns a fiber app configured with the shared error handler and JSON codec.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      "Holocron API",
		ErrorHandler: models.ErrorHandler,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})
}

// App builds the fiber app with middleware and routes installed.
func (s *Server) App() *fiber.App {
	if s.app == nil {
		app := NewApp()
		s.SetupMiddleware(app)
		s.SetupRoutes(app)
		s.app = app
	}
	return s.app
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

	// Acting user for every request
	app.Use(middleware.Identity(s.config.CurrentUserID))

	// OpenTelemetry server span; sets the trace id local
	app.Use(middleware.TracingMiddleware())

	// Context Middleware to propagate Request ID, User ID and Trace ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       86400, // 24 hours
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/", s.Sitemap)

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	app.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Holocron API Metrics Dashboard",
	}))

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Catalog
	app.Get("/people", s.ListPeople)
	app.Get("/people/:id", s.GetPerson)
	app.Get("/planets", s.ListPlanets)
	app.Get("/planets/:id", s.GetPlanet)
	app.Get("/vehicles", s.ListVehicles)
	app.Get("/vehicles/:id", s.GetVehicle)

	// Users
	app.Get("/users", s.ListUsers)
	app.Get("/users/favorites", s.GetUserFavorites)

	// Favorites
	writeLimit := middleware.RateLimit(s.redis, s.config.Env, favoriteWriteLimit, time.Minute,
		middleware.PolicyFor(s.config.RateLimitFailClosed), "favorite_write")
	favorites := app.Group("/favorite")
	favorites.Get("/:kind", s.ListFavorites)
	favorites.Post("/:kind", writeLimit, s.AddFavorite)
	favorites.Post("/:kind/:entityId", writeLimit, s.AddFavorite)
	favorites.Put("/:kind/:favoriteId", writeLimit, s.RepointFavorite)
	favorites.Delete("/:kind/:favoriteId", writeLimit, s.DeleteFavorite)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests. Redis is optional and
// only reported; the database decides readiness. Feature flags are reported
// as evaluated for the configured user.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	if err := database.Ping(ctx, s.db); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "unavailable"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"feature_flags": s.featureFlags.Snapshot(s.config.CurrentUserID),
		"time":          time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := s.App()
	middleware.Logger.Info("Server starting", slog.String("port", s.config.Port))
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			middleware.Logger.Error("error shutting down HTTP server", slog.String("error", err.Error()))
		}
	}

	if err := database.Close(s.db); err != nil {
		middleware.Logger.Error("error closing database", slog.String("error", err.Error()))
	}

	if s.redis != nil {
		closeRedis := s.redis.Close
		if s.redis == cache.GetClient() {
			closeRedis = cache.Close
		}
		if err := closeRedis(); err != nil {
			middleware.Logger.Error("error closing redis", slog.String("error", err.Error()))
		}
	}

	middleware.Logger.Info("Server shutdown complete")
	return nil
}
