package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hirehub/hirehub-api/internal/api/handler"
	"github.com/hirehub/hirehub-api/internal/api/middleware"
	"github.com/hirehub/hirehub-api/internal/core/service"
	"github.com/hirehub/hirehub-api/internal/infrastructure/config"
	mongodb "github.com/hirehub/hirehub-api/internal/infrastructure/db/mongo"
	redisdb "github.com/hirehub/hirehub-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("hirehub"))
	e.Use(middleware.NewIdentity(cfg.JWTSecret))

	// --- Repositories ---
	users := mongodb.NewUserRepository(db)
	jobs := mongodb.NewJobRepository(db)
	apps := mongodb.NewApplicationRepository(db)

	// --- Services ---
	authService := service.NewAuthService(users, cfg.JWTSecret, 0, log)
	jobService := service.NewJobService(jobs, users, log)
	appService := service.NewApplicationService(apps, jobs, users, log)
	statsCache := redisdb.NewStatsCache(rdb, cfg.StatsCacheTTL)
	dashboardService := service.NewDashboardService(jobs, apps, statsCache, log)
	profileService := service.NewProfileService(users, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService)
	appHandler := handler.NewApplicationHandler(appService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	profileHandler := handler.NewProfileHandler(profileService)

	g := e.Group("/api")

	// --- Auth ---
	g.POST("/auth/register", authHandler.Register)
	g.POST("/auth/login", authHandler.Login)

	// --- Jobs ---
	g.GET("/jobs", jobHandler.List)
	g.POST("/jobs", jobHandler.Create)
	g.GET("/jobs/:id", jobHandler.Get)
	g.PUT("/jobs/:id/active", jobHandler.SetActive)
	g.GET("/jobs/employer/:employerId", jobHandler.ListByEmployer)

	// --- Applications ---
	g.POST("/applications", appHandler.Apply)
	g.GET("/applications/user/:userId", appHandler.ListForUser)
	g.GET("/applications/job/:jobId", appHandler.ListForJob)
	g.PUT("/applications/:id/status", appHandler.UpdateStatus)

	// --- Dashboard & profiles ---
	g.GET("/dashboard/stats", dashboardHandler.Stats)
	g.GET("/users/:id", profileHandler.Get)
	g.PUT("/users/:id/profile", profileHandler.Update)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
