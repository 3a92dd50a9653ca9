package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"store-rating-service/app/notify"
	"store-rating-service/app/port"
	"store-rating-service/app/rest/handlers"
	custommw "store-rating-service/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger         *slog.Logger
	AuthUsecase    port.AuthUsecase
	StoreUsecase   port.StoreUsecase
	RatingUsecase  port.RatingUsecase
	UserUsecase    port.UserUsecase
	Resolver       port.SessionResolver
	Notifier       *notify.Notifier
	Database       handlers.DependencyChecker
	Platform       handlers.DependencyChecker
	RateLimitRPS   float64
	RateLimitBurst int
	EnableDebug    bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Debug = config.EnableDebug

	// Create handlers
	authHandler := handlers.NewAuthHandler(config.AuthUsecase, config.Notifier, config.Logger)
	storeHandler := handlers.NewStoreHandler(config.StoreUsecase, config.Logger)
	ratingHandler := handlers.NewRatingHandler(config.RatingUsecase, config.Logger)
	userHandler := handlers.NewUserHandler(config.UserUsecase, config.Logger)
	ownerHandler := handlers.NewOwnerHandler(config.StoreUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Database, config.Platform, config.Logger)

	// Create middleware
	authMiddleware := custommw.NewAuthMiddleware(config.Resolver, config.Logger)
	guardMiddleware := custommw.NewGuardMiddleware(config.Logger)
	rateLimiter := custommw.NewRateLimiter(config.RateLimitRPS, config.RateLimitBurst)

	// Global middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())

	// Identity resolution runs for every request; gating is decided per
	// route group by the guard.
	e.Use(authMiddleware.Resolve())

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints (no auth required)
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Authentication endpoints
	auth := v1.Group("/auth")
	auth.POST("/signup", authHandler.SignUp)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/session", authHandler.Session)

	// Store browsing is public; creation is admin-only
	v1.GET("/stores", storeHandler.List)
	v1.POST("/stores", storeHandler.Create, guardMiddleware.RequireAdmin())

	// Ratings require any authenticated identity
	ratings := v1.Group("/ratings", guardMiddleware.RequireAuthenticated())
	ratings.POST("", ratingHandler.Submit)
	ratings.GET("/me", ratingHandler.ListMine)

	// Profile endpoint
	v1.GET("/users/me", userHandler.Me, guardMiddleware.RequireAuthenticated())

	// Store-owner section
	owner := v1.Group("/owner", guardMiddleware.RequireOwner())
	owner.GET("/analytics", ownerHandler.Analytics)

	// Admin section
	admin := v1.Group("/admin", guardMiddleware.RequireAdmin())
	admin.GET("/metrics", userHandler.Metrics)
	admin.GET("/users", userHandler.List)
	admin.POST("/users", userHandler.Create)
	admin.GET("/users/:id", userHandler.Get)
	admin.DELETE("/users/:id", userHandler.Delete)

	return e
}
