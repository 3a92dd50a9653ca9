package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"store-rating-service/app/config"
	"store-rating-service/app/driver/kratos"
	"store-rating-service/app/driver/localstore"
	"store-rating-service/app/driver/postgres"
	"store-rating-service/app/gateway"
	"store-rating-service/app/notify"
	"store-rating-service/app/port"
	"store-rating-service/app/rest"
	"store-rating-service/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	KratosClient *kratos.Client
	Cache        port.FallbackCache

	// Gateways
	Platform port.IdentityPlatform

	// Notifier and resolver
	Notifier *notify.Notifier
	Resolver port.SessionResolver

	// Usecases
	AuthUsecase   port.AuthUsecase
	StoreUsecase  port.StoreUsecase
	RatingUsecase port.RatingUsecase
	UserUsecase   port.UserUsecase

	unsubscribe func()
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	// Initialize database connection
	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Kratos client
	container.KratosClient, err = kratos.NewClient(cfg, logger)
	if err != nil {
		container.DB.Close()
		return nil, fmt.Errorf("failed to initialize Kratos client: %w", err)
	}

	// Initialize the fallback cache. Without a configured path the
	// resolver still works, it just has no secondary source.
	if cfg.FallbackCacheEnabled() {
		container.Cache, err = localstore.NewFileStore(cfg.FallbackCachePath)
		if err != nil {
			container.DB.Close()
			return nil, fmt.Errorf("failed to initialize fallback cache: %w", err)
		}
	} else {
		container.Cache = localstore.NewNoop()
		logger.Info("fallback cache disabled, using no-op store")
	}

	// Initialize repositories
	userRepository := postgres.NewUserRepository(container.DB.Pool(), logger)
	storeRepository := postgres.NewStoreRepository(container.DB.Pool(), logger)
	ratingRepository := postgres.NewRatingRepository(container.DB.Pool(), logger)

	// Initialize gateways
	platformAdapter := kratos.NewPlatformAdapter(container.KratosClient, logger)
	container.Platform = gateway.NewPlatformGateway(platformAdapter, logger)

	// Initialize the notifier and the session resolver, and feed local
	// auth transitions into the resolver.
	container.Notifier = notify.New(logger)
	resolver := usecase.NewSessionResolver(container.Platform, userRepository, container.Cache, logger)
	container.Resolver = resolver
	container.unsubscribe = container.Notifier.Subscribe(resolver.OnLocalAuthEvent)

	// Initialize usecases
	container.AuthUsecase = usecase.NewAuthUseCase(container.Platform, userRepository, container.Cache, logger)
	container.StoreUsecase = usecase.NewStoreUseCase(storeRepository, ratingRepository, logger)
	container.RatingUsecase = usecase.NewRatingUseCase(ratingRepository, storeRepository, logger)
	container.UserUsecase = usecase.NewUserUseCase(userRepository, storeRepository, ratingRepository, container.Platform, logger)

	logger.Info("container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	return rest.NewRouter(rest.RouterConfig{
		Logger:         c.Logger,
		AuthUsecase:    c.AuthUsecase,
		StoreUsecase:   c.StoreUsecase,
		RatingUsecase:  c.RatingUsecase,
		UserUsecase:    c.UserUsecase,
		Resolver:       c.Resolver,
		Notifier:       c.Notifier,
		Database:       c.DB,
		Platform:       c.KratosClient,
		RateLimitRPS:   c.Config.RateLimitRPS,
		RateLimitBurst: c.Config.RateLimitBurst,
		EnableDebug:    c.Config.LogLevel == "debug",
	})
}

// Close closes all resources
func (c *Container) Close() error {
	if c.unsubscribe != nil {
		c.unsubscribe()
	}

	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("container closed")
	return nil
}
