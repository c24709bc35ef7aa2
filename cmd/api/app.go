package main

import (
	"net/http"
	"os"

	"estatedesk-backend/internal/handlers"
	"estatedesk-backend/internal/middleware"
	"estatedesk-backend/internal/repositories"
	"estatedesk-backend/internal/services"
	"estatedesk-backend/internal/validators"
	"estatedesk-backend/pkg/cache"
	"estatedesk-backend/pkg/config"
	"estatedesk-backend/pkg/database"
	"estatedesk-backend/pkg/logger"
	"estatedesk-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// App represents the application structure
type App struct {
	Config           *config.Config
	Router           *gin.Engine
	AuthHandler      *handlers.AuthHandler
	PropertyHandler  *handlers.PropertyHandler
	UploadHandler    *handlers.UploadHandler
	UserHandler      *handlers.UserHandler
	ClientHandler    *handlers.ClientHandler
	NewsHandler      *handlers.NewsHandler
	InquiryHandler   *handlers.InquiryHandler
	DashboardHandler *handlers.DashboardHandler
	UserRepo         repositories.UserRepository
	RateLimiter      *middleware.RateLimiter
	Server           *http.Server
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	// Initialize infrastructure
	app.initializeDatabase()
	app.initializeCache()
	app.initializeMetrics()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initialize the database connection
func (a *App) initializeDatabase() {
	if err := database.InitDB(a.Config.Database.DSN); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize database: %v", err)
		os.Exit(1)
	}
}

// initialize the Redis cache
func (a *App) initializeCache() {
	opts := cache.Options{
		Host:     a.Config.Redis.Host,
		Port:     a.Config.Redis.Port,
		Password: a.Config.Redis.Password,
		DB:       a.Config.Redis.DB,
	}
	if err := cache.InitRedis(opts); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize Redis: %v", err)
		os.Exit(1)
	}
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(rate.Limit(100/60.0), 10)
	go a.RateLimiter.Cleanup()
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	// repositories
	propertyRepo := repositories.NewPropertyRepository(database.DB)
	propertyCache := repositories.NewPropertyCache()
	userRepo := repositories.NewUserRepository(database.DB)
	clientRepo := repositories.NewClientRepository(database.DB)
	newsRepo := repositories.NewNewsRepository(database.DB)
	inquiryRepo := repositories.NewInquiryRepository(database.DB)
	a.UserRepo = userRepo

	// validators
	propertyValidator := validators.NewPropertyValidator()
	userValidator := validators.NewUserValidator()
	clientValidator := validators.NewClientValidator()

	// services
	propertyService := services.NewPropertyService(propertyRepo, propertyCache, propertyValidator)
	searchService := services.NewPropertySearchService(propertyRepo, propertyCache)
	userService := services.NewUserService(userRepo, userValidator, a.Config.JWT.Secret)
	clientService := services.NewClientService(clientRepo, clientValidator)
	newsService := services.NewNewsService(newsRepo)
	inquiryService := services.NewInquiryService(inquiryRepo, propertyRepo)
	dashboardService := services.NewDashboardService(propertyRepo, clientRepo, newsRepo, inquiryRepo, userRepo)

	// handlers
	a.AuthHandler = handlers.NewAuthHandler(userService)
	a.PropertyHandler = handlers.NewPropertyHandler(propertyService, searchService)
	a.UploadHandler = handlers.NewUploadHandler(propertyService, a.Config.Uploads.Dir, a.Config.Uploads.BaseURL)
	a.UserHandler = handlers.NewUserHandler(userService)
	a.ClientHandler = handlers.NewClientHandler(clientService)
	a.NewsHandler = handlers.NewNewsHandler(newsService)
	a.InquiryHandler = handlers.NewInquiryHandler(inquiryService)
	a.DashboardHandler = handlers.NewDashboardHandler(dashboardService)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	database.CloseDB()
	cache.CloseRedis()
}
