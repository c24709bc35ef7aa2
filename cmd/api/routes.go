package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"estatedesk-backend/internal/middleware"
	"estatedesk-backend/pkg/cache"
	"estatedesk-backend/pkg/database"
	"estatedesk-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "net/http/pprof"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupStaticRoutes()
	a.setupHealthCheck()
	a.setupAPIRoutes()
}

// setupStaticRoutes serves uploaded files and operational endpoints
func (a *App) setupStaticRoutes() {
	// Serve uploaded property images
	a.Router.Static(a.Config.Uploads.BaseURL, a.Config.Uploads.Dir)

	// Expose pprof profiling endpoints (disable in production)
	if os.Getenv("ENV") != "production" {
		a.Router.GET("/debug/pprof/*any", gin.WrapH(http.DefaultServeMux))
	}

	// Expose Prometheus metrics endpoint
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupHealthCheck configures health check endpoint
func (a *App) setupHealthCheck() {
	a.Router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		sqlDB, err := database.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			logger.GlobalLogger.Printf("Database ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "database unavailable"})
			return
		}

		if _, err := cache.RedisClient.Ping(ctx).Result(); err != nil {
			logger.GlobalLogger.Printf("Redis ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Redis unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	auth := middleware.AuthMiddleware(a.Config.JWT.Secret, a.UserRepo)

	api := a.Router.Group("/api")
	{
		// Public routes
		api.POST("/register", a.AuthHandler.Register)
		api.POST("/login", a.AuthHandler.Login)
		api.GET("/properties", a.PropertyHandler.GetProperties)
		api.GET("/properties/:id", a.PropertyHandler.GetPropertyByID)
		api.GET("/news", a.NewsHandler.ListNews)
		api.POST("/inquiries", a.InquiryHandler.SubmitInquiry)

		// Property management
		properties := api.Group("/properties")
		properties.Use(auth)
		{
			properties.POST("", a.PropertyHandler.CreateProperty)
			properties.PUT("/:id", a.PropertyHandler.UpdateProperty)
			properties.DELETE("/:id", a.PropertyHandler.DeleteProperty)
			properties.POST("/:id/images", a.UploadHandler.UploadPropertyImages)
		}

		// Agent client book
		clients := api.Group("/agent/clients")
		clients.Use(auth)
		{
			clients.GET("", a.ClientHandler.ListClients)
			clients.POST("", a.ClientHandler.CreateClient)
			clients.PUT("/:id", a.ClientHandler.UpdateClient)
			clients.DELETE("/:id", a.ClientHandler.DeleteClient)
		}
		api.GET("/agents/:agentId/clients", auth, a.ClientHandler.ListClientsForAgent)

		// User administration
		users := api.Group("/users")
		users.Use(auth)
		{
			users.GET("", a.UserHandler.ListUsers)
			users.POST("", a.UserHandler.CreateUser)
			users.DELETE("/:id", a.UserHandler.DeleteUser)
			users.PATCH("/:id/status", a.UserHandler.ToggleStatus)
		}

		// News management
		news := api.Group("/news")
		news.Use(auth)
		{
			news.GET("/all", a.NewsHandler.ListAllNews)
			news.POST("", a.NewsHandler.CreateNews)
			news.PUT("/:id", a.NewsHandler.UpdateNews)
			news.DELETE("/:id", a.NewsHandler.DeleteNews)
		}

		// Inquiry administration
		inquiries := api.Group("/inquiries")
		inquiries.Use(auth)
		{
			inquiries.GET("", a.InquiryHandler.ListInquiries)
			inquiries.PATCH("/:id/status", a.InquiryHandler.UpdateInquiryStatus)
		}

		api.GET("/dashboard/stats", auth, a.DashboardHandler.GetStats)
	}
}
