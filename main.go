package main

import (
	"log"
	"net/http"

	"newsdesk-admin/config"
	"newsdesk-admin/handlers"
	"newsdesk-admin/helper"
	"newsdesk-admin/middleware"
	"newsdesk-admin/repositories"
	"newsdesk-admin/services"

	"github.com/gin-gonic/gin"
)

func main() {
	config.Init()

	httpHelper := helper.NewHTTPHelper()
	middleware.HTTPHelper = httpHelper

	// Remote collaborators
	newsRepo := repositories.NewGraphQLNewsRepository(config.GraphQLEndpoint, &http.Client{Timeout: config.UploadTimeout})
	imageStore := services.NewCloudinaryStore(config.CloudinaryUploadURL(), config.CloudinaryUploadPreset, &http.Client{Timeout: config.UploadTimeout})

	// Core services
	resolver := services.NewSectionResolver(imageStore, nil)
	submitter := services.NewSubmitter(newsRepo, resolver)
	newsService := services.NewNewsService(newsRepo, submitter)
	draftService := services.NewDraftService(newsRepo, submitter)
	authService := services.NewAuthService(config.AdminUsername, config.AdminPasswordHash, config.JWTSecret, config.JWTExpiration)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, int(config.JWTExpiration.Seconds()), httpHelper)
	newsHandler := handlers.NewNewsHandler(newsService, httpHelper)
	draftHandler := handlers.NewDraftHandler(draftService, httpHelper)
	mediaHandler := handlers.NewMediaHandler(imageStore, httpHelper)

	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.GET("/verify", authHandler.Verify)
			auth.POST("/logout", authHandler.Logout)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthRequired(authService))
		{
			news := protected.Group("/news")
			{
				news.GET("", newsHandler.GetNews)
				news.GET("/:id", newsHandler.GetNewsItem)
				news.POST("", newsHandler.CreateNews)
				news.PUT("/:id", newsHandler.UpdateNews)
				news.DELETE("/:id", newsHandler.DeleteNews)
			}

			drafts := protected.Group("/drafts")
			{
				drafts.POST("", draftHandler.OpenDraft)
				drafts.GET("/:id", draftHandler.GetDraft)
				drafts.PUT("/:id", draftHandler.UpdateDraft)
				drafts.DELETE("/:id", draftHandler.DiscardDraft)
				drafts.POST("/:id/sections", draftHandler.AddSection)
				drafts.PUT("/:id/sections/:index", draftHandler.EditSection)
				drafts.DELETE("/:id/sections/:index", draftHandler.DeleteSection)
				drafts.POST("/:id/reset", draftHandler.ResetDraft)
				drafts.POST("/:id/submit", draftHandler.SubmitDraft)
			}

			protected.POST("/media", mediaHandler.UploadImage)
		}
	}

	log.Printf("Server starting on port %s", config.Port)
	log.Fatal(http.ListenAndServe(":"+config.Port, router))
}
