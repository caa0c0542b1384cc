package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"cause-platform/internal/auth"
	"cause-platform/internal/config"
	"cause-platform/internal/database"
	"cause-platform/internal/handlers"
	"cause-platform/internal/repository"
	"cause-platform/internal/revalidate"
	"cause-platform/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize JWT
	auth.InitJWT(cfg.App.JWTSecret)

	// Connect to database
	if err := database.Connect(cfg.GetDSN()); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.AutoMigrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Staleness signals go to the frontend's revalidation endpoint when
	// one is configured, otherwise they are discarded.
	var signaler revalidate.Signaler = revalidate.Noop{}
	if cfg.Revalidate.Endpoint != "" {
		signaler = revalidate.NewHTTPSignaler(cfg.Revalidate.Endpoint, cfg.Revalidate.Secret)
		log.Printf("Revalidation signals enabled: %s", cfg.Revalidate.Endpoint)
	}

	// Initialize repository and services
	repo := repository.NewRepository(database.GetDB())
	causeService := services.NewCauseService(repo, signaler)

	// Initialize handlers
	causeHandler := handlers.NewCauseHandler(causeService)
	moderationHandler := handlers.NewModerationHandler(causeService)

	// Set up Gin router
	router := gin.Default()

	// CORS middleware
	allowedOrigins := []string{
		"http://localhost:3000", // Local development
		"http://127.0.0.1:3000",
	}
	// Add additional frontend URL from environment if provided
	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Public cause routes
	router.GET("/api/causes", causeHandler.GetCauses)
	router.GET("/api/causes/count", causeHandler.CountCauses)
	router.GET("/api/causes/:id", causeHandler.GetCause)

	// API routes (protected)
	api := router.Group("/api")
	api.Use(auth.AuthMiddleware())
	{
		api.POST("/causes", causeHandler.CreateCause)
		api.GET("/causes/mine", causeHandler.GetMyCauses)
		api.PUT("/causes/:id", causeHandler.UpdateCause)
	}

	// Moderation routes (protected + moderator only)
	admin := router.Group("/api/admin")
	admin.Use(auth.AuthMiddleware())
	admin.Use(auth.ModeratorMiddleware())
	{
		admin.GET("/causes", moderationHandler.GetCausesForModeration)
		admin.PUT("/causes/:id/status", moderationHandler.UpdateCauseStatus)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		log.Printf("Health check: http://localhost:%s/health", cfg.Server.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with 5 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
