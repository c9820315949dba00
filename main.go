package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/greenacres/invoicing/config"
	"github.com/greenacres/invoicing/handlers"
	"github.com/greenacres/invoicing/invoices"
	"github.com/greenacres/invoicing/middleware"
	"github.com/greenacres/invoicing/repository"
)

const listCacheTTL = 5 * time.Minute

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to access connection pool: %v", err)
	}
	defer sqlDB.Close()

	// Setup router
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "invoicing-api",
		})
	})

	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	invoiceService := invoices.NewService(invoiceRepo, invoices.NewListCache(listCacheTTL))

	authHandler := handlers.NewAuthHandler(userRepo, cfg)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	customerHandler := handlers.NewCustomerHandler(customerRepo)

	// API routes
	api := router.Group("/api/v1")

	// Auth endpoints stay outside the gate
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
	}

	// Everything else requires an authenticated identity
	protected := api.Group("")
	protected.Use(middleware.JwtAuthMiddleware(cfg))
	{
		protected.GET("/customers", customerHandler.List)

		protected.GET("/invoices", invoiceHandler.List)
		protected.GET("/invoices/:id", invoiceHandler.Get)
		protected.POST("/invoices", invoiceHandler.Create)
		protected.POST("/invoices/:id", invoiceHandler.Update)
		protected.POST("/invoices/:id/delete", invoiceHandler.Delete)
	}

	// Start server
	log.Printf("Starting invoicing API server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
