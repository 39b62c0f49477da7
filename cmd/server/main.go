// @title           Vintage Cars Marketplace API
// @version         1.0.0
// @description     Backend API for a vintage-car listing marketplace: public brand and car catalog with filtering, and contact-form inquiries from prospective buyers.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"vintage-cars-backend/internal/config"
	"vintage-cars-backend/internal/database"
	"vintage-cars-backend/internal/handlers"
	"vintage-cars-backend/internal/middleware"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Run migrations
	migrator, err := database.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(); err != nil {
		migrator.Close()
		log.Fatalf("Migration failed: %v", err)
	}
	migrator.Close()
	log.Println("Migrations completed successfully")

	// Create database client
	dbClient, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database client: %v", err)
	}
	defer dbClient.Close()

	if cfg.AdminAuthBypass {
		log.Println("Warning: ADMIN_AUTH_BYPASS is enabled; admin routes accept unauthenticated requests")
	}

	// Initialize handlers
	brandsHandler := handlers.NewBrandsHandler(dbClient)
	carsHandler := handlers.NewCarsHandler(dbClient, cfg.BaseURL)
	inquiriesHandler := handlers.NewInquiriesHandler(dbClient)
	adminHandler := handlers.NewAdminHandler(dbClient)

	// Setup router
	router := gin.Default()

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	// Public catalog routes
	public := router.Group("/api/cars")
	public.GET("/brands/", brandsHandler.ListBrands)
	public.GET("/brands/:brand_id/", brandsHandler.GetBrand)
	public.GET("/", carsHandler.ListCars)
	public.GET("/:car_id/", carsHandler.GetCar)
	public.POST("/inquiries/", inquiriesHandler.CreateInquiry)

	// Admin catalog management
	admin := router.Group("/api/admin")
	admin.Use(middleware.AdminAuth(cfg))
	admin.POST("/brands", adminHandler.CreateBrand)
	admin.PUT("/brands/:brand_id", adminHandler.UpdateBrand)
	admin.DELETE("/brands/:brand_id", adminHandler.DeleteBrand)
	admin.POST("/cars", adminHandler.CreateCar)
	admin.PUT("/cars/:car_id", adminHandler.UpdateCar)
	admin.DELETE("/cars/:car_id", adminHandler.DeleteCar)
	admin.POST("/cars/:car_id/images", adminHandler.CreateCarImage)
	admin.DELETE("/images/:image_id", adminHandler.DeleteCarImage)
	admin.GET("/inquiries", adminHandler.ListInquiries)

	// CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, corsHandler); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
