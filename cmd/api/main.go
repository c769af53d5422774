package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "github.com/tobias-homewood/jobly/docs"
	"github.com/tobias-homewood/jobly/internal/config"
	"github.com/tobias-homewood/jobly/internal/database"
	"github.com/tobias-homewood/jobly/internal/handlers"
	"github.com/tobias-homewood/jobly/internal/services"
)

// @title Jobly API
// @version 1.0
// @description Careers board backend: companies, jobs, users and applications.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}
	cfg := config.Load()

	// 2. Database Connection
	db := database.Connect(cfg)

	// 3. Initialize Core Services (Dependencies)
	companyService := services.NewCompanyService(db)
	jobService := services.NewJobService(db)
	userService := services.NewUserService(db, cfg.BcryptCost)

	// 4. Initialize Handlers
	authHandler := handlers.NewAuthHandler(userService, cfg.SecretKey)
	companyHandler := handlers.NewCompanyHandler(companyService)
	jobHandler := handlers.NewJobHandler(jobService)
	userHandler := handlers.NewUserHandler(userService, cfg.SecretKey)

	// 5. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 6. Define Routes
	handlers.RegisterRoutes(r, cfg.SecretKey, authHandler, companyHandler, jobHandler, userHandler)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("🚀 Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
