package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/ratemybandeco/backend/config"
	"github.com/ratemybandeco/backend/middlewares"
	"github.com/ratemybandeco/backend/models"
	"github.com/ratemybandeco/backend/router"
	"github.com/ratemybandeco/backend/services"
	"github.com/ratemybandeco/backend/utils"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()

	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	mailer := services.NewSMTPMailer(cfg)

	// Global limiter: 50 requests per second per IP.
	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r := router.SetupRouter(db, mailer, cfg)
	r.Use(rateLimiter.RateLimit())

	go func() {
		for range time.Tick(time.Hour) {
			utils.CleanupBlacklist()
		}
	}()

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Menu{},
		&models.Review{},
		&models.Report{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
