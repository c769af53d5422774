package database

import (
	"log"
	"os"
	"time"

	"github.com/tobias-homewood/jobly/internal/config"
	"github.com/tobias-homewood/jobly/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the Postgres connection and runs migrations.
func Connect(cfg config.Config) *gorm.DB {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{Logger: gormLogger})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	log.Println("Running Migrations...")
	if err := db.AutoMigrate(&models.Company{}, &models.Job{}, &models.User{}, &models.Application{}); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	return db
}
