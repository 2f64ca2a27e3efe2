package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"sproutly/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	// DB is the primary (remote) store.
	DB *gorm.DB
	// LocalDB is the on-device sqlite store used for guest sessions and as
	// the write-failure fallback for stats snapshots.
	LocalDB *gorm.DB
)

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.UserMetrics{},
		&models.NutritionGoals{},
		&models.Meal{},
		&models.MealItem{},
		&models.DailyWaterLog{},
		&models.SelectedProgram{},
		&models.StatsRecord{},
		&models.UserDevice{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

func InitLocalDB() {
	path := os.Getenv("LOCAL_DB_PATH")
	if path == "" {
		path = "./data/sproutly-local.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Fatalf("Failed to create local store directory: %v", err)
	}

	var err error
	LocalDB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open local store: %v", err)
	}

	if err := LocalDB.AutoMigrate(&models.LocalRecord{}); err != nil {
		log.Fatalf("Local store migrate failed: %v", err)
	}
}
