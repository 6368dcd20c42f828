package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"buchverein_backend/internals/configs"
	buchModel "buchverein_backend/internals/features/buch/model"
	vereinModel "buchverein_backend/internals/features/verein/model"
)

var DB *gorm.DB

// ConnectDB opens the PostgreSQL pool and hands the handle back so that
// controllers/services get it injected instead of reading a global.
func ConnectDB() *gorm.DB {
	log.Println("[INFO] connecting to PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "disable")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=buchverein&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("[ERROR] DB connect failed: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
	return db
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("[WARN] pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates/updates the tables for both entity families.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&buchModel.BuchModel{},
		&buchModel.TitelModel{},
		&buchModel.AbbildungModel{},
		&buchModel.BuchFileModel{},
		&vereinModel.VereinModel{},
		&vereinModel.StadionModel{},
		&vereinModel.SpielerModel{},
		&vereinModel.LogoFileModel{},
	)
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
