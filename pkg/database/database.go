package database

import (
	"fmt"
	"os"
	"time"

	"estatedesk-backend/internal/models"
	"estatedesk-backend/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB is the global GORM handle used by the repositories.
var DB *gorm.DB

// InitDB connects to Postgres and migrates the schema.
func InitDB(dsn string) error {
	logLevel := gormlogger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = gormlogger.Info
	}

	var db *gorm.DB
	var err error
	for i := 0; i < 5; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(logLevel),
		})
		if err == nil {
			break
		}
		logger.GlobalLogger.Errorf("Database connection failed, retrying: %v", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return fmt.Errorf("failed to connect database: %v", err)
	}

	if err := Migrate(db); err != nil {
		return err
	}

	DB = db
	logger.GlobalLogger.Println("Database connected successfully")
	return nil
}

// Migrate runs schema migration for all persisted models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.PropertyImage{},
		&models.Client{},
		&models.News{},
		&models.Inquiry{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %v", err)
	}
	return nil
}

// CloseDB closes the underlying sql.DB connection pool.
func CloseDB() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		logger.GlobalLogger.Errorf("Error getting database handle: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.GlobalLogger.Errorf("Error closing database: %v", err)
	} else {
		logger.GlobalLogger.Println("Database connection closed")
	}
}
