package config

import (
	"fmt"
	"os"

	"github.com/1bintangnaufal/lakoe-personal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB adalah koneksi GORM global, diisi oleh ConnectDatabase.
var DB *gorm.DB

// ConnectDatabase membuka koneksi Postgres dan menjalankan auto-migrate.
func ConnectDatabase() error {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"), os.Getenv("DB_PORT"))
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("gagal membuka koneksi database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Store{},
		&models.Withdrawal{},
		&models.BankAccount{},
		&models.Attachment{},
		&models.Product{},
		&models.Order{},
	); err != nil {
		return fmt.Errorf("gagal migrasi database: %w", err)
	}

	DB = db
	return nil
}
