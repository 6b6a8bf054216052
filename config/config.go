package config

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// Ctx dipakai untuk operasi Redis dan Cloudinary di seluruh aplikasi.
var Ctx = context.Background()

// InitApp memuat env, menyiapkan koneksi database, Redis, dan Cloudinary,
// lalu mengembalikan router gin beserta instance melody dan cron.
func InitApp() (*gin.Engine, *melody.Melody, *cron.Cron, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("File .env tidak ditemukan, memakai environment sistem")
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := ConnectDatabase(); err != nil {
		return nil, nil, nil, err
	}

	if rdb, err := ConnectRedis(); err != nil {
		log.Printf("Tidak bisa terhubung ke Redis: %v", err)
	} else {
		RedisClient = rdb
	}

	if err := InitCloudinary(); err != nil {
		return nil, nil, nil, err
	}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "https://lakoe.store"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	m := melody.New()
	c := cron.New()

	return router, m, c, nil
}
