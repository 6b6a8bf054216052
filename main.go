package main

import (
	"log"
	"net/http"
	"os"

	"github.com/1bintangnaufal/lakoe-personal/config"
	_ "github.com/1bintangnaufal/lakoe-personal/docs"
	"github.com/1bintangnaufal/lakoe-personal/jobs"
	"github.com/1bintangnaufal/lakoe-personal/routes"
	"github.com/1bintangnaufal/lakoe-personal/services"
	"github.com/1bintangnaufal/lakoe-personal/services/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Gagal inisialisasi aplikasi: %v", err)
	}

	withdrawalService := services.NewWithdrawalService(services.WithdrawalServiceOptions{
		DB:     config.DB,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	})
	jobs.SetWithdrawalService(withdrawalService)

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Gagal inisialisasi cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)
	config.InitSwagger(router)

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Printf("Server berjalan di port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Gagal menjalankan server: %v", err)
	}
}
