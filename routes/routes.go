package routes

import (
	"strings"

	"github.com/1bintangnaufal/lakoe-personal/controllers"
	"github.com/1bintangnaufal/lakoe-personal/models"
	"github.com/1bintangnaufal/lakoe-personal/services"
	"github.com/1bintangnaufal/lakoe-personal/services/logger"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// registerValidators menambah rule binding kustom untuk dto.
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("withdrawstatus", func(fl validator.FieldLevel) bool {
			status := models.WithdrawalStatus(strings.ToUpper(fl.Field().String()))
			return status.Valid()
		})
	}
}

// SetupRoutes mendaftarkan seluruh endpoint aplikasi.
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {
	registerValidators()

	withdrawalService := services.NewWithdrawalService(services.WithdrawalServiceOptions{
		DB:     db,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	})
	productService := services.NewProductService(db)

	withdrawalController := controllers.NewWithdrawalController(db, redisCli, cld, m, withdrawalService)
	productController := controllers.NewProductController(db, cld, productService)
	paymentController := controllers.NewPaymentController(db)

	auth := router.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.POST("/register", controllers.RegisterUser)
		auth.POST("/google", controllers.AuthGoogle)
		auth.POST("/logout", controllers.Logout)
	}

	// Halaman dashboard admin memakai path lama dari aplikasi web.
	router.GET("/adminProcessing", withdrawalController.GetAdminWithdrawals)
	router.GET("/adminSuccess", withdrawalController.GetAdminWithdrawals)

	withdraw := router.Group("/withdraw")
	{
		withdraw.POST("", withdrawalController.CreateWithdrawal)
		withdraw.GET("/:id", withdrawalController.GetWithdrawal)
		withdraw.PATCH("/status", withdrawalController.UpdateWithdrawalStatus)
		withdraw.POST("/attachment", withdrawalController.CreateWithdrawalAttachment)
	}

	product := router.Group("/product")
	{
		product.POST("/add", productController.CreateProduct)
		product.GET("", productController.GetProducts)
		product.GET("/search", productController.SearchProducts)
	}

	payment := router.Group("/payment")
	{
		payment.GET("/:orderId", paymentController.GetPaymentConfirmation)
		payment.POST("/:orderId/confirm", paymentController.ConfirmPayment)
	}
}
