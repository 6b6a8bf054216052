package controllers

import (
	"fmt"

	"github.com/1bintangnaufal/lakoe-personal/dto"
	"github.com/1bintangnaufal/lakoe-personal/models"
	"github.com/1bintangnaufal/lakoe-personal/response"
	"github.com/1bintangnaufal/lakoe-personal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) PaymentController {
	return PaymentController{DB: db}
}

// GetPaymentConfirmation menampilkan data halaman konfirmasi pembayaran:
// total transfer (harga + kode unik 3 digit) dan rekening tujuan.
func (p PaymentController) GetPaymentConfirmation(c *gin.Context) {
	var order models.Order
	if err := p.DB.Preload("Product").First(&order, "id = ?", c.Param("orderId")).Error; err != nil {
		response.NotFound(c)
		return
	}

	total := order.Price + int64(order.UniqueCode)

	response.Success(c, dto.PaymentConfirmationResponse{
		OrderID:      order.ID,
		TitleProduct: order.Product.Name,
		Price:        order.Price,
		TagPrice:     fmt.Sprintf("%03d", order.UniqueCode),
		Total:        total,
		TotalText:    services.FormatRupiah(total),
		Payment:      order.Payment,
		NoPayment:    order.NoPayment,
		AccountName:  order.AccountName,
	})
}

// ConfirmPayment menandai order sudah dibayar setelah pembeli transfer.
func (p PaymentController) ConfirmPayment(c *gin.Context) {
	userID, role, err := bearerAuth(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}
	if role != models.RoleBuyer {
		response.Forbidden(c)
		return
	}

	var order models.Order
	if err := p.DB.First(&order, "id = ?", c.Param("orderId")).Error; err != nil {
		response.NotFound(c)
		return
	}

	if order.BuyerID != userID {
		response.Forbidden(c)
		return
	}

	if err := p.DB.Model(&order).Update("is_paid", true).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"mess": "Konfirmasi pembayaran diterima"})
}
