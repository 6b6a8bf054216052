package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order menyimpan data yang dibutuhkan halaman konfirmasi pembayaran:
// total transfer = price + kode unik 3 digit.
type Order struct {
	ID        string         `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	BuyerID   string         `gorm:"index" json:"buyer_id"`
	ProductID string         `gorm:"index" json:"product_id"`
	Product   Product        `gorm:"foreignKey:ProductID" json:"-"`
	Price     int64          `json:"price"`
	// UniqueCode 1-999, pembeda transfer antar order.
	UniqueCode  int    `json:"unique_code"`
	Payment     string `json:"payment"`
	NoPayment   string `json:"no_payment"`
	AccountName string `json:"account_name"`
	IsPaid      bool   `json:"is_paid"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
