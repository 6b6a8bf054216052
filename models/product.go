package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID           string         `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	StoreID      string         `gorm:"index" json:"store_id"`
	Store        Store          `gorm:"foreignKey:StoreID" json:"-"`
	Name         string         `json:"name"`
	Slug         string         `gorm:"uniqueIndex" json:"slug"`
	Description  string         `json:"description"`
	Category     string         `json:"category"`
	Price        int64          `json:"price"`
	Stock        int            `json:"stock"`
	Sku          string         `json:"sku"`
	MinimumOrder int            `json:"minimum_order"`
	// Dimensi untuk ongkir: berat dalam gram, ukuran dalam cm.
	Weight   int     `json:"weight"`
	Length   float64 `json:"length"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	URL      string  `json:"url"`
	URL2     string  `json:"url2"`
	IsActive bool    `gorm:"default:true" json:"is_active"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
