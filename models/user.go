package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin = 1
	RoleStore = 2
	RoleBuyer = 3
)

type User struct {
	ID          string         `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Name        string         `json:"name"`
	Email       string         `gorm:"uniqueIndex" json:"email"`
	Password    string         `json:"-"`
	PhoneNumber string         `json:"phone_number"`
	Role        int            `json:"role"` // 1: admin, 2: store, 3: buyer
	Avatar      string         `json:"avatar"`
	IsVerified  bool           `json:"is_verified"`
	Store       *Store         `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
