package services

import (
	"errors"
	"strings"

	"github.com/1bintangnaufal/lakoe-personal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrEmailTaken dikembalikan saat email sudah terdaftar.
var ErrEmailTaken = errors.New("email sudah terdaftar")

// CreateUser mendaftarkan user baru dengan password ter-hash.
func CreateUser(db *gorm.DB, user models.User) (models.User, error) {
	user.Email = strings.ToLower(user.Email)

	var existing models.User
	if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return models.User{}, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user.Password = string(hashed)

	if user.Role == 0 {
		user.Role = models.RoleBuyer
	}

	if err := db.Create(&user).Error; err != nil {
		return models.User{}, err
	}

	// Role toko langsung mendapat toko kosong agar dashboard-nya bisa dibuka.
	if user.Role == models.RoleStore {
		store := models.Store{
			UserID: user.ID,
			Name:   user.Name,
		}
		if err := db.Create(&store).Error; err != nil {
			return models.User{}, err
		}
		user.Store = &store
	}

	return user, nil
}

// CreateGoogleUser membuat user dari payload login Google yang sudah terverifikasi.
func CreateGoogleUser(db *gorm.DB, name, email, picture string) (models.User, error) {
	user := models.User{
		Name:       name,
		Email:      strings.ToLower(email),
		Avatar:     picture,
		Role:       models.RoleBuyer,
		IsVerified: true,
	}
	if err := db.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}
