package controllers

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/1bintangnaufal/lakoe-personal/config"
	"github.com/1bintangnaufal/lakoe-personal/dto"
	"github.com/1bintangnaufal/lakoe-personal/models"
	"github.com/1bintangnaufal/lakoe-personal/response"
	"github.com/1bintangnaufal/lakoe-personal/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

func convertToUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		Avatar:      user.Avatar,
		IsVerified:  user.IsVerified,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Data login tidak valid")
		return
	}

	input.Identifier = strings.ToLower(input.Identifier)

	var user models.User
	if err := config.DB.Where("email = ? OR phone_number = ?", input.Identifier, input.Identifier).First(&user).Error; err != nil {
		response.BadRequest(c, "Email atau kata sandi salah")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.BadRequest(c, "Email atau kata sandi salah")
		return
	}

	accessToken, err := services.GenerateToken(services.UserInfo{
		UserID: user.ID,
		Role:   user.Role,
	}, 60*24*3)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"user_info":   convertToUserResponse(user),
		"accessToken": accessToken,
	})
}

func RegisterUser(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Data pendaftaran tidak valid")
		return
	}

	user := models.User{
		Name:        input.Name,
		Email:       input.Email,
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
		Role:        input.Role,
	}

	createdUser, err := services.CreateUser(config.DB, user)
	if errors.Is(err, services.ErrEmailTaken) {
		response.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"mess": "Pendaftaran berhasil",
		"data": convertToUserResponse(createdUser),
	})
}

func Logout(c *gin.Context) {
	for _, cookie := range c.Request.Cookies() {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, gin.H{"mess": "Berhasil keluar"})
}

// AuthGoogle menerima ID token Google, memverifikasinya, lalu membuat atau
// memuat user yang cocok.
func AuthGoogle(c *gin.Context) {
	var token struct {
		TokenID string `json:"tokenId" binding:"required"`
	}

	if err := c.ShouldBindJSON(&token); err != nil {
		response.BadRequest(c, "Token Google tidak dikirim")
		return
	}

	payload, err := verifyGoogleIDToken(c.Request.Context(), token.TokenID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Response{Code: 0, Mess: "Token Google tidak valid"})
		return
	}

	googleUser := dto.GoogleUser{
		Name:          payload.Claims["name"].(string),
		Email:         payload.Claims["email"].(string),
		VerifiedEmail: payload.Claims["email_verified"].(bool),
		Picture:       payload.Claims["picture"].(string),
	}

	if !googleUser.VerifiedEmail {
		response.BadRequest(c, "Email Google belum terverifikasi")
		return
	}

	var user models.User
	result := config.DB.Where("email = ?", strings.ToLower(googleUser.Email)).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		user, err = services.CreateGoogleUser(config.DB, googleUser.Name, googleUser.Email, googleUser.Picture)
		if err != nil {
			response.ServerError(c)
			return
		}
	} else if result.Error != nil {
		response.ServerError(c)
		return
	}

	accessToken, err := services.GenerateToken(services.UserInfo{
		UserID: user.ID,
		Role:   user.Role,
	}, 60*24*3)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"user_info":   convertToUserResponse(user),
		"accessToken": accessToken,
	})
}

func verifyGoogleIDToken(ctx context.Context, tokenID string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	return idtoken.Validate(ctx, tokenID, clientID)
}
