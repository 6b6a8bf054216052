package services

import (
	"fmt"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// UserInfo adalah isi claim "userinfo" pada access token.
type UserInfo struct {
	UserID string `json:"userid"`
	Role   int    `json:"role"`
}

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateToken membuat access token dengan masa berlaku dalam menit.
func GenerateToken(info UserInfo, minutes int) (string, error) {
	claims := jwt.MapClaims{
		"userinfo": map[string]interface{}{
			"userid": info.UserID,
			"role":   info.Role,
		},
		"exp": time.Now().Add(time.Duration(minutes) * time.Minute).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// GetUserIDFromToken memverifikasi token dan mengembalikan userID beserta role.
func GetUserIDFromToken(tokenString string) (string, int, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("metode signing tidak dikenal: %v", t.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return "", 0, fmt.Errorf("token tidak valid: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", 0, fmt.Errorf("claims token tidak valid")
	}

	userInfo, ok := claims["userinfo"].(map[string]interface{})
	if !ok {
		return "", 0, fmt.Errorf("userinfo tidak ada di claims token")
	}

	userID, okID := userInfo["userid"].(string)
	if !okID || userID == "" {
		return "", 0, fmt.Errorf("userid tidak ada di userinfo")
	}

	role, okRole := userInfo["role"].(float64)
	if !okRole {
		return "", 0, fmt.Errorf("role tidak ada di userinfo")
	}

	return userID, int(role), nil
}
