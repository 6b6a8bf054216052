package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response adalah bentuk standar semua balasan API.
type Response struct {
	Code int         `json:"code"`
	Mess string      `json:"mess"`
	Data interface{} `json:"data,omitempty"`
}

// Success mengembalikan response berhasil.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Berhasil",
		Data: data,
	})
}

// BadRequest mengembalikan response data tidak valid.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// ValidationError mengembalikan response gagal validasi.
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// Unauthorized mengembalikan response belum login.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "Belum terautentikasi",
	})
}

// Forbidden mengembalikan response tidak punya akses.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: "Tidak punya hak akses",
	})
}

// NotFound mengembalikan response data tidak ditemukan.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: "Data tidak ditemukan",
	})
}

// Conflict mengembalikan response perubahan status yang tidak diizinkan.
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Response{
		Code: 0,
		Mess: message,
	})
}

// BadGateway mengembalikan response kegagalan layanan eksternal.
func BadGateway(c *gin.Context, message string) {
	c.JSON(http.StatusBadGateway, Response{
		Code: 0,
		Mess: message,
	})
}

// ServerError mengembalikan response kesalahan server.
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Terjadi kesalahan pada server",
	})
}
