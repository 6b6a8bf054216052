package config

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// InitWebSocket mendaftarkan endpoint /ws untuk broadcast notifikasi dashboard.
func InitWebSocket(router *gin.Engine, m *melody.Melody) {
	router.GET("/ws", func(c *gin.Context) {
		if err := m.HandleRequest(c.Writer, c.Request); err != nil {
			log.Printf("Gagal menangani koneksi websocket: %v", err)
		}
	})

	m.HandleConnect(func(s *melody.Session) {
		log.Printf("Dashboard terhubung: %s", s.Request.RemoteAddr)
	})
}
