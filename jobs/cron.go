package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/1bintangnaufal/lakoe-personal/config"
	"github.com/1bintangnaufal/lakoe-personal/models"
	"github.com/1bintangnaufal/lakoe-personal/services"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

const digestCacheKey = "withdrawals:digest"

var withdrawalService *services.WithdrawalService

// SetWithdrawalService memasang service yang dipakai job ringkasan harian.
func SetWithdrawalService(s *services.WithdrawalService) {
	withdrawalService = s
}

// InitCronJobs mendaftarkan job terjadwal lalu menjalankan scheduler.
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Ringkasan penarikan setiap tengah malam.
	if _, err := c.AddFunc("0 0 * * *", func() {
		if err := BroadcastWithdrawalDigest(m); err != nil {
			log.Printf("Job ringkasan penarikan gagal: %v", err)
		}
	}); err != nil {
		return err
	}

	c.Start()
	return nil
}

// BroadcastWithdrawalDigest menghitung jumlah penarikan per status, menyimpannya
// ke Redis, dan menyiarkannya ke dashboard yang terhubung.
func BroadcastWithdrawalDigest(m *melody.Melody) error {
	if withdrawalService == nil {
		return fmt.Errorf("withdrawal service belum dipasang")
	}

	counts, err := withdrawalService.CountByStatus(config.Ctx)
	if err != nil {
		return err
	}

	if err := services.SetToRedis(config.Ctx, config.RedisClient, digestCacheKey, counts, 24*time.Hour); err != nil {
		log.Printf("Gagal menyimpan ringkasan penarikan ke Redis: %v", err)
	}

	msg := fmt.Sprintf("Ringkasan penarikan: %d menunggu, %d diproses, %d selesai, %d ditolak",
		counts[models.WithdrawalPending], counts[models.WithdrawalProcessing],
		counts[models.WithdrawalSuccess], counts[models.WithdrawalDeclined])

	if m != nil {
		if err := m.Broadcast([]byte(msg)); err != nil {
			return err
		}
	}

	log.Println(msg)
	return nil
}
