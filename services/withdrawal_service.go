package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/1bintangnaufal/lakoe-personal/models"
	"github.com/1bintangnaufal/lakoe-personal/services/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrMissingField dikembalikan saat field wajib kosong.
	ErrMissingField = errors.New("field wajib tidak boleh kosong")

	// ErrWithdrawalNotFound dikembalikan saat id penarikan tidak ditemukan.
	ErrWithdrawalNotFound = errors.New("penarikan tidak ditemukan")

	// ErrUnknownStatus dikembalikan saat status yang diminta bukan anggota enum.
	ErrUnknownStatus = errors.New("status penarikan tidak dikenal")

	// ErrInsufficientBalance dikembalikan saat jumlah penarikan melebihi saldo toko.
	ErrInsufficientBalance = errors.New("jumlah penarikan melebihi saldo toko")

	// ErrAttachmentPending dikembalikan saat bukti transfer diunggah sebelum
	// penarikan mulai diproses.
	ErrAttachmentPending = errors.New("bukti transfer belum bisa diunggah saat status masih PENDING")
)

type WithdrawalServiceOptions struct {
	DB     *gorm.DB
	Logger *logger.Logger
}

// WithdrawalService memuat alur persetujuan penarikan saldo: pembuatan permintaan,
// perpindahan status oleh admin, pencatatan bukti transfer, dan query daftar/detail.
type WithdrawalService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWithdrawalService(opts WithdrawalServiceOptions) *WithdrawalService {
	return &WithdrawalService{
		db:  opts.DB,
		log: opts.Logger,
	}
}

type CreateWithdrawalInput struct {
	StoreID       string
	Amount        int64
	Bank          string
	AccountNumber string
	AccountName   string
}

// CreateWithdrawal membuat permintaan penarikan baru berstatus PENDING. Rekening
// bank disalin ke baris milik penarikan itu sendiri dan tidak berubah setelahnya.
func (s *WithdrawalService) CreateWithdrawal(ctx context.Context, input CreateWithdrawalInput) (*models.Withdrawal, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if strings.TrimSpace(input.Bank) == "" ||
		strings.TrimSpace(input.AccountNumber) == "" ||
		strings.TrimSpace(input.AccountName) == "" {
		return nil, ErrMissingField
	}

	var withdrawal models.Withdrawal
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var store models.Store
		if err := tx.First(&store, "id = ?", input.StoreID).Error; err != nil {
			return err
		}

		if input.Amount > store.Balance {
			return ErrInsufficientBalance
		}

		withdrawal = models.Withdrawal{
			StoreID: store.ID,
			Amount:  input.Amount,
			Status:  models.WithdrawalPending,
		}
		if err := tx.Create(&withdrawal).Error; err != nil {
			return err
		}

		account := models.BankAccount{
			WithdrawalID:  withdrawal.ID,
			Bank:          input.Bank,
			AccountNumber: input.AccountNumber,
			AccountName:   input.AccountName,
		}
		if err := tx.Create(&account).Error; err != nil {
			return err
		}

		withdrawal.BankAccount = account
		withdrawal.Store = store
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &withdrawal, nil
}

// ListWithdrawals mengembalikan semua penarikan beserta rekening bank, toko,
// dan bukti transfernya, yang terbaru lebih dulu.
func (s *WithdrawalService) ListWithdrawals(ctx context.Context) ([]models.Withdrawal, error) {
	var withdrawals []models.Withdrawal
	err := s.db.WithContext(ctx).
		Preload("BankAccount").
		Preload("Store").
		Preload("Attachment").
		Order("created_at DESC").
		Find(&withdrawals).Error
	if err != nil {
		return nil, err
	}
	return withdrawals, nil
}

// GetWithdrawal mengembalikan satu penarikan berdasarkan id.
func (s *WithdrawalService) GetWithdrawal(ctx context.Context, id string) (*models.Withdrawal, error) {
	var withdrawal models.Withdrawal
	err := s.db.WithContext(ctx).
		Preload("BankAccount").
		Preload("Store").
		Preload("Attachment").
		First(&withdrawal, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrWithdrawalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &withdrawal, nil
}

// UpdateStatus memindahkan status penarikan lewat update bersyarat: baris hanya
// berubah bila status saat ini masih sama dengan yang dibaca, sehingga dua admin
// yang menekan tombol bersamaan tidak saling menimpa.
func (s *WithdrawalService) UpdateStatus(ctx context.Context, id string, target models.WithdrawalStatus, reason string) (*models.Withdrawal, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, target)
	}

	current, err := s.GetWithdrawal(ctx, id)
	if err != nil {
		return nil, err
	}

	if !models.CanTransition(current.Status, target) {
		return nil, &models.InvalidTransitionError{From: current.Status, To: target}
	}

	updates := map[string]interface{}{"status": target}
	if target == models.WithdrawalDeclined {
		updates["decline_reason"] = reason
	}

	res := s.db.WithContext(ctx).
		Model(&models.Withdrawal{}).
		Where("id = ? AND status = ?", id, current.Status).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Admin lain sudah memindahkan status lebih dulu.
		latest, err := s.GetWithdrawal(ctx, id)
		if err != nil {
			return nil, err
		}
		if s.log != nil {
			s.log.Warnf("update status kalah balapan: id=%s target=%s status sekarang=%s", id, target, latest.Status)
		}
		return nil, &models.InvalidTransitionError{From: latest.Status, To: target}
	}

	return s.GetWithdrawal(ctx, id)
}

// CreateAttachment mencatat URL bukti transfer untuk satu penarikan. Aman diulang:
// pasangan (withdrawalID, imageURL) yang sama mengembalikan baris yang sudah ada,
// bukan baris baru. Status penarikan tidak pernah diubah dari sini.
func (s *WithdrawalService) CreateAttachment(ctx context.Context, imageURL, withdrawalID string) (*models.Attachment, error) {
	if strings.TrimSpace(imageURL) == "" || strings.TrimSpace(withdrawalID) == "" {
		return nil, ErrMissingField
	}

	withdrawal, err := s.GetWithdrawal(ctx, withdrawalID)
	if err != nil {
		return nil, err
	}

	// Invariant: bukti transfer tidak boleh ada selama status masih PENDING.
	if withdrawal.Status == models.WithdrawalPending {
		return nil, ErrAttachmentPending
	}

	attachment := models.Attachment{
		WithdrawalID: withdrawalID,
		ImageURL:     imageURL,
	}
	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&attachment)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var existing models.Attachment
		err := s.db.WithContext(ctx).
			First(&existing, "withdrawal_id = ? AND image_url = ?", withdrawalID, imageURL).Error
		if err != nil {
			return nil, err
		}
		return &existing, nil
	}

	return &attachment, nil
}

// CountByStatus menghitung jumlah penarikan per status untuk ringkasan dashboard.
func (s *WithdrawalService) CountByStatus(ctx context.Context) (map[models.WithdrawalStatus]int64, error) {
	type row struct {
		Status models.WithdrawalStatus
		Total  int64
	}

	var rows []row
	err := s.db.WithContext(ctx).
		Model(&models.Withdrawal{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.WithdrawalStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Total
	}
	return counts, nil
}
