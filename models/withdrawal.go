package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WithdrawalStatus adalah status penarikan saldo.
type WithdrawalStatus string

const (
	WithdrawalPending    WithdrawalStatus = "PENDING"
	WithdrawalProcessing WithdrawalStatus = "PROCESSING"
	WithdrawalSuccess    WithdrawalStatus = "SUCCESS"
	WithdrawalDeclined   WithdrawalStatus = "DECLINED"
)

func (s WithdrawalStatus) Valid() bool {
	switch s {
	case WithdrawalPending, WithdrawalProcessing, WithdrawalSuccess, WithdrawalDeclined:
		return true
	}
	return false
}

// allowedTransitions: PENDING -> PROCESSING -> SUCCESS, dan PENDING/PROCESSING -> DECLINED.
// SUCCESS dan DECLINED bersifat terminal.
var allowedTransitions = map[WithdrawalStatus][]WithdrawalStatus{
	WithdrawalPending:    {WithdrawalProcessing, WithdrawalDeclined},
	WithdrawalProcessing: {WithdrawalSuccess, WithdrawalDeclined},
}

// CanTransition melaporkan apakah perpindahan status from -> to diizinkan.
func CanTransition(from, to WithdrawalStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// InvalidTransitionError membawa pasangan status yang ditolak.
type InvalidTransitionError struct {
	From WithdrawalStatus
	To   WithdrawalStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("perpindahan status tidak valid: %s -> %s", e.From, e.To)
}

type Withdrawal struct {
	ID        string           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	DeletedAt gorm.DeletedAt   `gorm:"index" json:"-"`
	StoreID   string           `gorm:"index" json:"store_id"`
	Store     Store            `gorm:"foreignKey:StoreID" json:"-"`
	Amount    int64            `json:"amount"`
	Status    WithdrawalStatus `gorm:"type:varchar(16);default:'PENDING'" json:"status"`
	// DeclineReason hanya terisi saat status DECLINED.
	DeclineReason string      `json:"decline_reason"`
	BankAccount   BankAccount `gorm:"foreignKey:WithdrawalID" json:"-"`
	Attachment    *Attachment `gorm:"foreignKey:WithdrawalID" json:"-"`
}

func (w *Withdrawal) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if w.Status == "" {
		w.Status = WithdrawalPending
	}
	return nil
}

// BankAccount dimiliki oleh tepat satu withdrawal dan tidak berubah setelah dibuat.
type BankAccount struct {
	ID            string    `gorm:"primarykey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	WithdrawalID  string    `gorm:"uniqueIndex" json:"withdrawal_id"`
	Bank          string    `json:"bank"`
	AccountNumber string    `json:"account_number"`
	AccountName   string    `json:"account_name"`
}

func (b *BankAccount) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// Attachment adalah bukti transfer yang diunggah admin saat memproses penarikan.
type Attachment struct {
	ID           string    `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	WithdrawalID string    `gorm:"uniqueIndex:idx_attachment_withdrawal_url" json:"withdrawal_id"`
	ImageURL     string    `gorm:"uniqueIndex:idx_attachment_withdrawal_url" json:"image_url"`
}

func (a *Attachment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
