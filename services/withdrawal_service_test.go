package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/1bintangnaufal/lakoe-personal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Store{},
		&models.Withdrawal{},
		&models.BankAccount{},
		&models.Attachment{},
		&models.Product{},
		&models.Order{},
	))

	return db
}

func newTestService(t *testing.T) (*WithdrawalService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewWithdrawalService(WithdrawalServiceOptions{DB: db}), db
}

func createTestStore(t *testing.T, db *gorm.DB, balance int64) models.Store {
	t.Helper()
	store := models.Store{Name: "Dumbways Store", Balance: balance}
	require.NoError(t, db.Create(&store).Error)
	return store
}

func createTestWithdrawal(t *testing.T, svc *WithdrawalService, db *gorm.DB, amount int64) *models.Withdrawal {
	t.Helper()
	store := createTestStore(t, db, amount*2)

	withdrawal, err := svc.CreateWithdrawal(context.Background(), CreateWithdrawalInput{
		StoreID:       store.ID,
		Amount:        amount,
		Bank:          "BNI",
		AccountNumber: "0460541966",
		AccountName:   "Adira Salahudi",
	})
	require.NoError(t, err)
	return withdrawal
}

func TestCreateWithdrawal(t *testing.T) {
	svc, db := newTestService(t)

	withdrawal := createTestWithdrawal(t, svc, db, 1_000_000)

	assert.NotEmpty(t, withdrawal.ID)
	assert.Equal(t, models.WithdrawalPending, withdrawal.Status)
	assert.Equal(t, int64(1_000_000), withdrawal.Amount)
	assert.Equal(t, "BNI", withdrawal.BankAccount.Bank)
	assert.Equal(t, "Adira Salahudi", withdrawal.BankAccount.AccountName)
}

func TestCreateWithdrawalValidation(t *testing.T) {
	svc, db := newTestService(t)
	store := createTestStore(t, db, 100_000)

	_, err := svc.CreateWithdrawal(context.Background(), CreateWithdrawalInput{
		StoreID: store.ID, Amount: 0, Bank: "BNI", AccountNumber: "1", AccountName: "A",
	})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.CreateWithdrawal(context.Background(), CreateWithdrawalInput{
		StoreID: store.ID, Amount: 50_000, Bank: "", AccountNumber: "1", AccountName: "A",
	})
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = svc.CreateWithdrawal(context.Background(), CreateWithdrawalInput{
		StoreID: store.ID, Amount: 500_000, Bank: "BNI", AccountNumber: "1", AccountName: "A",
	})
	assert.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestGetWithdrawalIdempotent(t *testing.T) {
	svc, db := newTestService(t)
	created := createTestWithdrawal(t, svc, db, 750_000)

	first, err := svc.GetWithdrawal(context.Background(), created.ID)
	require.NoError(t, err)
	second, err := svc.GetWithdrawal(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Amount, second.Amount)
	assert.Equal(t, first.BankAccount, second.BankAccount)
}

func TestGetWithdrawalNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetWithdrawal(context.Background(), "tidak-ada")
	assert.ErrorIs(t, err, ErrWithdrawalNotFound)
}

func TestUpdateStatusLifecycle(t *testing.T) {
	svc, db := newTestService(t)
	withdrawal := createTestWithdrawal(t, svc, db, 1_000_000)

	updated, err := svc.UpdateStatus(context.Background(), withdrawal.ID, models.WithdrawalProcessing, "")
	require.NoError(t, err)
	assert.Equal(t, models.WithdrawalProcessing, updated.Status)

	// Kembali ke PENDING harus ditolak.
	_, err = svc.UpdateStatus(context.Background(), withdrawal.ID, models.WithdrawalPending, "")
	var invalid *models.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, models.WithdrawalProcessing, invalid.From)
	assert.Equal(t, models.WithdrawalPending, invalid.To)

	updated, err = svc.UpdateStatus(context.Background(), withdrawal.ID, models.WithdrawalSuccess, "")
	require.NoError(t, err)
	assert.Equal(t, models.WithdrawalSuccess, updated.Status)

	// SUCCESS bersifat terminal.
	_, err = svc.UpdateStatus(context.Background(), withdrawal.ID, models.WithdrawalDeclined, "")
	require.ErrorAs(t, err, &invalid)
}

func TestUpdateStatusDeclineStoresReason(t *testing.T) {
	svc, db := newTestService(t)
	withdrawal := createTestWithdrawal(t, svc, db, 300_000)

	updated, err := svc.UpdateStatus(context.Background(), withdrawal.ID, models.WithdrawalDeclined, "Rekening tidak valid")
	require.NoError(t, err)
	assert.Equal(t, models.WithdrawalDeclined, updated.Status)
	assert.Equal(t, "Rekening tidak valid", updated.DeclineReason)
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	svc, db := newTestService(t)
	withdrawal := createTestWithdrawal(t, svc, db, 300_000)

	_, err := svc.UpdateStatus(context.Background(), withdrawal.ID, models.WithdrawalStatus("CANCELLED"), "")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestUpdateStatusAmountUnchanged(t *testing.T) {
	svc, db := newTestService(t)
	withdrawal := createTestWithdrawal(t, svc, db, 1_000_000)

	updated, err := svc.UpdateStatus(context.Background(), withdrawal.ID, models.WithdrawalProcessing, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000), updated.Amount)
}

// Dua admin menekan "proses" untuk penarikan yang sama: hanya satu update yang
// boleh menang, yang kedua gagal karena status sudah berpindah.
func TestUpdateStatusConditionalOnCurrentState(t *testing.T) {
	svc, db := newTestService(t)
	withdrawal := createTestWithdrawal(t, svc, db, 1_000_000)

	_, err := svc.UpdateStatus(context.Background(), withdrawal.ID, models.WithdrawalProcessing, "")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), withdrawal.ID, models.WithdrawalProcessing, "")
	var invalid *models.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, models.WithdrawalProcessing, invalid.From)
	assert.Equal(t, models.WithdrawalProcessing, invalid.To)
}

func TestCreateAttachment(t *testing.T) {
	svc, db := newTestService(t)
	withdrawal := createTestWithdrawal(t, svc, db, 1_000_000)

	_, err := svc.UpdateStatus(context.Background(), withdrawal.ID, models.WithdrawalProcessing, "")
	require.NoError(t, err)

	attachment, err := svc.CreateAttachment(context.Background(), "https://res.cloudinary.com/demo/bukti.png", withdrawal.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, attachment.ID)
	assert.Equal(t, withdrawal.ID, attachment.WithdrawalID)
}

func TestCreateAttachmentMissingField(t *testing.T) {
	svc, db := newTestService(t)
	withdrawal := createTestWithdrawal(t, svc, db, 1_000_000)

	_, err := svc.CreateAttachment(context.Background(), "", withdrawal.ID)
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = svc.CreateAttachment(context.Background(), "https://res.cloudinary.com/demo/bukti.png", "")
	assert.ErrorIs(t, err, ErrMissingField)

	// Status tidak boleh berubah karena kegagalan di atas.
	current, err := svc.GetWithdrawal(context.Background(), withdrawal.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WithdrawalPending, current.Status)
}

func TestCreateAttachmentRejectedWhilePending(t *testing.T) {
	svc, db := newTestService(t)
	withdrawal := createTestWithdrawal(t, svc, db, 1_000_000)

	_, err := svc.CreateAttachment(context.Background(), "https://res.cloudinary.com/demo/bukti.png", withdrawal.ID)
	assert.ErrorIs(t, err, ErrAttachmentPending)
}

func TestCreateAttachmentIdempotent(t *testing.T) {
	svc, db := newTestService(t)
	withdrawal := createTestWithdrawal(t, svc, db, 1_000_000)

	_, err := svc.UpdateStatus(context.Background(), withdrawal.ID, models.WithdrawalProcessing, "")
	require.NoError(t, err)

	url := "https://res.cloudinary.com/demo/bukti.png"
	first, err := svc.CreateAttachment(context.Background(), url, withdrawal.ID)
	require.NoError(t, err)

	second, err := svc.CreateAttachment(context.Background(), url, withdrawal.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.Attachment{}).Where("withdrawal_id = ?", withdrawal.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestListWithdrawals(t *testing.T) {
	svc, db := newTestService(t)
	first := createTestWithdrawal(t, svc, db, 200_000)
	second := createTestWithdrawal(t, svc, db, 900_000)

	withdrawals, err := svc.ListWithdrawals(context.Background())
	require.NoError(t, err)
	require.Len(t, withdrawals, 2)

	ids := []string{withdrawals[0].ID, withdrawals[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)

	// Join rekening bank dan toko ikut termuat.
	for _, w := range withdrawals {
		assert.NotEmpty(t, w.BankAccount.AccountNumber)
		assert.NotEmpty(t, w.Store.Name)
	}
}

func TestCountByStatus(t *testing.T) {
	svc, db := newTestService(t)
	first := createTestWithdrawal(t, svc, db, 200_000)
	createTestWithdrawal(t, svc, db, 900_000)

	_, err := svc.UpdateStatus(context.Background(), first.ID, models.WithdrawalProcessing, "")
	require.NoError(t, err)

	counts, err := svc.CountByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[models.WithdrawalPending])
	assert.Equal(t, int64(1), counts[models.WithdrawalProcessing])
	assert.Equal(t, int64(0), counts[models.WithdrawalSuccess])
}
