package services

import "errors"

// TransferFee adalah biaya transfer tetap untuk setiap penarikan saldo.
const TransferFee int64 = 10000

// ErrInvalidAmount dikembalikan saat jumlah penarikan bukan bilangan non-negatif.
var ErrInvalidAmount = errors.New("jumlah penarikan tidak valid")

// WithdrawalFee adalah rincian potongan satu penarikan saldo.
type WithdrawalFee struct {
	Tax         int64 `json:"tax"`
	TransferFee int64 `json:"transferFee"`
	NetPayout   int64 `json:"netPayout"`
}

// ComputeWithdrawalFee menghitung biaya admin (1% dari jumlah penarikan, dibulatkan
// ke bawah) dan saldo yang diterima setelah dipotong biaya transfer dan biaya admin.
func ComputeWithdrawalFee(amount int64) (WithdrawalFee, error) {
	if amount < 0 {
		return WithdrawalFee{}, ErrInvalidAmount
	}

	tax := amount * 1 / 100
	return WithdrawalFee{
		Tax:         tax,
		TransferFee: TransferFee,
		NetPayout:   amount - TransferFee - tax,
	}, nil
}
