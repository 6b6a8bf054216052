package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeWithdrawalFee(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   WithdrawalFee
	}{
		{
			name:   "satu juta rupiah",
			amount: 1_000_000,
			want:   WithdrawalFee{Tax: 10_000, TransferFee: 10_000, NetPayout: 980_000},
		},
		{
			name:   "nol",
			amount: 0,
			want:   WithdrawalFee{Tax: 0, TransferFee: 10_000, NetPayout: -10_000},
		},
		{
			name:   "pajak dibulatkan ke bawah",
			amount: 199,
			want:   WithdrawalFee{Tax: 1, TransferFee: 10_000, NetPayout: -9_802},
		},
		{
			name:   "lima ratus ribu",
			amount: 500_000,
			want:   WithdrawalFee{Tax: 5_000, TransferFee: 10_000, NetPayout: 485_000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeWithdrawalFee(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeWithdrawalFeeNegativeAmount(t *testing.T) {
	_, err := ComputeWithdrawalFee(-1)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestComputeWithdrawalFeeProperties(t *testing.T) {
	for amount := int64(0); amount <= 2_000_000; amount += 37_519 {
		fee, err := ComputeWithdrawalFee(amount)
		require.NoError(t, err)

		assert.Equal(t, amount/100, fee.Tax, "tax untuk amount %d", amount)
		assert.Equal(t, TransferFee, fee.TransferFee)
		assert.Equal(t, amount-TransferFee-fee.Tax, fee.NetPayout, "netPayout untuk amount %d", amount)
	}
}
