package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "Rp0"},
		{500, "Rp500"},
		{10_000, "Rp10.000"},
		{1_000_000, "Rp1.000.000"},
		{980_000, "Rp980.000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRupiah(tt.amount))
	}
}

func TestFormatTanggal(t *testing.T) {
	// 6 September 2023 jatuh pada hari Rabu.
	at := time.Date(2023, time.September, 6, 15, 45, 0, 0, time.UTC)
	assert.Equal(t, "Rabu, 6 September 2023 pukul 15.45", FormatTanggal(at))

	// 1 Januari 2024 jatuh pada hari Senin; menit satu digit diberi nol di depan.
	at = time.Date(2024, time.January, 1, 0, 5, 0, 0, time.UTC)
	assert.Equal(t, "Senin, 1 Januari 2024 pukul 00.05", FormatTanggal(at))
}
