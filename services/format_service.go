package services

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah memformat nominal rupiah dengan pemisah ribuan gaya id-ID,
// contoh: 1000000 -> "Rp1.000.000".
func FormatRupiah(amount int64) string {
	return rupiahPrinter.Sprintf("Rp%d", amount)
}

var namaHari = [...]string{
	"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu",
}

var namaBulan = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatTanggal memformat waktu menjadi tanggal panjang bahasa Indonesia,
// contoh: "Rabu, 6 September 2023 pukul 15.45".
func FormatTanggal(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d pukul %02d.%02d",
		namaHari[t.Weekday()], t.Day(), namaBulan[t.Month()-1], t.Year(),
		t.Hour(), t.Minute())
}
