package config

import (
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
)

// Cloudinary adalah client upload gambar global, diisi oleh InitCloudinary.
var Cloudinary *cloudinary.Cloudinary

// InitCloudinary membuat client dari env CLOUDINARY_URL.
func InitCloudinary() error {
	cld, err := cloudinary.New()
	if err != nil {
		return fmt.Errorf("gagal inisialisasi Cloudinary: %w", err)
	}

	Cloudinary = cld
	return nil
}
