package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ErrUpstream menandai kegagalan layanan penyimpanan gambar.
var ErrUpstream = errors.New("layanan upload gambar gagal")

// UploadImage mengunggah satu file gambar ke Cloudinary dan mengembalikan secure URL-nya.
func UploadImage(ctx context.Context, cld *cloudinary.Cloudinary, fileHeader *multipart.FileHeader, folder string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file upload: %w", err)
	}
	defer file.Close()

	result, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: folder,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("%w: secure_url kosong", ErrUpstream)
	}

	return result.SecureURL, nil
}
