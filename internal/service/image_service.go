package service

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"time"

	_ "golang.org/x/image/webp"

	"github.com/stagefolio/internal/db"
	"gorm.io/gorm"
)

const maxImageBytes = 5 << 20

var (
	// ErrNotAnImage is returned when an upload is not a decodable image.
	ErrNotAnImage = errors.New("uploaded file is not an image")
	// ErrImageTooLarge is returned when an upload exceeds the size cap.
	ErrImageTooLarge = errors.New("uploaded image is too large")
)

// ImageService validates admin uploads and stores them. Images are handed
// back inline as data URIs, so the row mostly exists to survive restarts and
// feed the analytics counts.
type ImageService struct {
	db *gorm.DB
}

// NewImageService returns a new ImageService instance.
func NewImageService(gdb *gorm.DB) *ImageService {
	return &ImageService{db: gdb}
}

// Store verifies that data decodes as a real image (jpeg, png, gif or webp),
// persists it and returns the stored row. The declared content type is not
// trusted; the detected format wins.
func (s *ImageService) Store(filename string, data []byte) (*db.UploadedImage, error) {
	if len(data) == 0 {
		return nil, ErrNotAnImage
	}
	if len(data) > maxImageBytes {
		return nil, ErrImageTooLarge
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, ErrNotAnImage
	}

	img := db.UploadedImage{
		Filename:  strings.TrimSpace(filename),
		MimeType:  "image/" + format,
		Size:      int64(len(data)),
		Data:      data,
		CreatedAt: time.Now(),
	}
	if img.Filename == "" {
		img.Filename = "upload." + format
	}

	if err := s.db.Create(&img).Error; err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	return &img, nil
}

// DataURI renders a stored image as an inline data URI.
func DataURI(img *db.UploadedImage) string {
	return fmt.Sprintf("data:%s;base64,%s", img.MimeType, base64.StdEncoding.EncodeToString(img.Data))
}

// Count returns the number of stored uploads.
func (s *ImageService) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&db.UploadedImage{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count images: %w", err)
	}
	return count, nil
}
