package storage

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService handles gallery media hosted on Cloudinary.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
	ImageURL(publicID string) (string, error)
}

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}
