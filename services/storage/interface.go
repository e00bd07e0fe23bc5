package storage

import (
	"context"
)

// UploadResult identifies a stored file and its public delivery URL.
type UploadResult struct {
	PublicID string
	URL      string
}

// StorageService defines the interface for photo storage operations.
type StorageService interface {
	// UploadFile uploads a local file into the given folder and returns the
	// permanent identifier plus its delivery URL.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (*UploadResult, error)
	// DeleteFile removes a stored file by its public ID.
	DeleteFile(ctx context.Context, publicID string) error
	// GetDownloadURL constructs the public delivery URL for a stored image.
	GetDownloadURL(ctx context.Context, publicID string) (string, error)
}
