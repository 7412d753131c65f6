package storage

import (
	"context"
	"io"
	"time"
)

type Storage interface {
	UploadFile(ctx context.Context, file io.Reader, objectName, contentType string, fileSize int64) (string, error)
	PresignedDownloadURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}
