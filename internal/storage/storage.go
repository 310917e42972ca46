package storage

//go:generate mockgen -destination=../mocks/mock_storage.go -package=mocks -mock_names Service=MockStorageService github.com/Priyanshu-coder81/Backend-learning/internal/storage Service

import (
	"context"
)

// Service uploads media files to remote object storage and returns a public URL.
type Service interface {
	UploadFile(ctx context.Context, localPath, key string) (string, error)
	DeleteObject(ctx context.Context, key string) error
}
