package storage

import "context"

// Storage persists uploaded documents and returns the stored object name.
type Storage interface {
	UploadDocument(ctx context.Context, data []byte, bucketName, fileName, contentType string) (string, error)
}
