package storage

import "context"

// Storage is the file collaborator the pipeline reads document bytes from.
// Implementations must be safe for concurrent use.
type Storage interface {
	Download(ctx context.Context, storageRef string) ([]byte, error)
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, storageRef string) error
}
