package model

import (
	"context"
	"io"
)

// Storage is the object store that keeps report images.
type Storage interface {
	// Upload stores the object and returns the path it can be retrieved by.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}
