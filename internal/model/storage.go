package model

import (
	"context"
	"io"
)

// Storage is a flat object store holding one JSON document per collection.
// Download returns ErrNotFound for absent keys.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
