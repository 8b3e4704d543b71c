package service

import (
	"context"
	"io"
)

// Uploader stores a binary under a deterministic folder/publicID pair and
// returns a fetchable URL. Re-uploading the same pair overwrites the
// stored object rather than accumulating copies.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
}
