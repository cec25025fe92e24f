package ports

import (
	"context"
	"io"
)

// FileStore persists raw bytes under per-user directories. Authorization is
// the caller's job; implementations only guarantee that a resolved path can
// never leave the owning user's directory.
type FileStore interface {
	Save(ctx context.Context, userID, originalName string, r io.Reader) (string, error)
	Resolve(userID, relPath string) (string, error)
	Open(ctx context.Context, userID, relPath string) (io.ReadCloser, int64, error)
	Delete(ctx context.Context, userID, relPath string) error
	Cleanup(ctx context.Context, userID string) error
}
