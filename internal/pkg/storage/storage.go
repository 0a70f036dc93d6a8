package storage

import (
	"context"
)

// FileStorage persists generated documents, keyed by a relative path.
// The salary module uses it to archive rendered slips.
type FileStorage interface {
	// Save writes content at path, creating parent directories as needed,
	// and returns the stored path.
	Save(ctx context.Context, path string, content []byte) (string, error)

	// Read retrieves a stored document
	Read(ctx context.Context, path string) ([]byte, error)

	// Exists checks whether a document is stored at path
	Exists(ctx context.Context, path string) (bool, error)
}
