package storage

import "context"

// Store persists and retrieves generated document artifacts by filename.
// Implementations must treat a repeated Put for the same name as an
// overwrite so regenerating an order refreshes its documents in place.
type Store interface {
	Put(ctx context.Context, filename string, data []byte) (string, error)
	Fetch(ctx context.Context, filename string) ([]byte, error)
	Exists(ctx context.Context, filename string) (bool, error)
}
