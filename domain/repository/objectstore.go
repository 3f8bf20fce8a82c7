package repository

import (
	"context"
	"io"
)

// IObjectStore performs raw byte transfers against capability URLs. These
// calls carry no Authorization header; the presigned URL itself is the
// authorization.
type IObjectStore interface {
	// Put streams exactly size bytes to the write capability URL, declaring
	// the given content type.
	Put(ctx context.Context, url string, contentType string, body io.Reader, size int64) error
	// Fetch downloads the artifact behind a read capability URL as an opaque
	// byte payload.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
