package model

import (
	"context"
	"io"
	"time"
)

// Storage keeps opaque binary blobs (avatars, post pictures).
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	// Download returns ErrNotFound when no blob is stored under key. The caller closes Blob.Body.
	Download(ctx context.Context, key string) (Blob, error)
	Delete(ctx context.Context, key string) error
}

// Blob is a downloaded attachment.
type Blob struct {
	Body        io.ReadCloser
	ContentType string
}

// Lease is a cluster wide mutual exclusion with a TTL.
type Lease interface {
	// Acquire returns false without error when another holder owns the lease.
	Acquire(ctx context.Context, name string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, name string) error
}
