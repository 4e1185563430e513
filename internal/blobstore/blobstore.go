// Package blobstore persists uploaded images and returns durable URLs.
// The rest of the service treats the returned URL as opaque.
package blobstore

import (
	"context"
	"fmt"
	"io"

	"github.com/Sanj24Dev/sort-and-style/internal/config"
)

// Store writes a blob under the given key and returns its public URL.
type Store interface {
	Put(ctx context.Context, key, contentType string, r io.Reader) (string, error)
}

// Open builds the store selected by cfg.BlobDriver.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.BlobDriver {
	case "", "local":
		return NewLocal(cfg.UploadDir)
	case "s3":
		return NewS3(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown blob driver %q", cfg.BlobDriver)
	}
}
