package objectstore

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound signals that no object exists at the requested key. It is a
// normal state for optional objects (e.g. a pricing config that has never been
// saved) and must be distinguished from transport failures with errors.Is.
var ErrNotFound = errors.New("object not found")

// ErrAlreadyExists signals a Put without overwrite onto an occupied key.
var ErrAlreadyExists = errors.New("object already exists")

// ObjectInfo describes a stored object without its payload.
type ObjectInfo struct {
	Key        string    `json:"key"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// ObjectStore is a flat key/value blob store. Puts replace the whole object
// atomically; there is no partial write.
type ObjectStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte, overwrite bool) error
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
	Delete(ctx context.Context, key string) error
}
