package store

import (
	"context"
	"errors"
)

// ErrObjectNotFound is returned by Get when the named object does not exist.
// Callers distinguish it from transport failures, which they may handle
// differently.
var ErrObjectNotFound = errors.New("object not found")

// ObjectStore is the minimal get/put surface the gateway needs from a
// storage backend. Put fully overwrites any existing object.
type ObjectStore interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Put(ctx context.Context, name string, data []byte, contentType string) error
}
