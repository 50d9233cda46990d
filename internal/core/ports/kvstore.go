package ports

import (
	"context"
	"errors"
)

// Fixed persistence keys (the browser-storage analogue contract).
const (
	SessionKey = "session"
	TasksKey   = "tasks"
)

var ErrKeyNotFound = errors.New("key not found")

// KVStore is the local persistent key-value collaborator used to save and
// restore session and task data across restarts. Get returns
// ErrKeyNotFound when the key is absent.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
