package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrKeyNotFound = errors.New("key not found")

// Store is a key-scoped byte store. Values are opaque to the store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key is required")
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("invalid key %q", key)
	}
	return nil
}
