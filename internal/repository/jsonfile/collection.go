// Package jsonfile implements the stores as JSON documents in a model.Storage.
//
// Every collection is a single pretty-printed JSON array read and rewritten
// whole. A mutex per collection serialises read-modify-write cycles, so one
// process is the only writer of a given document.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dtroode/marketmanager-server/internal/model"
)

// Object names inside the storage.
const (
	UsersObject      = "users.json"
	SessionsObject   = "sessions.json"
	LicensesObject   = "licenses.json"
	ActivationObject = "user-license.json"
)

type collection[T any] struct {
	mu      sync.Mutex
	storage model.Storage
	key     string
}

func newCollection[T any](storage model.Storage, key string) *collection[T] {
	return &collection[T]{storage: storage, key: key}
}

// load reads the document. exists is false when the object is absent.
func (c *collection[T]) load(ctx context.Context) (items []T, exists bool, err error) {
	rc, err := c.storage.Download(ctx, c.key)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s: %w", c.key, err)
	}
	defer rc.Close()

	if err := json.NewDecoder(rc).Decode(&items); err != nil {
		return nil, true, fmt.Errorf("failed to decode %s: %w", c.key, err)
	}

	return items, true, nil
}

func (c *collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	return writeJSON(ctx, c.storage, c.key, items)
}

// update runs fn against the loaded items under the collection lock and saves the result.
func (c *collection[T]) update(ctx context.Context, fn func(items []T, exists bool) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, exists, err := c.load(ctx)
	if err != nil {
		return err
	}

	items, err = fn(items, exists)
	if err != nil {
		return err
	}

	return c.save(ctx, items)
}

// read loads the items under the collection lock.
func (c *collection[T]) read(ctx context.Context) ([]T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.load(ctx)
}

func writeJSON(ctx context.Context, storage model.Storage, key string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := storage.Upload(ctx, key, &buf); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	return nil
}
