// Package store persists validated submissions as documents in named
// collections.
package store

import (
	"context"
	"fmt"
)

// Store appends documents and reports on its own health. Implementations
// must be safe for concurrent use.
type Store interface {
	// Create inserts doc into collection and returns its generated id.
	Create(ctx context.Context, collection string, doc any) (string, error)
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
	// ListCollections returns at most limit collection names.
	ListCollections(ctx context.Context, limit int) ([]string, error)
	// Name is the database name.
	Name() string
}

// Error is a failed storage operation.
type Error struct {
	Op         string
	Collection string
	Err        error
}

func (e *Error) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
