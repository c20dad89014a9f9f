package store

import (
	"context"
	"errors"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore keeps documents in process. It is used when no DATABASE_URL
// is configured and in tests.
type MemoryStore struct {
	mu          sync.RWMutex
	name        string
	collections map[string]map[string]any
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(name string) *MemoryStore {
	return &MemoryStore{
		name:        name,
		collections: make(map[string]map[string]any),
	}
}

// Create assigns an ObjectID-style hex id so ids look the same as the ones
// MongoStore hands out.
func (s *MemoryStore) Create(ctx context.Context, collection string, doc any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &Error{Op: "create", Collection: collection, Err: err}
	}
	if collection == "" {
		return "", &Error{Op: "create", Err: errors.New("collection name is empty")}
	}

	id := primitive.NewObjectID().Hex()

	s.mu.Lock()
	defer s.mu.Unlock()

	docs, ok := s.collections[collection]
	if !ok {
		docs = make(map[string]any)
		s.collections[collection] = docs
	}
	docs[id] = doc
	return id, nil
}

// Get returns the document stored under id.
func (s *MemoryStore) Get(collection, id string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.collections[collection][id]
	return doc, ok
}

// Count returns the number of documents in collection.
func (s *MemoryStore) Count(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.collections[collection])
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) ListCollections(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, &Error{Op: "list collections", Err: errors.New("limit must be positive")}
	}

	s.mu.RLock()
	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	s.mu.RUnlock()

	sort.Strings(names)
	if len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

func (s *MemoryStore) Name() string {
	return s.name
}
