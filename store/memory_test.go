package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCreate(t *testing.T) {
	s := NewMemoryStore("testdb")
	ctx := context.Background()

	first, err := s.Create(ctx, "contactmessage", testDoc{Name: "Jo Lee"})
	require.NoError(t, err)
	second, err := s.Create(ctx, "contactmessage", testDoc{Name: "Jo Lee"})
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, s.Count("contactmessage"))

	doc, ok := s.Get("contactmessage", first)
	require.True(t, ok)
	assert.Equal(t, testDoc{Name: "Jo Lee"}, doc)
}

func TestMemoryStoreCreateErrors(t *testing.T) {
	s := NewMemoryStore("testdb")

	_, err := s.Create(context.Background(), "", testDoc{})
	var serr *Error
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "store: create: collection name is empty", err.Error())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Create(ctx, "contactmessage", testDoc{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, s.Count("contactmessage"))
}

func TestMemoryStoreConcurrentCreate(t *testing.T) {
	s := NewMemoryStore("testdb")

	var wg sync.WaitGroup
	ids := make(chan string, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := s.Create(context.Background(), "quoterequest", testDoc{Name: "same"})
			assert.NoError(t, err)
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Equal(t, 50, s.Count("quoterequest"))
}

func TestMemoryStoreListCollections(t *testing.T) {
	s := NewMemoryStore("testdb")
	for i := 11; i >= 0; i-- {
		_, err := s.Create(context.Background(), fmt.Sprintf("c%02d", i), testDoc{})
		require.NoError(t, err)
	}

	names, err := s.ListCollections(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, names, 10)
	assert.Equal(t, "c00", names[0])
	assert.Equal(t, "c09", names[9])

	_, err = s.ListCollections(context.Background(), -1)
	assert.Error(t, err)

	assert.Equal(t, "testdb", s.Name())
	assert.NoError(t, s.Ping(context.Background()))
}
