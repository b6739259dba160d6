// Package memory provides a process-local KeyValueStorage used by tests and
// as the degraded fallback when the durable store cannot be opened: the app
// keeps working for the session, nothing survives a restart.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ternarybob/dailydeck/internal/interfaces"
)

// KVStorage implements KeyValueStorage over an in-process map
type KVStorage struct {
	mu    sync.RWMutex
	pairs map[string]interfaces.KeyValuePair
}

// NewKVStorage creates an empty in-memory store
func NewKVStorage() *KVStorage {
	return &KVStorage{pairs: make(map[string]interfaces.KeyValuePair)}
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Get retrieves a value by key
func (s *KVStorage) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pair, ok := s.pairs[normalizeKey(key)]
	if !ok {
		return "", interfaces.ErrKeyNotFound
	}
	return pair.Value, nil
}

// Set inserts or updates a key/value pair
func (s *KVStorage) Set(ctx context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalizedKey := normalizeKey(key)
	now := time.Now()

	pair := interfaces.KeyValuePair{
		Key:       normalizedKey,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if existing, ok := s.pairs[normalizedKey]; ok {
		pair.CreatedAt = existing.CreatedAt
	}
	s.pairs[normalizedKey] = pair
	return nil
}

// Delete removes a key/value pair; removing a missing key is a no-op
func (s *KVStorage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pairs, normalizeKey(key))
	return nil
}

// List returns all key/value pairs ordered by updated_at DESC
func (s *KVStorage) List(ctx context.Context) ([]interfaces.KeyValuePair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pairs := make([]interfaces.KeyValuePair, 0, len(s.pairs))
	for _, pair := range s.pairs {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].UpdatedAt.After(pairs[j].UpdatedAt)
	})
	return pairs, nil
}

// Close is a no-op for the in-memory store
func (s *KVStorage) Close() error {
	return nil
}
