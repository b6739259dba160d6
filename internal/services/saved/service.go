// Package saved implements the persisted saved-items collections (notes,
// watchlist) over the key/value storage. Each collection serializes to a
// single JSON blob of shape {"entries":[{"item":…,"savedAt":…}]} under a
// stable store key. The in-memory copy is authoritative during a session;
// storage failures degrade to empty/unsaved state instead of crashing the
// interaction core.
package saved

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/dailydeck/internal/interfaces"
)

// ErrCollectionFull is returned by Add when the configured maximum entry
// count is reached. Callers route it to an error notification, distinct from
// the silent "already saved" case.
var ErrCollectionFull = errors.New("saved collection is full")

// Entry is one saved item: a full snapshot plus its save time
type Entry[T any] struct {
	Item    T         `json:"item"`
	SavedAt time.Time `json:"savedAt"`
}

// state is the persisted blob layout
type state[T any] struct {
	Entries []Entry[T] `json:"entries"`
}

// Service is a persisted collection with idempotent writes. Entries are
// unique per item identity and ordered most-recently-added first.
type Service[T any] struct {
	mu         sync.Mutex
	key        string
	identity   func(T) string
	maxEntries int
	storage    interfaces.KeyValueStorage
	logger     arbor.ILogger
	clock      func() time.Time

	entries []Entry[T]
	subs    []func(int)
}

// NewService creates a collection bound to a storage key. identity extracts
// the stable identity of an item (card id, ticker). Existing state is loaded
// from storage; a missing key starts empty and a read failure degrades to
// empty with a warning.
func NewService[T any](key string, identity func(T) string, maxEntries int, storage interfaces.KeyValueStorage, logger arbor.ILogger) *Service[T] {
	s := &Service[T]{
		key:        key,
		identity:   identity,
		maxEntries: maxEntries,
		storage:    storage,
		logger:     logger,
		clock:      time.Now,
	}
	s.load()
	return s
}

// WithClock overrides the service clock. Intended for tests.
func (s *Service[T]) WithClock(clock func() time.Time) *Service[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock = clock
	return s
}

func (s *Service[T]) load() {
	raw, err := s.storage.Get(context.Background(), s.key)
	if errors.Is(err, interfaces.ErrKeyNotFound) {
		return
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("key", s.key).Msg("Failed to load saved entries, starting empty")
		return
	}

	var st state[T]
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		s.logger.Warn().Err(err).Str("key", s.key).Msg("Corrupt saved entries, starting empty")
		return
	}
	s.entries = st.Entries
}

// persistLocked writes the current state through to storage. A write failure
// is recoverable: the in-memory state stays valid for the session and the
// error propagates for a user-visible notification.
func (s *Service[T]) persistLocked() error {
	raw, err := json.Marshal(state[T]{Entries: s.entries})
	if err != nil {
		return err
	}
	if err := s.storage.Set(context.Background(), s.key, string(raw)); err != nil {
		s.logger.Warn().Err(err).Str("key", s.key).Msg("Failed to persist saved entries")
		return err
	}
	return nil
}

// Add saves an item. An entry with the same identity already existing is the
// idempotent no-op case (false, nil); a collection at its maximum returns
// ErrCollectionFull so the caller can surface an error notification.
func (s *Service[T]) Add(item T) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.identity(item)
	for _, e := range s.entries {
		if s.identity(e.Item) == id {
			return false, nil
		}
	}
	if s.maxEntries > 0 && len(s.entries) >= s.maxEntries {
		s.logger.Warn().Str("key", s.key).Int("max", s.maxEntries).Msg("Saved collection is full")
		return false, ErrCollectionFull
	}

	entry := Entry[T]{Item: item, SavedAt: s.clock()}
	s.entries = append([]Entry[T]{entry}, s.entries...)
	if err := s.persistLocked(); err == nil {
		s.logger.Info().Str("key", s.key).Str("id", id).Msg("Entry saved")
	}
	s.notifyLocked()
	return true, nil
}

// Remove deletes the entry with the given identity. Removing a non-existent
// entry is a no-op returning false.
func (s *Service[T]) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if s.identity(e.Item) == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			_ = s.persistLocked()
			s.notifyLocked()
			return true
		}
	}
	return false
}

// Contains reports whether an entry with the given identity exists
func (s *Service[T]) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if s.identity(e.Item) == id {
			return true
		}
	}
	return false
}

// List returns a copy of the entries, most recently added first
func (s *Service[T]) List() []Entry[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry[T], len(s.entries))
	copy(out, s.entries)
	return out
}

// Count returns the number of saved entries
func (s *Service[T]) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Clear removes all entries
func (s *Service[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	_ = s.persistLocked()
	s.notifyLocked()
}

// Subscribe registers a change observer invoked with the new entry count
// after every mutation.
func (s *Service[T]) Subscribe(fn func(count int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Service[T]) notifyLocked() {
	for _, fn := range s.subs {
		fn(len(s.entries))
	}
}
