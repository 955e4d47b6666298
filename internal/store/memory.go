package store

import (
	"strings"
	"sync"
	"time"

	"github.com/askmeteo/weather-chat/internal/chat"
)

type searchEntry struct {
	Location string
	At       time.Time
}

// MemoryStore is a concurrency-safe in-memory implementation of chat.Store.
// Suitable for tests and single-instance deployments that accept losing the
// transcript on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	messages []chat.Message
	searches []searchEntry // newest first
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns all messages in insertion order.
func (s *MemoryStore) Load() ([]chat.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make([]chat.Message, len(s.messages))
	copy(copied, s.messages)
	return copied, nil
}

// Append adds a message at the end of the transcript.
func (s *MemoryStore) Append(msg chat.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, msg)
	return nil
}

// Replace swaps the whole transcript for the given messages.
func (s *MemoryStore) Replace(msgs []chat.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = make([]chat.Message, len(msgs))
	copy(s.messages, msgs)
	return nil
}

// RecordSearch notes a location at the head of the recent-search list,
// replacing any earlier entry for the same location.
func (s *MemoryStore) RecordSearch(location string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.searches[:0]
	for _, e := range s.searches {
		if !strings.EqualFold(e.Location, location) {
			kept = append(kept, e)
		}
	}
	s.searches = append([]searchEntry{{Location: location, At: at}}, kept...)
	return nil
}

// RecentSearches returns up to limit locations, newest first.
func (s *MemoryStore) RecentSearches(limit int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.searches)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]string, 0, n)
	for _, e := range s.searches[:n] {
		out = append(out, e.Location)
	}
	return out, nil
}

// PruneSearches drops entries older than maxAge, always keeping the newest
// keep entries.
func (s *MemoryStore) PruneSearches(maxAge time.Duration, keep int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if maxAge <= 0 {
		return 0, nil
	}

	cutoff := time.Now().Add(-maxAge)
	kept := make([]searchEntry, 0, len(s.searches))
	removed := 0
	for i, e := range s.searches {
		if i < keep || !e.At.Before(cutoff) {
			kept = append(kept, e)
			continue
		}
		removed++
	}
	s.searches = kept
	return removed, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error { return nil }
