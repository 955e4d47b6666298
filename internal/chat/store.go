package chat

import "time"

// Store is the persistence contract for the transcript and the recent-search
// list. The service never knows the storage medium; implementations live in
// internal/store.
type Store interface {
	// Load returns all messages in insertion order.
	Load() ([]Message, error)
	// Append adds a message at the end of the transcript.
	Append(msg Message) error
	// Replace swaps the whole transcript for the given messages.
	Replace(msgs []Message) error

	// RecordSearch notes a successfully answered location, newest first.
	RecordSearch(location string, at time.Time) error
	// RecentSearches returns up to limit recorded locations, newest first,
	// without duplicates.
	RecentSearches(limit int) ([]string, error)
	// PruneSearches drops searches older than maxAge, always keeping the
	// newest keep entries. It returns the number of entries removed.
	PruneSearches(maxAge time.Duration, keep int) (int, error)

	Close() error
}
