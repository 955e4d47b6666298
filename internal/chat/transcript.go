package chat

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/askmeteo/weather-chat/internal/weather"
)

// Pipeline turns a raw user query into assistant reply text.
type Pipeline interface {
	ProcessQuery(ctx context.Context, raw string) weather.Reply
}

// Service owns the transcript: it appends the user turn, runs the pipeline,
// and appends the assistant turn. A mutex serializes Ask calls so at most one
// query is ever in flight against the transcript.
type Service struct {
	mu       sync.Mutex
	store    Store
	pipeline Pipeline

	// seed locations shown before any real query succeeded
	seedSearches []string
}

// NewService wires the transcript service. An empty store is seeded with the
// greeting so a fresh transcript always starts with exactly one assistant turn.
func NewService(store Store, pipeline Pipeline) (*Service, error) {
	s := &Service{
		store:        store,
		pipeline:     pipeline,
		seedSearches: []string{"London", "New York", "Tokyo", "Paris", "Sydney"},
	}

	msgs, err := store.Load()
	if err != nil {
		return nil, err
	}
	if len(msgs) == 0 {
		if err := store.Append(NewMessage(RoleAssistant, Greeting)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Ask appends the user message, produces the assistant response, appends it,
// and returns it. It never fails on pipeline errors; only storage errors
// surface.
func (s *Service) Ask(ctx context.Context, text string) (Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Append(NewMessage(RoleUser, text)); err != nil {
		return Message{}, err
	}

	reply := s.pipeline.ProcessQuery(ctx, text)

	assistant := NewMessage(RoleAssistant, reply.Content)
	if err := s.store.Append(assistant); err != nil {
		return Message{}, err
	}

	if reply.Location != "" {
		if err := s.store.RecordSearch(reply.Location, time.Now().UTC()); err != nil {
			log.Printf("chat: failed to record search %q: %v", reply.Location, err)
		}
	}

	return assistant, nil
}

// Messages returns a copy of the transcript in insertion order.
func (s *Service) Messages() ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	copied := make([]Message, len(msgs))
	copy(copied, msgs)
	return copied, nil
}

// Clear discards the transcript and resets it to the single greeting message,
// which is returned.
func (s *Service) Clear() (Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	greeting := NewMessage(RoleAssistant, Greeting)
	if err := s.store.Replace([]Message{greeting}); err != nil {
		return Message{}, err
	}
	return greeting, nil
}

// RecentSearches returns locations recently answered about, newest first.
// Until any query has succeeded, a fixed seed list is returned.
func (s *Service) RecentSearches(limit int) ([]string, error) {
	recorded, err := s.store.RecentSearches(limit)
	if err != nil {
		return nil, err
	}
	if len(recorded) == 0 {
		if limit > 0 && limit < len(s.seedSearches) {
			return s.seedSearches[:limit], nil
		}
		return s.seedSearches, nil
	}
	return recorded, nil
}
