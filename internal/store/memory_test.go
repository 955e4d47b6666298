package store

import (
	"testing"
	"time"

	"github.com/askmeteo/weather-chat/internal/chat"
)

func TestMemoryStoreAppendLoad(t *testing.T) {
	s := NewMemoryStore()

	first := chat.NewMessage(chat.RoleAssistant, chat.Greeting)
	second := chat.NewMessage(chat.RoleUser, "weather Paris")
	if err := s.Append(first); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := s.Append(second); err != nil {
		t.Fatalf("Append: %v", err)
	}

	msgs, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(msgs) != 2 || msgs[0].ID != first.ID || msgs[1].ID != second.ID {
		t.Fatalf("unexpected load result: %+v", msgs)
	}

	// Load returns a copy; mutating it must not affect the store.
	msgs[0].Content = "mutated"
	again, _ := s.Load()
	if again[0].Content != chat.Greeting {
		t.Error("Load result is not a copy")
	}
}

func TestMemoryStoreReplace(t *testing.T) {
	s := NewMemoryStore()
	for i := 0; i < 5; i++ {
		s.Append(chat.NewMessage(chat.RoleUser, "query"))
	}

	greeting := chat.NewMessage(chat.RoleAssistant, chat.Greeting)
	if err := s.Replace([]chat.Message{greeting}); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	msgs, _ := s.Load()
	if len(msgs) != 1 || msgs[0].ID != greeting.ID {
		t.Fatalf("unexpected transcript after replace: %+v", msgs)
	}
}

func TestMemoryStoreRecentSearches(t *testing.T) {
	s := NewMemoryStore()
	now := time.Now()

	s.RecordSearch("London, United Kingdom", now.Add(-3*time.Minute))
	s.RecordSearch("Paris, France", now.Add(-2*time.Minute))
	s.RecordSearch("london, united kingdom", now.Add(-time.Minute)) // moves to front, case-insensitive

	searches, err := s.RecentSearches(5)
	if err != nil {
		t.Fatalf("RecentSearches: %v", err)
	}
	want := []string{"london, united kingdom", "Paris, France"}
	if len(searches) != len(want) || searches[0] != want[0] || searches[1] != want[1] {
		t.Fatalf("unexpected searches: %v", searches)
	}

	limited, _ := s.RecentSearches(1)
	if len(limited) != 1 || limited[0] != want[0] {
		t.Fatalf("unexpected limited searches: %v", limited)
	}
}

func TestMemoryStorePruneSearches(t *testing.T) {
	s := NewMemoryStore()
	now := time.Now()

	s.RecordSearch("Old Town", now.Add(-48*time.Hour))
	s.RecordSearch("Older Town", now.Add(-72*time.Hour))
	s.RecordSearch("Paris, France", now)

	removed, err := s.PruneSearches(24*time.Hour, 1)
	if err != nil {
		t.Fatalf("PruneSearches: %v", err)
	}
	if removed != 2 {
		t.Fatalf("removed = %d, want 2", removed)
	}

	searches, _ := s.RecentSearches(5)
	if len(searches) != 1 || searches[0] != "Paris, France" {
		t.Fatalf("unexpected searches after prune: %v", searches)
	}
}
