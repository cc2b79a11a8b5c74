package search

import (
	"errors"
	"testing"
	"time"
)

func TestStoreLifecycle(t *testing.T) {
	store := NewStore(time.Hour)
	defer store.Close()

	engine := NewEngine(newFakeSearcher(), testDebounce, testTimeout)
	id := store.Create(engine)

	got, err := store.Get(id)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != engine {
		t.Fatal("Get returned a different engine")
	}

	if err := store.Delete(id); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := store.Get(id); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
	if err := store.Delete(id); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound on double delete, got %v", err)
	}
}

func TestStoreSweepExpiresIdleSessions(t *testing.T) {
	store := NewStore(10 * time.Millisecond)
	defer store.Close()

	engine := NewEngine(newFakeSearcher(), testDebounce, testTimeout)
	id := store.Create(engine)

	time.Sleep(30 * time.Millisecond)
	store.sweep()

	if _, err := store.Get(id); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected idle session to be swept, got %v", err)
	}
}
