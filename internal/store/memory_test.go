package store

import (
	"testing"
	"time"

	"github.com/aeronav/flightroutes/internal/route"
)

func TestSaveAndGet(t *testing.T) {
	s := NewMemoryStore(0, 0)

	plan := &route.Plan{From: "A", To: "B", TotalCost: 522.39}
	s.Save("A:B:42", plan)

	got, err := s.Get("A:B:42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != plan {
		t.Fatalf("expected the stored plan pointer, got %+v", got)
	}

	if _, err := s.Get("A:B:43"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCountEviction(t *testing.T) {
	s := NewMemoryStore(2, 0)

	s.Save("k1", &route.Plan{From: "A"})
	s.Save("k2", &route.Plan{From: "B"})
	s.Save("k3", &route.Plan{From: "C"})

	if s.Len() != 2 {
		t.Fatalf("expected 2 entries after eviction, got %d", s.Len())
	}
	if _, err := s.Get("k1"); err != ErrNotFound {
		t.Fatalf("expected oldest entry to be evicted, got %v", err)
	}
	if _, err := s.Get("k3"); err != nil {
		t.Fatalf("expected newest entry to survive, got %v", err)
	}
}

func TestAgeExpiry(t *testing.T) {
	s := NewMemoryStore(0, time.Millisecond)

	s.Save("k1", &route.Plan{From: "A"})
	time.Sleep(5 * time.Millisecond)

	if _, err := s.Get("k1"); err != ErrNotFound {
		t.Fatalf("expected expired entry, got %v", err)
	}
}

func TestClear(t *testing.T) {
	s := NewMemoryStore(0, 0)
	s.Save("k1", &route.Plan{From: "A"})
	s.Save("k2", &route.Plan{From: "B"})

	s.Clear()

	if s.Len() != 0 {
		t.Fatalf("expected empty store after clear, got %d", s.Len())
	}

	// The store keeps working after a clear.
	s.Save("k1", &route.Plan{From: "A"})
	if _, err := s.Get("k1"); err != nil {
		t.Fatalf("unexpected error after clear: %v", err)
	}
}
