package store

import (
	"context"
	"testing"
	"time"
)

func TestAppendListRoundTrip(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	ctx := context.Background()

	first := time.Date(2024, time.June, 1, 9, 30, 0, 0, time.Local)
	second := time.Date(2025, time.January, 15, 18, 0, 0, 0, time.Local)
	if err := s.Append(ctx, first); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Append(ctx, second); err != nil {
		t.Fatalf("append: %v", err)
	}

	picks, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(picks) != 2 {
		t.Fatalf("got %d picks, want 2", len(picks))
	}
	// Newest first.
	if !picks[0].Chosen.Equal(second) || !picks[1].Chosen.Equal(first) {
		t.Fatalf("order/values wrong: %v", picks)
	}
	if picks[0].PickedAt.IsZero() {
		t.Fatalf("picked-at must be recorded")
	}
}

func TestListLimit(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		when := time.Date(2024, time.June, 1+i, 12, 0, 0, 0, time.Local)
		if err := s.Append(ctx, when); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	picks, err := s.List(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(picks) != 2 {
		t.Fatalf("limit ignored: got %d", len(picks))
	}
	if picks[0].Chosen.Day() != 5 {
		t.Fatalf("newest first, got day %d", picks[0].Chosen.Day())
	}
}

func TestClear(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	ctx := context.Background()

	if err := s.Append(ctx, time.Now()); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	picks, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(picks) != 0 {
		t.Fatalf("history must be empty after clear, got %d", len(picks))
	}
}

func TestListOnFreshStoreIsEmpty(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	picks, err := s.List(context.Background(), 10)
	if err != nil {
		t.Fatalf("list on a fresh store: %v", err)
	}
	if len(picks) != 0 {
		t.Fatalf("fresh store must be empty, got %d", len(picks))
	}
}
