package storage

import (
	"context"
	"testing"

	"github.com/aliskhannn/terminal-jeopardy/internal/domain/entities"
)

func TestResultStorageTop(t *testing.T) {
	s := NewResultStorage()
	ctx := context.Background()

	for i, score := range []int{300, -200, 1500, 300, 0} {
		r := &entities.GameResult{ID: string(rune('a' + i)), Score: score}
		if err := s.Save(ctx, r); err != nil {
			t.Fatalf("Save error: %v", err)
		}
	}

	if s.Len() != 5 {
		t.Fatalf("Len = %d, want 5", s.Len())
	}

	top, err := s.Top(ctx, 3)
	if err != nil {
		t.Fatalf("Top error: %v", err)
	}

	wantIDs := []string{"c", "a", "d"}
	if len(top) != len(wantIDs) {
		t.Fatalf("Top returned %d results, want %d", len(top), len(wantIDs))
	}
	for i, id := range wantIDs {
		if top[i].ID != id {
			t.Errorf("top[%d].ID = %q, want %q", i, top[i].ID, id)
		}
	}
}

func TestResultStorageSaveCopies(t *testing.T) {
	s := NewResultStorage()
	ctx := context.Background()

	r := &entities.GameResult{ID: "x", Score: 100, Turns: []entities.Turn{{Topic: "Arts"}}}
	_ = s.Save(ctx, r)

	r.Score = 9999
	r.Turns[0].Topic = "Sports"

	top, _ := s.Top(ctx, 1)
	if top[0].Score != 100 || top[0].Turns[0].Topic != "Arts" {
		t.Fatalf("stored result changed with caller copy: %+v", top[0])
	}
}
