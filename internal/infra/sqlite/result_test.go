package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aliskhannn/terminal-jeopardy/internal/domain/entities"
)

func newTestRepository(t *testing.T) *ResultRepository {
	t.Helper()

	repo, err := NewResultRepository(filepath.Join(t.TempDir(), "data", "jeopardy.db"))
	if err != nil {
		t.Fatalf("NewResultRepository error: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	return repo
}

func TestResultRepositorySaveAndTop(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	start := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	scores := map[string]int{"low": -300, "high": 2500, "mid": 400}
	order := []string{"low", "high", "mid"}

	for i, id := range order {
		r := &entities.GameResult{
			ID:         id,
			Score:      scores[id],
			TotalCells: 25,
			StartedAt:  start,
			FinishedAt: start.Add(time.Duration(i+1) * time.Minute),
			Turns: []entities.Turn{
				{Topic: "Arts", Points: 100, Question: "q1", CorrectAnswer: "a", PlayerAnswer: "a", IsCorrect: true, AnsweredAt: start},
				{Topic: "Arts", Points: 200, Question: "q2", CorrectAnswer: "b", PlayerAnswer: "c", AnsweredAt: start},
			},
		}
		if err := repo.Save(ctx, r); err != nil {
			t.Fatalf("Save(%s) error: %v", id, err)
		}
	}

	top, err := repo.Top(ctx, 2)
	if err != nil {
		t.Fatalf("Top error: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("Top returned %d results, want 2", len(top))
	}
	if top[0].ID != "high" || top[1].ID != "mid" {
		t.Fatalf("Top order = %s, %s; want high, mid", top[0].ID, top[1].ID)
	}
	if top[0].Score != 2500 || top[0].TotalCells != 25 {
		t.Fatalf("top result = %+v", top[0])
	}

	var turns int
	if err := repo.db.QueryRow(`SELECT COUNT(*) FROM game_turns`).Scan(&turns); err != nil {
		t.Fatalf("count turns: %v", err)
	}
	if turns != 6 {
		t.Fatalf("stored turns = %d, want 6", turns)
	}
}

func TestResultRepositoryDuplicateRollsBack(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	r := &entities.GameResult{ID: "dup", StartedAt: time.Now(), FinishedAt: time.Now()}
	if err := repo.Save(ctx, r); err != nil {
		t.Fatalf("first Save error: %v", err)
	}

	r.Turns = []entities.Turn{{Topic: "Arts", Points: 100, AnsweredAt: time.Now()}}
	if err := repo.Save(ctx, r); err == nil {
		t.Fatal("expected duplicate id error")
	}

	var turns int
	if err := repo.db.QueryRow(`SELECT COUNT(*) FROM game_turns`).Scan(&turns); err != nil {
		t.Fatalf("count turns: %v", err)
	}
	if turns != 0 {
		t.Fatalf("stored turns = %d, want 0 after rollback", turns)
	}
}
