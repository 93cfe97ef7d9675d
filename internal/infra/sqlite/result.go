package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/aliskhannn/terminal-jeopardy/internal/domain/entities"
)

const schema = `
	CREATE TABLE IF NOT EXISTS game_results (
		id          TEXT PRIMARY KEY,
		score       INTEGER NOT NULL,
		correct     INTEGER NOT NULL,
		incorrect   INTEGER NOT NULL,
		answered    INTEGER NOT NULL,
		total_cells INTEGER NOT NULL,
		completed   BOOLEAN NOT NULL,
		started_at  DATETIME NOT NULL,
		finished_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS game_turns (
		result_id      TEXT NOT NULL REFERENCES game_results (id) ON DELETE CASCADE,
		turn_order     INTEGER NOT NULL,
		topic          TEXT NOT NULL,
		points         INTEGER NOT NULL,
		question       TEXT NOT NULL,
		correct_answer TEXT NOT NULL,
		player_answer  TEXT NOT NULL,
		is_correct     BOOLEAN NOT NULL,
		answered_at    DATETIME NOT NULL,
		PRIMARY KEY (result_id, turn_order)
	);

	CREATE INDEX IF NOT EXISTS idx_game_results_score ON game_results (score DESC);
`

// ResultRepository stores finished games in a SQLite file.
type ResultRepository struct {
	db *sql.DB
}

// NewResultRepository opens (and creates if missing) the database file and its tables.
func NewResultRepository(path string) (*ResultRepository, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &ResultRepository{db: db}, nil
}

// Save inserts the result and its turns within a transaction.
func (r *ResultRepository) Save(ctx context.Context, result *entities.GameResult) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO game_results (
			id, score, correct, incorrect, answered,
			total_cells, completed, started_at, finished_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.ID,
		result.Score,
		result.Correct,
		result.Incorrect,
		result.Answered,
		result.TotalCells,
		result.Completed,
		result.StartedAt.UTC(),
		result.FinishedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert game result: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO game_turns (
			result_id, turn_order, topic, points, question,
			correct_answer, player_answer, is_correct, answered_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare game turn: %w", err)
	}
	defer stmt.Close()

	for i, t := range result.Turns {
		_, err := stmt.ExecContext(ctx,
			result.ID, i+1, t.Topic, t.Points, t.Question,
			t.CorrectAnswer, t.PlayerAnswer, t.IsCorrect, t.AnsweredAt.UTC(),
		)
		if err != nil {
			return fmt.Errorf("insert game turn %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// Top returns the best results ordered by score. Turns are not loaded.
func (r *ResultRepository) Top(ctx context.Context, limit int) ([]*entities.GameResult, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, score, correct, incorrect, answered,
		       total_cells, completed, started_at, finished_at
		FROM game_results
		ORDER BY score DESC, finished_at ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top results: %w", err)
	}
	defer rows.Close()

	var results []*entities.GameResult
	for rows.Next() {
		var res entities.GameResult
		if err := rows.Scan(
			&res.ID,
			&res.Score,
			&res.Correct,
			&res.Incorrect,
			&res.Answered,
			&res.TotalCells,
			&res.Completed,
			&res.StartedAt,
			&res.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		results = append(results, &res)
	}

	return results, rows.Err()
}

// Close closes the database.
func (r *ResultRepository) Close() error {
	return r.db.Close()
}
