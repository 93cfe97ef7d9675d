package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

const schema = `
	CREATE TABLE IF NOT EXISTS game_results (
		id          TEXT PRIMARY KEY,
		score       INTEGER NOT NULL,
		correct     INTEGER NOT NULL,
		incorrect   INTEGER NOT NULL,
		answered    INTEGER NOT NULL,
		total_cells INTEGER NOT NULL,
		completed   BOOLEAN NOT NULL,
		started_at  TIMESTAMPTZ NOT NULL,
		finished_at TIMESTAMPTZ NOT NULL
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
		answered_at    TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (result_id, turn_order)
	);

	CREATE INDEX IF NOT EXISTS idx_game_results_score ON game_results (score DESC);
`

// EnsureSchema creates the result tables if they do not exist.
func EnsureSchema(ctx context.Context, db DBTX) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
